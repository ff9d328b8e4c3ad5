package keytree

// Node is a single entry in a Tree: a payload addressed by a key,
// linked upward by its parent's key and downward by the append-ordered
// keys of its children.
//
// Nodes are constructed by the caller and handed to a tree through
// Append, which is the only way a node enters a structure. Once
// appended, the tree owns the node; its children list is mutated only
// by the tree, when a later append names it as parent.
type Node[D any, K comparable] struct {
	// Data is the payload the node carries. The tree never inspects it.
	Data D

	key       K
	parentKey K
	hasParent bool

	// children holds the keys of this node's children in the order
	// they were appended.
	children []K
}

// NewRoot returns a parentless node without children, suitable only as
// the first node of a tree.
func NewRoot[D any, K comparable](data D, key K) *Node[D, K] {
	return &Node[D, K]{Data: data, key: key}
}

// NewNode returns a node without children that declares parent as its
// parent key. The declaration is not validated here; Append checks it
// against the receiving tree.
func NewNode[D any, K comparable](data D, key K, parent K) *Node[D, K] {
	return &Node[D, K]{Data: data, key: key, parentKey: parent, hasParent: true}
}

// Key returns the node's key.
func (n *Node[D, K]) Key() K {
	return n.key
}

// ParentKey returns the node's declared parent key. The second return
// is false for a root node, which declares none.
func (n *Node[D, K]) ParentKey() (K, bool) {
	return n.parentKey, n.hasParent
}

// Children returns a copy of the keys of the node's children, in the
// order they were appended.
func (n *Node[D, K]) Children() []K {
	out := make([]K, len(n.children))
	copy(out, n.children)
	return out
}

// HasChild reports whether key names a direct child of the node.
func (n *Node[D, K]) HasChild(key K) bool {
	for _, child := range n.children {
		if child == key {
			return true
		}
	}
	return false
}
