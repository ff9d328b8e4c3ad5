package keytree

import "fmt"

// Tree is an in-memory container of Nodes linked by parent references.
// The first node appended becomes the root; every later node must name
// an existing node as its parent. The zero value is not usable; create
// trees with New.
//
// A Tree is single-owner and not safe for concurrent use. Node
// references returned by lookups and traversal are read-only borrows,
// valid until the next mutating call.
type Tree[D any, K comparable] struct {
	// nodes holds every live node in insertion order.
	nodes []*Node[D, K]

	// index maps each key to its node for O(1) lookup. Keys are unique:
	// Append rejects duplicates before any mutation.
	index map[K]*Node[D, K]
}

// New returns an empty tree.
func New[D any, K comparable]() *Tree[D, K] {
	return &Tree[D, K]{
		index: make(map[K]*Node[D, K]),
	}
}

// Append inserts a node into the tree.
//
// The first node must not declare a parent key and becomes the root.
// Every later node must declare the key of a node already in the tree;
// its key is added to that parent's children list. Append fails with
// ErrRootHasParent, ErrMissingParent, ErrParentNotFound or
// ErrDuplicateKey, in which case the tree is left unchanged.
func (t *Tree[D, K]) Append(n *Node[D, K]) error {
	if _, taken := t.index[n.key]; taken {
		return fmt.Errorf("append %v: %w", n.key, ErrDuplicateKey)
	}

	if t.IsEmpty() {
		if n.hasParent {
			return fmt.Errorf("append %v: %w", n.key, ErrRootHasParent)
		}
	} else {
		if !n.hasParent {
			return fmt.Errorf("append %v: %w", n.key, ErrMissingParent)
		}
		parent, ok := t.index[n.parentKey]
		if !ok {
			return fmt.Errorf("append %v: parent %v: %w", n.key, n.parentKey, ErrParentNotFound)
		}
		parent.children = append(parent.children, n.key)
	}

	t.nodes = append(t.nodes, n)
	t.index[n.key] = n
	return nil
}

// Len returns the number of live nodes in the tree.
func (t *Tree[D, K]) Len() int {
	return len(t.nodes)
}

// IsEmpty reports whether the tree holds no nodes.
func (t *Tree[D, K]) IsEmpty() bool {
	return len(t.nodes) == 0
}

// Root returns the tree's root node, or false if the tree is empty.
// The root is always the first node appended.
func (t *Tree[D, K]) Root() (*Node[D, K], bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return t.nodes[0], true
}

// Node returns the node with the given key, or false if no such node
// is in the tree.
func (t *Tree[D, K]) Node(key K) (*Node[D, K], bool) {
	n, ok := t.index[key]
	return n, ok
}

// Contains reports whether a node with the given key is in the tree.
func (t *Tree[D, K]) Contains(key K) bool {
	_, ok := t.index[key]
	return ok
}

// Keys returns the keys of every live node in insertion order.
func (t *Tree[D, K]) Keys() []K {
	out := make([]K, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = n.key
	}
	return out
}
