package keytree

// RemoveSubtree deletes the node with the given key together with
// every transitive descendant, and returns the number of nodes
// removed. Removing a key that is not in the tree is a no-op and
// returns 0.
//
// The removed key is also pruned from its surviving parent's children
// list, so no dangling child reference remains. Removing the root
// empties the tree, after which a new root may be appended.
func (t *Tree[D, K]) RemoveSubtree(key K) int {
	target, ok := t.index[key]
	if !ok {
		return 0
	}

	doomed := t.collectSubtree(key)
	for _, k := range doomed {
		delete(t.index, k)
	}

	// One ordered pass over the node slice instead of a scan per key.
	live := t.nodes[:0]
	for _, n := range t.nodes {
		if _, ok := t.index[n.key]; ok {
			live = append(live, n)
		}
	}
	for i := len(live); i < len(t.nodes); i++ {
		t.nodes[i] = nil
	}
	t.nodes = live

	if parentKey, hasParent := target.ParentKey(); hasParent {
		if parent, ok := t.index[parentKey]; ok {
			parent.dropChild(key)
		}
	}

	return len(doomed)
}

// SubtreeLen returns the number of nodes in the subtree rooted at the
// given key (the node itself plus all transitive descendants), or 0 if
// no node with the key is in the tree.
func (t *Tree[D, K]) SubtreeLen(key K) int {
	if !t.Contains(key) {
		return 0
	}
	return len(t.collectSubtree(key))
}

// collectSubtree returns the key and every transitive descendant key
// in post-order, leaves before their ancestors, with key itself last.
// Uses an explicit work list so arbitrarily deep trees cannot exhaust
// the call stack. The caller must ensure key is in the tree.
func (t *Tree[D, K]) collectSubtree(key K) []K {
	type frame struct {
		key      K
		expanded bool
	}

	stack := []frame{{key: key}}
	var order []K
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			order = append(order, f.key)
			continue
		}
		stack = append(stack, frame{key: f.key, expanded: true})

		if n, ok := t.index[f.key]; ok {
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, frame{key: n.children[i]})
			}
		}
	}
	return order
}

// dropChild removes the first occurrence of key from the node's
// children list, preserving the order of the rest.
func (n *Node[D, K]) dropChild(key K) {
	for i, child := range n.children {
		if child == key {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
