package keytree

// TravelTo walks a route of child keys downward from the root and
// returns the node the route ends on. An empty route returns the root.
//
// Each step requires the current node to list the next key among its
// children; otherwise the walk stops and TravelTo returns false. An
// empty tree has no root, so every route misses.
func (t *Tree[D, K]) TravelTo(route ...K) (*Node[D, K], bool) {
	current, ok := t.Root()
	if !ok {
		return nil, false
	}
	for _, key := range route {
		if !current.HasChild(key) {
			return nil, false
		}
		next, ok := t.index[key]
		if !ok {
			// A child entry without a live node would mean the tree was
			// corrupted; treat the route as a miss rather than panic.
			return nil, false
		}
		current = next
	}
	return current, true
}

// PathTo returns the route from the root to the node with the given
// key, suitable for TravelTo. The route for the root itself is empty.
// Returns false if no node with the key is in the tree.
func (t *Tree[D, K]) PathTo(key K) ([]K, bool) {
	n, ok := t.index[key]
	if !ok {
		return nil, false
	}

	var route []K
	for {
		parent, hasParent := n.ParentKey()
		if !hasParent {
			break
		}
		route = append(route, n.key)
		n, ok = t.index[parent]
		if !ok {
			return nil, false
		}
	}

	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, true
}

// Walk visits every node reachable from the root in depth-first
// pre-order, parents before children, children in append order. It
// stops early if fn returns false. Walking an empty tree visits
// nothing. The tree must not be mutated during the walk.
func (t *Tree[D, K]) Walk(fn func(*Node[D, K]) bool) {
	root, ok := t.Root()
	if !ok {
		return
	}

	stack := []*Node[D, K]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(n) {
			return
		}

		// Push children in reverse so they pop in append order.
		for i := len(n.children) - 1; i >= 0; i-- {
			if child, ok := t.index[n.children[i]]; ok {
				stack = append(stack, child)
			}
		}
	}
}
