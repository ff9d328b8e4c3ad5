package keytree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented rendering of the tree to w, one node per
// line, children indented under their parent in append order. Intended
// for debugging and the demo tooling, not for machine consumption.
func (t *Tree[D, K]) Dump(w io.Writer) error {
	root, ok := t.Root()
	if !ok {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return t.dumpNode(w, root, 0)
}

func (t *Tree[D, K]) dumpNode(w io.Writer, n *Node[D, K], depth int) error {
	if _, err := fmt.Fprintf(w, "%s%v\n", strings.Repeat("  ", depth), n.key); err != nil {
		return err
	}
	for _, key := range n.children {
		child, ok := t.index[key]
		if !ok {
			continue
		}
		if err := t.dumpNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// String renders the tree as Dump would.
func (t *Tree[D, K]) String() string {
	var b strings.Builder
	t.Dump(&b)
	return b.String()
}
