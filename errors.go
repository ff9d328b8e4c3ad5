// Package keytree provides a generic in-memory tree container: typed
// payloads addressed by unique keys, linked by explicit parent
// references, with parent-checked appends, route traversal from the
// root, and cascading subtree removal.
package keytree

import "errors"

// Structural errors, reported by Append when a node breaks the
// parent/child contract. A failed append leaves the tree unchanged.
var (
	// ErrRootHasParent indicates that the first node of a tree declared
	// a parent key.
	ErrRootHasParent = errors.New("root node cannot declare a parent key")

	// ErrMissingParent indicates that a node appended to a non-empty
	// tree declared no parent key.
	ErrMissingParent = errors.New("non-root node requires a parent key")

	// ErrParentNotFound indicates that a node's declared parent key does
	// not match any node currently in the tree.
	ErrParentNotFound = errors.New("parent not found in tree")

	// ErrDuplicateKey indicates that a node's key is already taken by a
	// node in the tree.
	ErrDuplicateKey = errors.New("key already present in tree")
)
