package keytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTravelToChain(t *testing.T) {
	tree := newDialogueTree(t)

	n, ok := tree.TravelTo("Sitzplatz", "Gang")
	require.True(t, ok)
	assert.Equal(t, "Gang", n.Key())
	assert.Equal(t, "Ok, dann einen Sitzplatz am Gang. Bis dann!", n.Data)
}

func TestTravelToEmptyRouteReturnsRoot(t *testing.T) {
	tree := newDialogueTree(t)

	n, ok := tree.TravelTo()
	require.True(t, ok)
	assert.Equal(t, "Start", n.Key())
}

func TestTravelToUnknownKey(t *testing.T) {
	tree := newDialogueTree(t)

	_, ok := tree.TravelTo("Tisch")
	assert.False(t, ok)
}

func TestTravelToSkippedLevel(t *testing.T) {
	tree := newDialogueTree(t)

	// Gang exists but is not a direct child of the root.
	_, ok := tree.TravelTo("Gang")
	assert.False(t, ok)
}

func TestTravelToPartialRoute(t *testing.T) {
	tree := newDialogueTree(t)

	// Essen is a leaf, so the route cannot continue past it.
	_, ok := tree.TravelTo("Essen", "Gang")
	assert.False(t, ok)
}

func TestTravelToEmptyTree(t *testing.T) {
	tree := New[string, string]()

	_, ok := tree.TravelTo()
	assert.False(t, ok)

	_, ok = tree.TravelTo("Start")
	assert.False(t, ok)
}

func TestPathToInvertsTravelTo(t *testing.T) {
	tree := newDialogueTree(t)

	route, ok := tree.PathTo("Gang")
	require.True(t, ok)
	assert.Equal(t, []string{"Sitzplatz", "Gang"}, route)

	n, ok := tree.TravelTo(route...)
	require.True(t, ok)
	assert.Equal(t, "Gang", n.Key())
}

func TestPathToRootIsEmpty(t *testing.T) {
	tree := newDialogueTree(t)

	route, ok := tree.PathTo("Start")
	require.True(t, ok)
	assert.Empty(t, route)
}

func TestPathToUnknownKey(t *testing.T) {
	tree := newDialogueTree(t)

	_, ok := tree.PathTo("Tisch")
	assert.False(t, ok)
}

func TestWalkVisitsAllPreOrder(t *testing.T) {
	tree := newDialogueTree(t)

	var visited []string
	tree.Walk(func(n *Node[string, string]) bool {
		visited = append(visited, n.Key())
		return true
	})

	// Parents before children, children in append order.
	assert.Equal(t, []string{"Start", "Essen", "Sitzplatz", "Gang"}, visited)
}

func TestWalkEarlyExit(t *testing.T) {
	tree := newDialogueTree(t)

	var visited []string
	tree.Walk(func(n *Node[string, string]) bool {
		visited = append(visited, n.Key())
		return n.Key() != "Essen"
	})

	assert.Equal(t, []string{"Start", "Essen"}, visited)
}

func TestWalkEmptyTree(t *testing.T) {
	tree := New[string, string]()

	called := false
	tree.Walk(func(*Node[string, string]) bool {
		called = true
		return true
	})
	assert.False(t, called)
}
