package order

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFlatChainAssignsVariablesBottomUp(t *testing.T) {
	b := NewBuilder[string]().Push("a").Push("b").Push("c")
	o, err := Build(b)
	require.NoError(t, err)

	// Last sibling gets variable 0; earlier siblings count up.
	va, err := o.IdentifierVariable("a")
	require.NoError(t, err)
	vb, err := o.IdentifierVariable("b")
	require.NoError(t, err)
	vc, err := o.IdentifierVariable("c")
	require.NoError(t, err)
	require.Equal(t, Variable(2), va)
	require.Equal(t, Variable(1), vb)
	require.Equal(t, Variable(0), vc)
}

func TestBuildAssignsPreOrderPositions(t *testing.T) {
	nested := NewBuilder[string]().Push("x").Push("y")
	b := NewBuilder[string]().PushNested("a", nested).Push("b")
	o, err := Build(b)
	require.NoError(t, err)

	pa, _ := o.PositionOf("a")
	px, _ := o.PositionOf("x")
	py, _ := o.PositionOf("y")
	pb, _ := o.PositionOf("b")
	require.True(t, pa < px)
	require.True(t, px < py)
	require.True(t, py < pb)
}

func TestBuildRejectsDuplicateIdentifiers(t *testing.T) {
	b := NewBuilder[string]().Push("a").Push("a")
	_, err := Build(b)
	require.Error(t, err)
}

func TestNavigation(t *testing.T) {
	nested := NewBuilder[string]().Push("x")
	b := NewBuilder[string]().PushNested("a", nested).Push("b")
	o, err := Build(b)
	require.NoError(t, err)

	id, err := o.Identifier()
	require.NoError(t, err)
	require.Equal(t, "a", id)

	n, err := o.Nested()
	require.NoError(t, err)
	nid, err := n.Identifier()
	require.NoError(t, err)
	require.Equal(t, "x", nid)

	next, err := o.Next()
	require.NoError(t, err)
	nextID, err := next.Identifier()
	require.NoError(t, err)
	require.Equal(t, "b", nextID)

	tail, err := next.Next()
	require.NoError(t, err)
	require.True(t, tail.Empty())
}

func TestContainsAndSameHierarchy(t *testing.T) {
	nested := NewBuilder[string]().Push("x").Push("y")
	b := NewBuilder[string]().PushNested("a", nested).Push("b")
	o, err := Build(b)
	require.NoError(t, err)

	require.True(t, o.Contains("a", "x"))
	require.True(t, o.Contains("a", "y"))
	require.False(t, o.Contains("a", "b"))

	same, err := o.SameHierarchy("x", "y")
	require.NoError(t, err)
	require.True(t, same)

	same, err = o.SameHierarchy("x", "b")
	require.NoError(t, err)
	require.False(t, same)
}

func TestCompare(t *testing.T) {
	b := NewBuilder[string]().Push("a").Push("b").Push("c")
	o, err := Build(b)
	require.NoError(t, err)

	before, err := o.Compare("a", "c")
	require.NoError(t, err)
	require.True(t, before)

	before, err = o.Compare("c", "a")
	require.NoError(t, err)
	require.False(t, before)
}

func TestEmptyOrderErrors(t *testing.T) {
	o, err := Build(NewBuilder[string]())
	require.NoError(t, err)
	require.True(t, o.Empty())

	_, err = o.Variable()
	require.Error(t, err)
	_, err = o.Identifier()
	require.Error(t, err)
}
