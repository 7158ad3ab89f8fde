package visit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
	"github.com/gosdd/gosdd/values"
)

func flatOrder(t *testing.T, ids ...string) *order.Order[string] {
	t.Helper()
	b := order.NewBuilder[string]()
	for _, id := range ids {
		b = b.Push(id)
	}
	o, err := order.Build(b)
	require.NoError(t, err)
	return o
}

func TestVisitReachesEachDistinctNodeOnce(t *testing.T) {
	store := sdd.NewStore(16, 16, 16, 16, 16, nil)
	o := flatOrder(t, "a", "b")

	tail := store.Flat(1, values.NewBitsetValues(1), store.One())
	root := store.NodeFlat(0, []sdd.FlatArc{
		{Values: values.NewBitsetValues(1), Successor: tail},
		{Values: values.NewBitsetValues(2), Successor: tail},
	})

	var kinds []Kind
	Visit[string](root, o, func(kind Kind, node sdd.SDD, o *order.Order[string], depth int) bool {
		kinds = append(kinds, kind)
		return true
	})

	// root, tail, one: NodeFlat merges root's two arcs into one because
	// they share tail, and each distinct node is visited exactly once.
	require.Len(t, kinds, 3)
}

func TestVisitStopsDescentWhenFuncReturnsFalse(t *testing.T) {
	store := sdd.NewStore(16, 16, 16, 16, 16, nil)
	o := flatOrder(t, "a", "b")
	tail := store.Flat(1, values.NewBitsetValues(1), store.One())
	root := store.Flat(0, values.NewBitsetValues(1), tail)

	visited := 0
	Visit[string](root, o, func(kind Kind, node sdd.SDD, o *order.Order[string], depth int) bool {
		visited++
		return false
	})
	require.Equal(t, 1, visited)
}

func TestCountPathsCountsWeightedByArcCardinality(t *testing.T) {
	store := sdd.NewStore(16, 16, 16, 16, 16, nil)
	s := store.Flat(0, values.NewBitsetValues(1, 2, 3), store.One())

	n, err := CountPaths(s)
	require.NoError(t, err)
	require.Equal(t, int64(3), n.Int64())
}

func TestCountPathsOfZeroIsZero(t *testing.T) {
	store := sdd.NewStore(16, 16, 16, 16, 16, nil)
	n, err := CountPaths(store.Zero())
	require.NoError(t, err)
	require.Equal(t, int64(0), n.Int64())
}

func TestCountPathsMultipliesAcrossHierarchicalLevel(t *testing.T) {
	store := sdd.NewStore(16, 16, 16, 16, 16, nil)
	nested := store.Flat(0, values.NewBitsetValues(1, 2), store.One())
	hier := store.Hierarchical(0, nested, store.One())

	n, err := CountPaths(hier)
	require.NoError(t, err)
	require.Equal(t, int64(2), n.Int64())
}

func TestRenderDOTSharesOneGraphNodePerCanonicalSDDNode(t *testing.T) {
	store := sdd.NewStore(16, 16, 16, 16, 16, nil)
	o := flatOrder(t, "a", "b")
	tail := store.Flat(1, values.NewBitsetValues(1), store.One())
	root := store.NodeFlat(0, []sdd.FlatArc{
		{Values: values.NewBitsetValues(1), Successor: tail},
		{Values: values.NewBitsetValues(2), Successor: tail},
	})

	g := RenderDOT[string](root, o)
	require.NotNil(t, g)
}
