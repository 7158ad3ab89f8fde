package unique

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type intVal int

func (v intVal) Hash() uint64        { return uint64(v) }
func (v intVal) Equal(o intVal) bool { return v == o }

func TestUnifyReturnsSameEntryForEqualValues(t *testing.T) {
	tbl := New[intVal](4, 16, nil)
	e1 := tbl.Unify(intVal(7))
	e2 := tbl.Unify(intVal(7))
	require.Same(t, e1, e2)
	require.Equal(t, 1, tbl.Size())
}

func TestUnifyReturnsDistinctEntriesForDistinctValues(t *testing.T) {
	tbl := New[intVal](4, 16, nil)
	e1 := tbl.Unify(intVal(1))
	e2 := tbl.Unify(intVal(2))
	require.NotSame(t, e1, e2)
	require.Equal(t, 2, tbl.Size())
}

func TestReleaseRemovesEntryAtZeroRefcount(t *testing.T) {
	tbl := New[intVal](4, 16, nil)
	e := tbl.Unify(intVal(42))
	e.Retain()
	require.Equal(t, 1, tbl.Size())
	e.Release()
	require.Equal(t, 0, tbl.Size())
	e2 := tbl.Unify(intVal(99))
	require.Equal(t, 1, tbl.Size())
	_ = e2
}

// chainVal links to a child entry, exercising Retainable/Releasable so
// Unify/release cascade the way sdd.SDD's arc successors and
// hom.Homomorphism's operands do.
type chainVal struct {
	tag   int
	child *Entry[chainVal]
}

func (v chainVal) Hash() uint64          { return uint64(v.tag) }
func (v chainVal) Equal(o chainVal) bool { return v.tag == o.tag }

func (v chainVal) RetainChildren() {
	if v.child != nil {
		v.child.Retain()
	}
}

func (v chainVal) Children() []Releaser {
	if v.child == nil {
		return nil
	}
	return []Releaser{v.child}
}

func TestReleaseCascadesThroughChildrenIteratively(t *testing.T) {
	tbl := New[chainVal](4, 16, nil)

	leaf := tbl.Unify(chainVal{tag: 1})
	leaf.Retain()
	mid := tbl.Unify(chainVal{tag: 2, child: leaf})
	mid.Retain()

	require.Equal(t, 2, tbl.Size())
	require.Equal(t, int32(2), leaf.RefCount()) // one from its own handle, one from mid

	mid.Release()

	require.Equal(t, 1, tbl.Size(), "leaf must survive: its own handle still holds a reference")
	require.Equal(t, int32(1), leaf.RefCount())

	leaf.Release()
	require.Equal(t, 0, tbl.Size())
}

func TestRehashPreservesLookup(t *testing.T) {
	tbl := New[intVal](2, 16, nil)
	entries := make(map[int]*Entry[intVal])
	for i := 0; i < 50; i++ {
		entries[i] = tbl.Unify(intVal(i))
	}
	require.Equal(t, 50, tbl.Size())
	for i := 0; i < 50; i++ {
		require.Same(t, entries[i], tbl.Unify(intVal(i)))
	}
}
