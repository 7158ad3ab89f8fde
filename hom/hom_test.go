package hom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
	"github.com/gosdd/gosdd/values"
)

func newTestFixture(t *testing.T) (*sdd.Store, *Context[string], *order.Order[string]) {
	t.Helper()
	store := sdd.NewStore(16, 16, 16, 16, 16, nil)
	ctx, err := NewContext[string](store, 16, 16)
	require.NoError(t, err)
	o, err := order.Build(order.NewBuilder[string]().Push("a").Push("b"))
	require.NoError(t, err)
	return store, ctx, o
}

func TestIdReturnsInputUnchanged(t *testing.T) {
	store, ctx, o := newTestFixture(t)
	s := store.Flat(mustVar(t, o, "a"), values.NewBitsetValues(1), store.One())

	r, err := ctx.Apply(ctx.Id(), o, s)
	require.NoError(t, err)
	require.True(t, r.Equal(s))
}

func TestConstantIgnoresInputIncludingZero(t *testing.T) {
	store, ctx, o := newTestFixture(t)
	c := store.Flat(mustVar(t, o, "a"), values.NewBitsetValues(9), store.One())
	h := ctx.Constant(c)

	r, err := ctx.Apply(h, o, store.Zero())
	require.NoError(t, err)
	require.True(t, r.Equal(c))

	r, err = ctx.Apply(h, o, store.One())
	require.NoError(t, err)
	require.True(t, r.Equal(c))
}

func TestCompositionAppliesRightThenLeft(t *testing.T) {
	store, ctx, o := newTestFixture(t)
	s := store.One()
	varB := mustVar(t, o, "b")
	oNext, err := o.Next()
	require.NoError(t, err)
	_ = oNext

	g := ctx.Cons(o, values.NewBitsetValues(1), ctx.Id())
	f := ctx.Constant(store.Flat(varB, values.NewBitsetValues(2), store.One()))
	comp := ctx.Composition(f, g)

	direct, err := ctx.Apply(f, o, s)
	require.NoError(t, err)
	composed, err := ctx.Apply(comp, o, s)
	require.NoError(t, err)
	require.True(t, composed.Equal(direct))
}

func TestCompositionWithIdentityFolds(t *testing.T) {
	_, ctx, _ := newTestFixture(t)
	h := ctx.Fixpoint(ctx.Id())
	require.True(t, ctx.Composition(ctx.Id(), h).Equal(h))
	require.True(t, ctx.Composition(h, ctx.Id()).Equal(h))
}

func TestSumUnionsOperandImages(t *testing.T) {
	store, ctx, o := newTestFixture(t)
	varA := mustVar(t, o, "a")
	s := store.One()

	h1 := ctx.Cons(o, values.NewBitsetValues(1), ctx.Id())
	h2 := ctx.Cons(o, values.NewBitsetValues(2), ctx.Id())
	sum := ctx.Sum(h1, h2)

	r, err := ctx.Apply(sum, o, s)
	require.NoError(t, err)
	require.True(t, r.IsFlat())
	require.Equal(t, varA, r.Variable())
	require.Equal(t, 2, r.FlatArcs()[0].Values.Size())
}

func TestFixpointStopsWhenNoGrowth(t *testing.T) {
	store, ctx, o := newTestFixture(t)
	s := store.Flat(mustVar(t, o, "a"), values.NewBitsetValues(1), store.One())
	fp := ctx.Fixpoint(ctx.Id())

	r, err := ctx.Apply(fp, o, s)
	require.NoError(t, err)
	require.True(t, r.Equal(s))
}

func mustVar(t *testing.T, o *order.Order[string], id string) order.Variable {
	t.Helper()
	v, err := o.IdentifierVariable(id)
	require.NoError(t, err)
	return v
}

// keepValue is a FlatFunction that narrows an arc's valuation down to a
// single fixed value, used to exercise Function/Local in tests.
type keepValue struct{ v uint }

func (k keepValue) Apply(vals values.Set) values.Set {
	return vals.Intersection(values.NewBitsetValues(k.v))
}
func (keepValue) Selector() bool { return true }
func (k keepValue) Equal(other FlatFunction[string]) bool {
	o, ok := other.(keepValue)
	return ok && k.v == o.v
}
func (k keepValue) Hash() uint64 { return uint64(k.v) ^ 0xBADA55 }

func TestLocalAppliesHToNestedDiagramsAndPropagatesSelector(t *testing.T) {
	store := sdd.NewStore(16, 16, 16, 16, 16, nil)
	ctx, err := NewContext[string](store, 16, 16)
	require.NoError(t, err)

	nestedBuilder := order.NewBuilder[string]().Push("x")
	o, err := order.Build(order.NewBuilder[string]().PushNested("a", nestedBuilder).Push("b"))
	require.NoError(t, err)

	va := mustVar(t, o, "a")
	nestedOrder, err := o.Nested()
	require.NoError(t, err)
	vx, err := nestedOrder.IdentifierVariable("x")
	require.NoError(t, err)

	nested := store.Flat(vx, values.NewBitsetValues(1, 2), store.One())
	s := store.Hierarchical(va, nested, store.One())

	restrict := ctx.Function(vx, keepValue{v: 1})
	local := ctx.Local(va, restrict)
	require.True(t, local.Selector(), "Local of a selector must itself be a selector")

	r, err := ctx.Apply(local, o, s)
	require.NoError(t, err)
	require.True(t, r.IsHierarchical())
	require.Equal(t, 1, r.HierArcs()[0].Nested.FlatArcs()[0].Values.Size())
}
