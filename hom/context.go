package hom

import (
	lru "github.com/hashicorp/golang-lru/arc/v2"

	"github.com/gosdd/gosdd/internal/errs"
	"github.com/gosdd/gosdd/internal/refcount"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

// applyKey is the memoization key for Context.Apply: both operands are
// canonical comparable handles, so the pair is usable directly as a map
// key without any manual hashing.
type applyKey[Id comparable] struct {
	h Homomorphism[Id]
	s sdd.SDD
}

// Context owns the homomorphism unique table and the ARC-backed
// homomorphism x SDD -> SDD evaluation cache (spec.md §4.6, §6): the
// per-process memoization tables threaded through every Apply call.
// Grounded on _examples/original_source/sdd/hom/context.hh, adapted to
// use github.com/hashicorp/golang-lru/arc/v2 the way
// _examples/AKJUS-bsc-erigon uses ARC caches for its state trie nodes.
type Context[Id comparable] struct {
	table *unique.Table[data[Id]]
	cache *lru.ARCCache[applyKey[Id], sdd.SDD]
	sdds  *sdd.Store

	id Homomorphism[Id]
}

// NewContext builds a Context backed by sdds for the set operations
// homomorphism evaluation needs (union for Sum/Fixpoint, intersection
// and difference are available to user Inductive implementations
// through the same store).
func NewContext[Id comparable](sdds *sdd.Store, uniqueTableSize, cacheSize int) (*Context[Id], error) {
	table := unique.New[data[Id]](uniqueTableSize, uniqueTableSize/4, nil)
	cache, err := lru.NewARC[applyKey[Id], sdd.SDD](cacheSize)
	if err != nil {
		return nil, errs.WrapConfig("building homomorphism cache: %v", err)
	}
	ctx := &Context[Id]{table: table, cache: cache, sdds: sdds}
	ctx.id = ctx.unify(idData[Id]{})
	return ctx, nil
}

func (ctx *Context[Id]) unify(d data[Id]) Homomorphism[Id] {
	return Homomorphism[Id]{ref: refcount.New(ctx.table.Unify(d))}
}

// Id returns the canonical identity homomorphism.
func (ctx *Context[Id]) Id() Homomorphism[Id] { return ctx.id }

// Apply evaluates h on s under order o, the single evaluation entry
// point described in spec.md §4.6. It dispatches in four steps: the
// Id and Constant short circuits, the Zero/One terminal rules, the
// generic skip-and-descend rule shared by every variant, and finally
// the variant's own handler — each step memoized on (h, s) except the
// trivial first two.
func (ctx *Context[Id]) Apply(h Homomorphism[Id], o *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	if h.Equal(ctx.id) {
		return s, nil
	}
	if c, ok := h.ref.Value().(isConstant[Id]); ok {
		return c.constantValue(), nil
	}
	if s.IsZero() {
		return ctx.sdds.Zero(), nil
	}
	if s.IsOne() {
		if withOne, ok := h.ref.Value().(hasOne[Id]); ok {
			return withOne.one()
		}
	}

	key := applyKey[Id]{h: h, s: s}
	if cached, ok := ctx.cache.Get(key); ok {
		return cached, nil
	}

	var result sdd.SDD
	var err error
	if h.Skip(o) && (s.IsFlat() || s.IsHierarchical()) {
		result, err = ctx.descend(h, o, s)
	} else {
		result, err = h.ref.Value().apply(ctx, o, s)
	}
	if err != nil {
		return sdd.SDD{}, err
	}
	ctx.cache.Add(key, result)
	return result, nil
}

// descend implements the generic skip rule (spec.md §4.6 step 3): h
// leaves the level at o's head untouched, so it is pushed down to every
// successor (and, for hierarchical nodes, left off the nested diagram
// entirely — a homomorphism only ever acts along the successor spine
// except when it specifically targets a nested level, as Local does).
func (ctx *Context[Id]) descend(h Homomorphism[Id], o *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	next, err := o.Next()
	if err != nil {
		return sdd.SDD{}, err
	}

	if s.IsFlat() {
		arcs := s.FlatArcs()
		out := make([]sdd.FlatArc, len(arcs))
		for i, a := range arcs {
			succ, err := ctx.Apply(h, next, a.Successor)
			if err != nil {
				return sdd.SDD{}, err
			}
			out[i] = sdd.FlatArc{Values: a.Values, Successor: succ}
		}
		return ctx.sdds.NodeFlat(s.Variable(), out), nil
	}

	arcs := s.HierArcs()
	out := make([]sdd.HierArc, len(arcs))
	for i, a := range arcs {
		succ, err := ctx.Apply(h, next, a.Successor)
		if err != nil {
			return sdd.SDD{}, err
		}
		out[i] = sdd.HierArc{Nested: a.Nested, Successor: succ}
	}
	return ctx.sdds.NodeHierarchical(s.Variable(), out), nil
}
