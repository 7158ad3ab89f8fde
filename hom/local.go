package hom

import (
	"github.com/gosdd/gosdd/internal/errs"
	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

type localData[Id comparable] struct {
	v order.Variable
	h Homomorphism[Id]
}

// Local builds the homomorphism that applies h to the nested diagram of
// every arc of the Hierarchical node at variable v, leaving every other
// level untouched. It is the operator the rewriter pulls out of Sum
// operands that all share the same target hierarchy, so saturation can
// descend into that hierarchy independently of the outer level.
func (ctx *Context[Id]) Local(v order.Variable, h Homomorphism[Id]) Homomorphism[Id] {
	if h.Equal(ctx.id) {
		return h
	}
	return ctx.unify(localData[Id]{v: v, h: h})
}

func (d localData[Id]) skip(o *order.Order[Id]) bool {
	v, err := o.Variable()
	if err != nil {
		return true
	}
	return v != d.v
}

// selector: Local of a selector is itself a selector, since every arc
// it touches is replaced by a subset of its own nested diagram and
// every other arc is left untouched (same rule as Fixpoint and
// Composition above).
func (d localData[Id]) selector() bool { return d.h.Selector() }

func (d localData[Id]) apply(ctx *Context[Id], o *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	if !s.IsHierarchical() {
		return sdd.SDD{}, errs.WrapEvaluation("local(%d): expected a hierarchical node", d.v)
	}
	nested, err := o.Nested()
	if err != nil {
		return sdd.SDD{}, err
	}
	arcs := s.HierArcs()
	out := make([]sdd.HierArc, len(arcs))
	for i, a := range arcs {
		newNested, err := ctx.Apply(d.h, nested, a.Nested)
		if err != nil {
			return sdd.SDD{}, err
		}
		out[i] = sdd.HierArc{Nested: newNested, Successor: a.Successor}
	}
	return ctx.sdds.NodeHierarchical(s.Variable(), out), nil
}

func (d localData[Id]) Hash() uint64 {
	h := hashutil.Combine(hashutil.FNV1a([]byte("local")), hashutil.Uint64(uint64(d.v)))
	return hashutil.Combine(h, d.h.Hash())
}

func (d localData[Id]) Equal(other data[Id]) bool {
	o, ok := other.(localData[Id])
	return ok && d.v == o.v && d.h.Equal(o.h)
}

// RetainChildren implements unique.Retainable.
func (d localData[Id]) RetainChildren() { d.h.Retain() }

// Children implements unique.Releasable.
func (d localData[Id]) Children() []unique.Releaser { return []unique.Releaser{d.h} }
