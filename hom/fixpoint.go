package hom

import (
	"github.com/gosdd/gosdd/internal/errs"
	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

type fixpointData[Id comparable] struct {
	h Homomorphism[Id]
}

// Fixpoint builds the homomorphism that iterates h until its image
// stops growing: x <- s; repeat x' <- h(x); if x' == x stop; x <- x'
// union x. This is the operator the rewriter in hom/rewrite specializes
// into SaturationSum for fixpoints of sums.
func (ctx *Context[Id]) Fixpoint(h Homomorphism[Id]) Homomorphism[Id] {
	if h.Equal(ctx.id) {
		return h
	}
	return ctx.unify(fixpointData[Id]{h: h})
}

func (d fixpointData[Id]) skip(o *order.Order[Id]) bool { return d.h.Skip(o) }
func (d fixpointData[Id]) selector() bool               { return d.h.Selector() }

func (d fixpointData[Id]) apply(ctx *Context[Id], o *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	x := s
	for {
		xp, err := ctx.Apply(d.h, o, x)
		if err != nil {
			return sdd.SDD{}, err
		}
		if xp.Equal(x) {
			return x, nil
		}
		x, err = ctx.sdds.Union(xp, x)
		if err != nil {
			return sdd.SDD{}, errs.WrapEvaluation("fixpoint: %v", err)
		}
	}
}

func (d fixpointData[Id]) Hash() uint64 {
	return hashutil.Combine(hashutil.FNV1a([]byte("fixpoint")), d.h.Hash())
}

func (d fixpointData[Id]) Equal(other data[Id]) bool {
	o, ok := other.(fixpointData[Id])
	return ok && d.h.Equal(o.h)
}

// RetainChildren implements unique.Retainable.
func (d fixpointData[Id]) RetainChildren() { d.h.Retain() }

// Children implements unique.Releasable.
func (d fixpointData[Id]) Children() []unique.Releaser { return []unique.Releaser{d.h} }
