package hom

import (
	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

type constantData[Id comparable] struct {
	c sdd.SDD
}

// Constant returns the homomorphism that maps every input, including
// Zero, to the fixed diagram c (spec.md §8 invariant: Constant(c)(s) ==
// c for all s). The central dispatch in Context.Apply special-cases it
// via isConstant, ahead of the generic Zero/One rules.
func (ctx *Context[Id]) Constant(c sdd.SDD) Homomorphism[Id] {
	return ctx.unify(constantData[Id]{c: c})
}

func (d constantData[Id]) skip(*order.Order[Id]) bool { return false }
func (d constantData[Id]) selector() bool             { return false }

func (d constantData[Id]) apply(_ *Context[Id], _ *order.Order[Id], _ sdd.SDD) (sdd.SDD, error) {
	return d.c, nil
}

func (d constantData[Id]) constantValue() sdd.SDD { return d.c }

// RetainChildren implements unique.Retainable.
func (d constantData[Id]) RetainChildren() { d.c.Retain() }

// Children implements unique.Releasable.
func (d constantData[Id]) Children() []unique.Releaser { return []unique.Releaser{d.c} }

func (d constantData[Id]) Hash() uint64 {
	return hashutil.Combine(hashutil.FNV1a([]byte("constant")), d.c.Hash())
}

func (d constantData[Id]) Equal(other data[Id]) bool {
	o, ok := other.(constantData[Id])
	return ok && d.c.Equal(o.c)
}
