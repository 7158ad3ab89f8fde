package hom

import (
	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

type compositionData[Id comparable] struct {
	f, g Homomorphism[Id]
}

// Composition builds f∘g: applied to s it computes f(g(s)) (spec.md §8
// invariant: Composition(f,g)(s) == f(g(s))).
func (ctx *Context[Id]) Composition(f, g Homomorphism[Id]) Homomorphism[Id] {
	if f.Equal(ctx.id) {
		return g
	}
	if g.Equal(ctx.id) {
		return f
	}
	return ctx.unify(compositionData[Id]{f: f, g: g})
}

func (d compositionData[Id]) skip(o *order.Order[Id]) bool {
	return d.f.Skip(o) && d.g.Skip(o)
}

func (d compositionData[Id]) selector() bool { return d.f.Selector() && d.g.Selector() }

func (d compositionData[Id]) apply(ctx *Context[Id], o *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	inner, err := ctx.Apply(d.g, o, s)
	if err != nil {
		return sdd.SDD{}, err
	}
	return ctx.Apply(d.f, o, inner)
}

func (d compositionData[Id]) Hash() uint64 {
	h := hashutil.FNV1a([]byte("composition"))
	h = hashutil.Combine(h, d.f.Hash())
	return hashutil.Combine(h, d.g.Hash())
}

func (d compositionData[Id]) Equal(other data[Id]) bool {
	o, ok := other.(compositionData[Id])
	return ok && d.f.Equal(o.f) && d.g.Equal(o.g)
}

// RetainChildren implements unique.Retainable.
func (d compositionData[Id]) RetainChildren() {
	d.f.Retain()
	d.g.Retain()
}

// Children implements unique.Releasable.
func (d compositionData[Id]) Children() []unique.Releaser {
	return []unique.Releaser{d.f, d.g}
}
