package hom

import (
	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
	"github.com/gosdd/gosdd/values"
)

// consData prepends a flat arc at o's head, wrapping whatever k produces
// from the rest of the tuple. It carries its own order position (rather
// than relying on the order threaded through Apply) because it is used
// to construct fresh diagrams from scratch — e.g. seeding an initial
// state along an order — where there may be no existing node to recurse
// into. Grounded on _examples/original_source/sdd/hom/cons.hh.
type consData[Id comparable] struct {
	o    *order.Order[Id]
	vals values.Set
	k    Homomorphism[Id]
}

// Cons builds the homomorphism that, applied to any s, produces
// flat(o.Variable(), vals, k(o.Next(), s)) — used to construct diagrams
// level by level rather than to transform an existing one.
func (ctx *Context[Id]) Cons(o *order.Order[Id], vals values.Set, k Homomorphism[Id]) Homomorphism[Id] {
	return ctx.unify(consData[Id]{o: o, vals: vals, k: k})
}

func (consData[Id]) skip(*order.Order[Id]) bool { return false }
func (consData[Id]) selector() bool             { return false }

func (d consData[Id]) apply(ctx *Context[Id], _ *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	next, err := d.o.Next()
	if err != nil {
		return sdd.SDD{}, err
	}
	tail, err := ctx.Apply(d.k, next, s)
	if err != nil {
		return sdd.SDD{}, err
	}
	v, err := d.o.Variable()
	if err != nil {
		return sdd.SDD{}, err
	}
	return ctx.sdds.Flat(v, d.vals, tail), nil
}

func (d consData[Id]) Hash() uint64 {
	h := hashutil.FNV1a([]byte("cons"))
	h = hashutil.Combine(h, d.vals.Hash())
	return hashutil.Combine(h, d.k.Hash())
}

func (d consData[Id]) Equal(other data[Id]) bool {
	o, ok := other.(consData[Id])
	return ok && d.o == o.o && d.vals.Equal(o.vals) && d.k.Equal(o.k)
}

// RetainChildren implements unique.Retainable.
func (d consData[Id]) RetainChildren() { d.k.Retain() }

// Children implements unique.Releasable.
func (d consData[Id]) Children() []unique.Releaser { return []unique.Releaser{d.k} }
