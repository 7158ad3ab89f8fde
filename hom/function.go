package hom

import (
	"github.com/gosdd/gosdd/internal/errs"
	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
	"github.com/gosdd/gosdd/values"
)

// FlatFunction rewrites the valuation labelling a Flat arc, without
// changing the successor. Implementations must be canonicalizable:
// Equal/Hash should agree with value identity the same way the values
// package's own Set implementations do.
type FlatFunction[Id comparable] interface {
	Apply(vals values.Set) values.Set
	Selector() bool
	Equal(other FlatFunction[Id]) bool
	Hash() uint64
}

type functionData[Id comparable] struct {
	v order.Variable
	f FlatFunction[Id]
}

// Function builds the homomorphism that rewrites the valuation of every
// arc of the Flat node at variable v through f, leaving the successors
// untouched. Grounded on
// _examples/original_source/sdd/hom/function.hh.
func (ctx *Context[Id]) Function(v order.Variable, f FlatFunction[Id]) Homomorphism[Id] {
	return ctx.unify(functionData[Id]{v: v, f: f})
}

func (d functionData[Id]) skip(o *order.Order[Id]) bool {
	v, err := o.Variable()
	if err != nil {
		return true
	}
	return v != d.v
}

func (d functionData[Id]) selector() bool { return d.f.Selector() }

func (d functionData[Id]) apply(ctx *Context[Id], _ *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	if !s.IsFlat() {
		return sdd.SDD{}, errs.WrapEvaluation("function(%d): expected a flat node", d.v)
	}
	arcs := s.FlatArcs()
	out := make([]sdd.FlatArc, 0, len(arcs))
	for _, a := range arcs {
		nv := d.f.Apply(a.Values)
		if nv == nil || nv.Empty() {
			continue
		}
		out = append(out, sdd.FlatArc{Values: nv, Successor: a.Successor})
	}
	return ctx.sdds.NodeFlat(s.Variable(), out), nil
}

func (d functionData[Id]) Hash() uint64 {
	h := hashutil.Combine(hashutil.FNV1a([]byte("function")), hashutil.Uint64(uint64(d.v)))
	return hashutil.Combine(h, d.f.Hash())
}

func (d functionData[Id]) Equal(other data[Id]) bool {
	o, ok := other.(functionData[Id])
	return ok && d.v == o.v && d.f.Equal(o.f)
}
