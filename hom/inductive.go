package hom

import (
	"github.com/gosdd/gosdd/internal/errs"
	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
	"github.com/gosdd/gosdd/values"
)

// Inductive is the user-extensible contract from spec.md §4.7/§9: a
// caller-supplied operator describing how to transform one arc's label
// and how to continue evaluating the successor, without the caller
// having to hand-build Sum/Cons/Local trees themselves. It is the
// mechanism event-based models (Petri net transitions, the scheduling
// and Hanoi-move examples) plug their domain logic into gosdd with.
type Inductive[Id comparable] interface {
	// Skip reports whether this operator leaves level v untouched.
	Skip(v order.Variable) bool
	// Selector reports whether the operator's image is always a subset
	// of its input.
	Selector() bool
	// One returns the image of the One terminal, reached when the
	// operator is evaluated past the end of the order.
	One() (sdd.SDD, error)
	// ApplyValues is called once per arc of a Flat node at the
	// operator's target level: it may narrow the valuation (returning a
	// smaller or empty set) and chooses the homomorphism applied to
	// that arc's successor.
	ApplyValues(o *order.Order[Id], vals values.Set) (values.Set, Homomorphism[Id], error)
	// ApplyNested is the Hierarchical-node analogue of ApplyValues.
	ApplyNested(o *order.Order[Id], nested sdd.SDD) (sdd.SDD, Homomorphism[Id], error)
	Equal(other Inductive[Id]) bool
	Hash() uint64
}

type inductiveData[Id comparable] struct {
	impl Inductive[Id]
}

// InductiveHom wraps a user Inductive implementation as a canonicalized
// Homomorphism.
func (ctx *Context[Id]) InductiveHom(impl Inductive[Id]) Homomorphism[Id] {
	return ctx.unify(inductiveData[Id]{impl: impl})
}

func (d inductiveData[Id]) skip(o *order.Order[Id]) bool {
	v, err := o.Variable()
	if err != nil {
		return false
	}
	return d.impl.Skip(v)
}

func (d inductiveData[Id]) selector() bool { return d.impl.Selector() }

func (d inductiveData[Id]) one() (sdd.SDD, error) { return d.impl.One() }

func (d inductiveData[Id]) apply(ctx *Context[Id], o *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	next, err := o.Next()
	if err != nil {
		return sdd.SDD{}, err
	}

	if s.IsFlat() {
		arcs := s.FlatArcs()
		out := make([]sdd.FlatArc, 0, len(arcs))
		for _, a := range arcs {
			nv, h2, err := d.impl.ApplyValues(o, a.Values)
			if err != nil {
				return sdd.SDD{}, errs.WrapEvaluation("inductive apply_values: %v", err)
			}
			if nv == nil || nv.Empty() {
				continue
			}
			succ, err := ctx.Apply(h2, next, a.Successor)
			if err != nil {
				return sdd.SDD{}, err
			}
			out = append(out, sdd.FlatArc{Values: nv, Successor: succ})
		}
		return ctx.sdds.NodeFlat(s.Variable(), out), nil
	}

	arcs := s.HierArcs()
	out := make([]sdd.HierArc, 0, len(arcs))
	for _, a := range arcs {
		nn, h2, err := d.impl.ApplyNested(o, a.Nested)
		if err != nil {
			return sdd.SDD{}, errs.WrapEvaluation("inductive apply_nested: %v", err)
		}
		if nn.IsZero() {
			continue
		}
		succ, err := ctx.Apply(h2, next, a.Successor)
		if err != nil {
			return sdd.SDD{}, err
		}
		out = append(out, sdd.HierArc{Nested: nn, Successor: succ})
	}
	return ctx.sdds.NodeHierarchical(s.Variable(), out), nil
}

func (d inductiveData[Id]) Hash() uint64 {
	return hashutil.Combine(hashutil.FNV1a([]byte("inductive")), d.impl.Hash())
}

func (d inductiveData[Id]) Equal(other data[Id]) bool {
	o, ok := other.(inductiveData[Id])
	return ok && d.impl.Equal(o.impl)
}
