// Package rewrite implements the saturation transformation from
// spec.md §4.8: Fixpoint(Sum(H)) is rewritten, level by level, into a
// SaturationSum that only ever materializes one level's worth of
// intermediate diagrams instead of re-unioning the whole structure on
// every outer iteration. Grounded on
// _examples/original_source/sdd/hom/rewriting.hh.
package rewrite

import (
	"github.com/gosdd/gosdd/hom"
	"github.com/gosdd/gosdd/order"
)

// Rewrite saturates h under order o. If h is not (or does not contain,
// after unwrapping) a Fixpoint(Sum(...)) at o's head, it is returned
// unchanged — saturation only ever changes the shape of that specific
// pattern, never its meaning (spec.md §8: Apply(Rewrite(h), o, s) ==
// Apply(h, o, s) for every s).
func Rewrite[Id comparable](ctx *hom.Context[Id], h hom.Homomorphism[Id], o *order.Order[Id]) hom.Homomorphism[Id] {
	if o.Empty() {
		return h
	}

	inner, ok := hom.AsFixpoint(h)
	if !ok {
		return h
	}
	operands, ok := hom.AsSum(inner)
	if !ok {
		operands = []hom.Homomorphism[Id]{inner}
	}

	v, err := o.Variable()
	if err != nil {
		return h
	}

	var f, g, l []hom.Homomorphism[Id]
	for _, op := range operands {
		switch {
		case op.Skip(o):
			f = append(f, op)
		default:
			if lv, inner, isLocal := hom.AsLocal(op); isLocal && lv == v {
				l = append(l, inner)
			} else {
				g = append(g, op)
			}
		}
	}

	if len(f) == 0 && len(l) == 0 {
		// Every operand touches this level directly and none is a Local
		// here: there is nothing to saturate below or inside this level
		// first, so h is returned unchanged.
		return h
	}

	var fPrime hom.Homomorphism[Id]
	hasF := len(f) > 0
	if hasF {
		next, err := o.Next()
		if err != nil {
			hasF = false
		} else {
			withId := append(append([]hom.Homomorphism[Id](nil), f...), ctx.Id())
			fPrime = Rewrite[Id](ctx, ctx.Fixpoint(ctx.Sum(withId...)), next)
		}
	}

	var lPrime hom.Homomorphism[Id]
	hasL := len(l) > 0
	if hasL {
		nested, err := o.Nested()
		if err != nil {
			hasL = false
		} else {
			withId := append(append([]hom.Homomorphism[Id](nil), l...), ctx.Id())
			lPrime = ctx.Local(v, Rewrite[Id](ctx, ctx.Fixpoint(ctx.Sum(withId...)), nested))
		}
	}

	return ctx.SaturationSum(v, fPrime, hasF, lPrime, hasL, g)
}
