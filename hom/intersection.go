package hom

import (
	"github.com/gosdd/gosdd/internal/errs"
	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

type intersectionData[Id comparable] struct {
	operands []Homomorphism[Id]
}

// Intersection builds the homomorphism applying every operand and
// intersecting the results. Valid only when every operand is a
// selector (its image is always a subset of its input), the same
// restriction spec.md §4.6 places on Intersection; constructing it with
// a non-selector operand is a configuration error.
func (ctx *Context[Id]) Intersection(operands ...Homomorphism[Id]) (Homomorphism[Id], error) {
	if len(operands) == 1 {
		return operands[0], nil
	}
	for _, h := range operands {
		if !h.Selector() {
			return Homomorphism[Id]{}, errs.WrapConfig("intersection operand is not a selector")
		}
	}
	cp := append([]Homomorphism[Id](nil), operands...)
	return ctx.unify(intersectionData[Id]{operands: cp}), nil
}

func (d intersectionData[Id]) skip(o *order.Order[Id]) bool {
	for _, h := range d.operands {
		if !h.Skip(o) {
			return false
		}
	}
	return true
}

func (intersectionData[Id]) selector() bool { return true }

func (d intersectionData[Id]) apply(ctx *Context[Id], o *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	acc := s
	for _, h := range d.operands {
		img, err := ctx.Apply(h, o, s)
		if err != nil {
			return sdd.SDD{}, err
		}
		acc, err = ctx.sdds.Intersection(acc, img)
		if err != nil {
			return sdd.SDD{}, errs.WrapEvaluation("intersection: %v", err)
		}
		if acc.IsZero() {
			return acc, nil
		}
	}
	return acc, nil
}

func (d intersectionData[Id]) Hash() uint64 {
	h := hashutil.FNV1a([]byte("intersection"))
	for _, op := range d.operands {
		h ^= op.Hash()
	}
	return h
}

func (d intersectionData[Id]) Equal(other data[Id]) bool {
	o, ok := other.(intersectionData[Id])
	if !ok || len(d.operands) != len(o.operands) {
		return false
	}
	used := make([]bool, len(o.operands))
	for _, a := range d.operands {
		found := false
		for i, b := range o.operands {
			if !used[i] && a.Equal(b) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// RetainChildren implements unique.Retainable.
func (d intersectionData[Id]) RetainChildren() {
	for _, h := range d.operands {
		h.Retain()
	}
}

// Children implements unique.Releasable.
func (d intersectionData[Id]) Children() []unique.Releaser {
	out := make([]unique.Releaser, len(d.operands))
	for i, h := range d.operands {
		out[i] = h
	}
	return out
}
