package hom

import (
	"github.com/gosdd/gosdd/internal/errs"
	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

type sumData[Id comparable] struct {
	operands []Homomorphism[Id]
}

// Sum builds the homomorphism applying every operand and unioning the
// results: Sum(H)(s) == union over h in H of h(s).
func (ctx *Context[Id]) Sum(operands ...Homomorphism[Id]) Homomorphism[Id] {
	if len(operands) == 1 {
		return operands[0]
	}
	cp := append([]Homomorphism[Id](nil), operands...)
	return ctx.unify(sumData[Id]{operands: cp})
}

func (d sumData[Id]) skip(o *order.Order[Id]) bool {
	for _, h := range d.operands {
		if !h.Skip(o) {
			return false
		}
	}
	return true
}

func (d sumData[Id]) selector() bool {
	for _, h := range d.operands {
		if !h.Selector() {
			return false
		}
	}
	return true
}

func (d sumData[Id]) apply(ctx *Context[Id], o *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	acc := ctx.sdds.Zero()
	// An Id operand's image is s itself; seeding the accumulator with s
	// avoids computing it again through the generic dispatch.
	hasId := false
	for _, h := range d.operands {
		if h.Equal(ctx.id) {
			hasId = true
			break
		}
	}
	if hasId {
		acc = s
	}
	for _, h := range d.operands {
		if h.Equal(ctx.id) {
			continue
		}
		img, err := ctx.Apply(h, o, s)
		if err != nil {
			return sdd.SDD{}, err
		}
		acc, err = ctx.sdds.Union(acc, img)
		if err != nil {
			return sdd.SDD{}, errs.WrapEvaluation("sum: %v", err)
		}
	}
	return acc, nil
}

func (d sumData[Id]) Hash() uint64 {
	h := hashutil.FNV1a([]byte("sum"))
	for _, op := range d.operands {
		h ^= op.Hash()
	}
	return h
}

func (d sumData[Id]) Equal(other data[Id]) bool {
	o, ok := other.(sumData[Id])
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
func (d sumData[Id]) RetainChildren() {
	for _, h := range d.operands {
		h.Retain()
	}
}

// Children implements unique.Releasable.
func (d sumData[Id]) Children() []unique.Releaser {
	out := make([]unique.Releaser, len(d.operands))
	for i, h := range d.operands {
		out[i] = h
	}
	return out
}
