package hom

import (
	"github.com/gosdd/gosdd/internal/errs"
	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

// saturationSumData is the level-local operator the rewriter in
// hom/rewrite produces from Fixpoint(Sum(H)): F saturates the levels
// below v before G is ever applied, L saturates the hierarchy nested at
// v, and G is the set of homomorphisms that actually touch v without
// being confined to its hierarchy. Grounded on
// _examples/original_source/sdd/hom/rewriting.hh and the saturation
// description in spec.md §4.8.
type saturationSumData[Id comparable] struct {
	v    order.Variable
	f    Homomorphism[Id]
	hasF bool
	l    Homomorphism[Id]
	hasL bool
	g    []Homomorphism[Id]
}

// SaturationSum constructs the variant directly; hom/rewrite is the
// only intended caller, since F and L must already be the fully
// rewritten Fixpoint(Sum(...)) and Local(v, Fixpoint(Sum(...)))
// homomorphisms described in spec.md §4.8.
func (ctx *Context[Id]) SaturationSum(v order.Variable, f Homomorphism[Id], hasF bool, l Homomorphism[Id], hasL bool, g []Homomorphism[Id]) Homomorphism[Id] {
	cp := append([]Homomorphism[Id](nil), g...)
	return ctx.unify(saturationSumData[Id]{v: v, f: f, hasF: hasF, l: l, hasL: hasL, g: cp})
}

func (d saturationSumData[Id]) skip(o *order.Order[Id]) bool {
	v, err := o.Variable()
	if err != nil {
		return true
	}
	return v != d.v
}

func (saturationSumData[Id]) selector() bool { return false }

// apply implements the saturation fixpoint at level v: descend-saturate
// (F), hierarchy-saturate (L), then union in every event of G, looping
// until the level stops growing — spec.md §4.8 steps (i)-(iv).
func (d saturationSumData[Id]) apply(ctx *Context[Id], o *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	x := s
	for {
		prev := x
		var err error
		if d.hasF {
			x, err = ctx.Apply(d.f, o, x)
			if err != nil {
				return sdd.SDD{}, err
			}
		}
		if d.hasL {
			x, err = ctx.Apply(d.l, o, x)
			if err != nil {
				return sdd.SDD{}, err
			}
		}
		for _, g := range d.g {
			gx, err := ctx.Apply(g, o, x)
			if err != nil {
				return sdd.SDD{}, err
			}
			x, err = ctx.sdds.Union(x, gx)
			if err != nil {
				return sdd.SDD{}, errs.WrapEvaluation("saturation sum: %v", err)
			}
		}
		if x.Equal(prev) {
			return x, nil
		}
	}
}

func (d saturationSumData[Id]) Hash() uint64 {
	h := hashutil.Combine(hashutil.FNV1a([]byte("saturation")), hashutil.Uint64(uint64(d.v)))
	if d.hasF {
		h = hashutil.Combine(h, d.f.Hash())
	}
	if d.hasL {
		h = hashutil.Combine(h, d.l.Hash())
	}
	for _, g := range d.g {
		h ^= g.Hash()
	}
	return h
}

func (d saturationSumData[Id]) Equal(other data[Id]) bool {
	o, ok := other.(saturationSumData[Id])
	if !ok || d.v != o.v || d.hasF != o.hasF || d.hasL != o.hasL || len(d.g) != len(o.g) {
		return false
	}
	if d.hasF && !d.f.Equal(o.f) {
		return false
	}
	if d.hasL && !d.l.Equal(o.l) {
		return false
	}
	used := make([]bool, len(o.g))
	for _, a := range d.g {
		found := false
		for i, b := range o.g {
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
func (d saturationSumData[Id]) RetainChildren() {
	if d.hasF {
		d.f.Retain()
	}
	if d.hasL {
		d.l.Retain()
	}
	for _, g := range d.g {
		g.Retain()
	}
}

// Children implements unique.Releasable.
func (d saturationSumData[Id]) Children() []unique.Releaser {
	out := make([]unique.Releaser, 0, len(d.g)+2)
	if d.hasF {
		out = append(out, d.f)
	}
	if d.hasL {
		out = append(out, d.l)
	}
	for _, g := range d.g {
		out = append(out, g)
	}
	return out
}
