// Package hom implements the homomorphism algebra from spec.md §3/§4.6/
// §4.7: a closed set of canonicalized, composable SDD-to-SDD operators
// (Id, Constant, Cons, Composition, Sum, Intersection, Fixpoint, Local,
// Function, Inductive) plus the SaturationSum variant produced by the
// rewriter in hom/rewrite. Grounded on
// _examples/original_source/sdd/hom and
// _examples/original_source/sdd/internal/mem/variant.hh (the tagged,
// user-extensible variant discussed in spec.md §9).
package hom

import (
	"github.com/gosdd/gosdd/internal/refcount"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

// data is the structural payload canonicalized by the homomorphism
// unique table: every concrete operator variant implements it. It is
// the Go substitute for the original's boost::variant-based tagged
// union — Context.Apply calling these methods plays the role of the
// visitor.
type data[Id comparable] interface {
	skip(o *order.Order[Id]) bool
	selector() bool
	apply(ctx *Context[Id], o *order.Order[Id], s sdd.SDD) (sdd.SDD, error)
	Hash() uint64
	Equal(data[Id]) bool
}

// hasOne is implemented by variants that define an image for the One
// terminal (spec.md §4.6 step 2); currently only Inductive operators do,
// via their user-supplied One() method.
type hasOne[Id comparable] interface {
	one() (sdd.SDD, error)
}

// isConstant marks the Constant variant so the central dispatch can
// short-circuit it before the generic Zero/One handling — Constant(c)
// returns c unconditionally, even for s == Zero (spec.md §8 invariant
// 7: Constant(c)(s) == c for all s).
type isConstant[Id comparable] interface {
	constantValue() sdd.SDD
}

// Homomorphism is the canonicalized, reference-counted handle to a
// tagged operator. Equality and hashing are pointer identity over the
// shared unique-table entry, mirroring sdd.SDD (spec.md §8 invariant 1
// applied to homomorphisms).
type Homomorphism[Id comparable] struct {
	ref refcount.Ref[data[Id]]
}

// Equal reports whether h and other are the same canonical operator.
func (h Homomorphism[Id]) Equal(other Homomorphism[Id]) bool { return h.ref.Equal(other.ref) }

// Hash returns a hash consistent with Equal.
func (h Homomorphism[Id]) Hash() uint64 { return h.ref.Hash() }

// Skip reports whether h leaves the level at o's head untouched.
func (h Homomorphism[Id]) Skip(o *order.Order[Id]) bool { return h.ref.Value().skip(o) }

// Selector reports whether h's image is always a subset of its input.
func (h Homomorphism[Id]) Selector() bool { return h.ref.Value().selector() }

// Retain/Release expose the handle's reference count (spec.md §5).
func (h Homomorphism[Id]) Retain()  { h.ref.Retain() }
func (h Homomorphism[Id]) Release() { h.ref.Release() }

// DropOne implements unique.Releaser, letting a Homomorphism act as a
// child in another value's cascade-release worklist (a Composition's f
// and g, a Sum's operands, and so on).
func (h Homomorphism[Id]) DropOne() []unique.Releaser { return h.ref.DropOne() }
