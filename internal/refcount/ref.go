// Package refcount provides the small reference-counted handle wrapper
// described in spec.md §4.2: a value type that owns one reference to a
// unique-table entry, whose equality and hash are pointer identity, and
// whose Release drops the owning reference (freeing the entry when the
// count reaches zero).
package refcount

import (
	"unsafe"

	"github.com/gosdd/gosdd/internal/unique"
)

// Ref is a reference-counted handle to a unique.Entry[T]. Copying a Ref
// does not itself retain — callers who keep a handle alive independently
// of the unique table (storing it in a field, a cache, outliving the
// scope that produced it) must call Retain for that copy, mirroring the
// original's copy-constructor semantics made explicit since Go has no
// destructors. The copies embedded inside another canonicalized value's
// own structure (an SDD arc's successor, a homomorphism's operand) are
// retained automatically by unique.Table.Unify via Retainable, once,
// the moment that value becomes the canonical entry.
type Ref[T unique.Unifiable[T]] struct {
	entry *unique.Entry[T]
}

// New wraps entry in a Ref, retaining it.
func New[T unique.Unifiable[T]](entry *unique.Entry[T]) Ref[T] {
	entry.Retain()
	return Ref[T]{entry: entry}
}

// Value returns the underlying canonical value.
func (r Ref[T]) Value() T { return r.entry.Value }

// Retain increments the reference count; call when a second, independent
// owner of this handle is created (e.g. stored in two containers).
func (r Ref[T]) Retain() { r.entry.Retain() }

// Release drops one reference, deallocating the underlying entry (and,
// transitively, any entries it alone kept alive) once the count reaches
// zero.
func (r Ref[T]) Release() { r.entry.Release() }

// DropOne implements unique.Releaser, letting a Ref act as a child in
// another value's cascade-release worklist.
func (r Ref[T]) DropOne() []unique.Releaser { return r.entry.DropOne() }

// Equal reports pointer identity: two Refs are equal iff they wrap the
// same canonical entry, which by construction of the unique table means
// their values are structurally equal too (spec.md §8 invariant 1).
func (r Ref[T]) Equal(other Ref[T]) bool { return r.entry == other.entry }

// Hash returns a hash consistent with Equal (the entry pointer itself,
// not the value's structural hash, since equality here is identity).
func (r Ref[T]) Hash() uint64 { return uint64(uintptr(unsafe.Pointer(r.entry))) }

// Entry exposes the underlying unique-table entry, for packages (sdd,
// hom) that need to inspect refcounts or pass the entry to another Ref.
func (r Ref[T]) Entry() *unique.Entry[T] { return r.entry }
