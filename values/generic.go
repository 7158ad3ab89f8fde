package values

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Hasher produces a stable hash for a single element of a user value
// type, used by GenericValues since Go's comparable constraint alone
// gives no canonical hash for arbitrary types.
type Hasher[T comparable] func(T) uint64

// GenericValues is the values-set variant for arbitrary comparable user
// value types that are not small dense integers, such as task names or
// characters. It is backed by github.com/deckarep/golang-set/v2 and can
// be deduplicated through a values.Unifier that the caller builds;
// nothing does so on the basis of config.FlatSetUnify.
type GenericValues[T comparable] struct {
	s    mapset.Set[T]
	hash Hasher[T]
}

// NewGenericValues builds a GenericValues containing exactly elems,
// hashed elementwise with h.
func NewGenericValues[T comparable](h Hasher[T], elems ...T) GenericValues[T] {
	return GenericValues[T]{s: mapset.NewThreadUnsafeSet(elems...), hash: h}
}

func (v GenericValues[T]) of(s mapset.Set[T]) GenericValues[T] {
	return GenericValues[T]{s: s, hash: v.hash}
}

func (v GenericValues[T]) asGeneric(other Set) GenericValues[T] {
	o, ok := other.(GenericValues[T])
	if !ok {
		panic("values: GenericValues operated against a different Set backend")
	}
	return o
}

// Sum implements Set.
func (v GenericValues[T]) Sum(other Set) Set {
	return v.of(v.s.Union(v.asGeneric(other).s))
}

// Intersection implements Set.
func (v GenericValues[T]) Intersection(other Set) Set {
	return v.of(v.s.Intersect(v.asGeneric(other).s))
}

// Difference implements Set.
func (v GenericValues[T]) Difference(other Set) Set {
	return v.of(v.s.Difference(v.asGeneric(other).s))
}

// Size implements Set.
func (v GenericValues[T]) Size() int { return v.s.Cardinality() }

// Empty implements Set.
func (v GenericValues[T]) Empty() bool { return v.s.Cardinality() == 0 }

// Equal implements Set.
func (v GenericValues[T]) Equal(other Set) bool {
	o, ok := other.(GenericValues[T])
	if !ok {
		return false
	}
	return v.s.Equal(o.s)
}

// Hash implements Set. Since set membership is unordered, elementwise
// hashes are XOR-folded so the result does not depend on iteration
// order.
func (v GenericValues[T]) Hash() uint64 {
	var h uint64
	v.s.Each(func(t T) bool {
		h ^= v.hash(t)
		return false
	})
	return h
}

// Elements returns the set members in no particular order.
func (v GenericValues[T]) Elements() []T {
	return v.s.ToSlice()
}

// Contains reports membership.
func (v GenericValues[T]) Contains(t T) bool { return v.s.Contains(t) }
