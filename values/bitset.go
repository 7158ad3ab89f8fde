package values

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/gosdd/gosdd/internal/hashutil"
)

// BitsetValues is the "bitset" values-set variant from spec.md §3: a
// fixed-width bit vector suited to small dense integer domains (e.g. the
// poles of a Towers of Hanoi instance, or a bounded character alphabet).
type BitsetValues struct {
	bits *bitset.BitSet
}

// NewBitsetValues builds a BitsetValues containing exactly the given
// non-negative integers.
func NewBitsetValues(elems ...uint) BitsetValues {
	b := bitset.New(0)
	for _, e := range elems {
		b.Set(e)
	}
	return BitsetValues{bits: b}
}

func bitsetOf(b *bitset.BitSet) BitsetValues {
	return BitsetValues{bits: b}
}

func (v BitsetValues) asBitset(other Set) *bitset.BitSet {
	o, ok := other.(BitsetValues)
	if !ok {
		panic("values: BitsetValues operated against a different Set backend")
	}
	return o.bits
}

// Sum implements Set.
func (v BitsetValues) Sum(other Set) Set {
	return bitsetOf(v.bits.Union(v.asBitset(other)))
}

// Intersection implements Set.
func (v BitsetValues) Intersection(other Set) Set {
	return bitsetOf(v.bits.Intersection(v.asBitset(other)))
}

// Difference implements Set.
func (v BitsetValues) Difference(other Set) Set {
	return bitsetOf(v.bits.Difference(v.asBitset(other)))
}

// Size implements Set.
func (v BitsetValues) Size() int { return int(v.bits.Count()) }

// Empty implements Set.
func (v BitsetValues) Empty() bool { return v.bits.None() }

// Equal implements Set.
func (v BitsetValues) Equal(other Set) bool {
	o, ok := other.(BitsetValues)
	if !ok {
		return false
	}
	return v.bits.Equal(o.bits)
}

// Hash implements Set.
func (v BitsetValues) Hash() uint64 {
	var h uint64
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		h = hashutil.Combine(h, hashutil.Uint64(uint64(i)))
	}
	return h
}

// Contains reports whether i belongs to the set.
func (v BitsetValues) Contains(i uint) bool { return v.bits.Test(i) }

// Elements returns the sorted set members.
func (v BitsetValues) Elements() []uint {
	out := make([]uint, 0, v.bits.Count())
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		out = append(out, i)
	}
	return out
}
