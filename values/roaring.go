package values

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/gosdd/gosdd/internal/hashutil"
)

// RoaringValues is a "flat set" values-set variant backed by a
// compressed, sorted bitmap: suited to larger or sparser integer
// domains than BitsetValues' fixed-width vector, at the cost of a
// heavier per-operation constant.
type RoaringValues struct {
	bm *roaring.Bitmap
}

// NewRoaringValues builds a RoaringValues containing exactly the given
// unsigned 32-bit integers.
func NewRoaringValues(elems ...uint32) RoaringValues {
	bm := roaring.New()
	bm.AddMany(elems)
	return RoaringValues{bm: bm}
}

func roaringOf(bm *roaring.Bitmap) RoaringValues {
	return RoaringValues{bm: bm}
}

func (v RoaringValues) asRoaring(other Set) *roaring.Bitmap {
	o, ok := other.(RoaringValues)
	if !ok {
		panic("values: RoaringValues operated against a different Set backend")
	}
	return o.bm
}

// Sum implements Set.
func (v RoaringValues) Sum(other Set) Set {
	return roaringOf(roaring.Or(v.bm, v.asRoaring(other)))
}

// Intersection implements Set.
func (v RoaringValues) Intersection(other Set) Set {
	return roaringOf(roaring.And(v.bm, v.asRoaring(other)))
}

// Difference implements Set.
func (v RoaringValues) Difference(other Set) Set {
	return roaringOf(roaring.AndNot(v.bm, v.asRoaring(other)))
}

// Size implements Set.
func (v RoaringValues) Size() int { return int(v.bm.GetCardinality()) }

// Empty implements Set.
func (v RoaringValues) Empty() bool { return v.bm.IsEmpty() }

// Equal implements Set.
func (v RoaringValues) Equal(other Set) bool {
	o, ok := other.(RoaringValues)
	if !ok {
		return false
	}
	return v.bm.Equals(o.bm)
}

// Hash implements Set.
func (v RoaringValues) Hash() uint64 {
	var h uint64
	it := v.bm.Iterator()
	for it.HasNext() {
		h = hashutil.Combine(h, hashutil.Uint64(uint64(it.Next())))
	}
	return h
}

// Elements returns the sorted set members.
func (v RoaringValues) Elements() []uint32 {
	return v.bm.ToArray()
}
