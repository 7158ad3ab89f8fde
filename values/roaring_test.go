package values

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoaringValuesSumIntersectionDifference(t *testing.T) {
	a := NewRoaringValues(1, 2, 3)
	b := NewRoaringValues(2, 3, 4)

	require.ElementsMatch(t, []uint32{1, 2, 3, 4}, a.Sum(b).(RoaringValues).Elements())
	require.ElementsMatch(t, []uint32{2, 3}, a.Intersection(b).(RoaringValues).Elements())
	require.ElementsMatch(t, []uint32{1}, a.Difference(b).(RoaringValues).Elements())
}

func TestRoaringValuesSizeAndEmpty(t *testing.T) {
	require.True(t, NewRoaringValues().Empty())
	require.Equal(t, 3, NewRoaringValues(10, 20, 30).Size())
}

func TestRoaringValuesEqualAndHash(t *testing.T) {
	a := NewRoaringValues(1, 2)
	b := NewRoaringValues(2, 1)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestRoaringValuesCrossBackendPanics(t *testing.T) {
	a := NewRoaringValues(1)
	b := NewBitsetValues(1)
	require.Panics(t, func() { a.Intersection(b) })
}
