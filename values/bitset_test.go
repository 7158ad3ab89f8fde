package values

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsetValuesSumIntersectionDifference(t *testing.T) {
	a := NewBitsetValues(1, 2, 3)
	b := NewBitsetValues(2, 3, 4)

	require.ElementsMatch(t, []uint{1, 2, 3, 4}, a.Sum(b).(BitsetValues).Elements())
	require.ElementsMatch(t, []uint{2, 3}, a.Intersection(b).(BitsetValues).Elements())
	require.ElementsMatch(t, []uint{1}, a.Difference(b).(BitsetValues).Elements())
}

func TestBitsetValuesSizeAndEmpty(t *testing.T) {
	require.True(t, NewBitsetValues().Empty())
	require.False(t, NewBitsetValues(1).Empty())
	require.Equal(t, 3, NewBitsetValues(1, 2, 3).Size())
}

func TestBitsetValuesEqualAndHash(t *testing.T) {
	a := NewBitsetValues(1, 2)
	b := NewBitsetValues(2, 1)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.False(t, a.Equal(NewBitsetValues(1, 2, 3)))
}

func TestBitsetValuesContains(t *testing.T) {
	v := NewBitsetValues(5, 7)
	require.True(t, v.Contains(5))
	require.False(t, v.Contains(6))
}

func TestBitsetValuesCrossBackendPanics(t *testing.T) {
	a := NewBitsetValues(1)
	b := NewRoaringValues(1)
	require.Panics(t, func() { a.Sum(b) })
}
