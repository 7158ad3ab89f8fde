package values

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/require"
)

func stringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func TestGenericValuesSumIntersectionDifference(t *testing.T) {
	a := NewGenericValues(stringHasher, "alice", "bob")
	b := NewGenericValues(stringHasher, "bob", "carol")

	require.ElementsMatch(t, []string{"alice", "bob", "carol"}, a.Sum(b).(GenericValues[string]).Elements())
	require.ElementsMatch(t, []string{"bob"}, a.Intersection(b).(GenericValues[string]).Elements())
	require.ElementsMatch(t, []string{"alice"}, a.Difference(b).(GenericValues[string]).Elements())
}

func TestGenericValuesEqualIsOrderIndependent(t *testing.T) {
	a := NewGenericValues(stringHasher, "x", "y")
	b := NewGenericValues(stringHasher, "y", "x")
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestGenericValuesSizeEmptyContains(t *testing.T) {
	empty := NewGenericValues[string](stringHasher)
	require.True(t, empty.Empty())
	v := NewGenericValues(stringHasher, "task-1", "task-2")
	require.Equal(t, 2, v.Size())
	require.True(t, v.Contains("task-1"))
	require.False(t, v.Contains("task-3"))
}
