package scenarios

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosdd/gosdd/sdd"
	"github.com/gosdd/gosdd/sdd/visit"
)

func TestDifferenceOfTwoWordSets(t *testing.T) {
	store := sdd.NewStore(64, 64, 64, 64, 64, nil)
	o := positionOrder(t, 2)

	a := store.Zero()
	for _, w := range []string{"ab", "ac", "ad"} {
		next, err := store.Union(a, wordSDD(t, store, o, w))
		require.NoError(t, err)
		a = next
	}
	b := wordSDD(t, store, o, "ab")

	diff, err := store.Difference(a, b)
	require.NoError(t, err)

	count, err := visit.CountPaths(diff)
	require.NoError(t, err)
	require.Equal(t, int64(2), count.Int64())

	// The result must encode exactly {ac, ad}: neither "ab" nor any word
	// outside the original set survives.
	ac, err := store.Intersection(diff, wordSDD(t, store, o, "ac"))
	require.NoError(t, err)
	require.False(t, ac.IsZero())

	ab, err := store.Intersection(diff, wordSDD(t, store, o, "ab"))
	require.NoError(t, err)
	require.True(t, ab.IsZero())
}
