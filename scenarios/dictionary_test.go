// Package scenarios exercises gosdd end-to-end through the example
// applications named in spec.md §8 (dictionary, Towers of Hanoi,
// difference, selector intersection, scheduling). These are test-only
// scenarios grounded on _examples/original_source/examples/*; no
// product code ships their domain logic.
package scenarios

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
	"github.com/gosdd/gosdd/sdd/visit"
	"github.com/gosdd/gosdd/values"
)

func positionOrder(t *testing.T, length int) *order.Order[string] {
	t.Helper()
	b := order.NewBuilder[string]()
	for i := 0; i < length; i++ {
		b = b.Push(positionName(i))
	}
	o, err := order.Build(b)
	require.NoError(t, err)
	return o
}

func positionName(i int) string {
	return string(rune('a' + i))
}

func wordSDD(t *testing.T, store *sdd.Store, o *order.Order[string], word string) sdd.SDD {
	t.Helper()
	successor := store.One()
	for i := len(word) - 1; i >= 0; i-- {
		v, err := o.IdentifierVariable(positionName(i))
		require.NoError(t, err)
		successor = store.Flat(v, values.NewBitsetValues(uint(word[i])), successor)
	}
	return successor
}

func TestDictionaryEncodingUnionsWordsAndDedups(t *testing.T) {
	store := sdd.NewStore(64, 64, 64, 64, 64, nil)
	o := positionOrder(t, 3)

	dict := store.Zero()
	for _, w := range []string{"cat", "car", "cab"} {
		next, err := store.Union(dict, wordSDD(t, store, o, w))
		require.NoError(t, err)
		dict = next
	}

	count, err := visit.CountPaths(dict)
	require.NoError(t, err)
	require.Equal(t, int64(3), count.Int64())

	// Re-inserting "cat" must leave the encoding unchanged: union with an
	// already-included word is idempotent.
	again, err := store.Union(dict, wordSDD(t, store, o, "cat"))
	require.NoError(t, err)
	require.True(t, again.Equal(dict))

	countAgain, err := visit.CountPaths(again)
	require.NoError(t, err)
	require.Equal(t, int64(3), countAgain.Int64())
}
