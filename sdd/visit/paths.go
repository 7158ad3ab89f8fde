package visit

import (
	"math/big"

	"github.com/gosdd/gosdd/sdd"
)

// CountPaths counts the number of tuples a diagram encodes: the number
// of distinct root-to-One paths, weighted by arc cardinality at flat
// levels and by the nested diagram's own path count at hierarchical
// levels. Grounded on
// _examples/original_source/sdd/dd/paths.hh. Uses math/big since path
// counts on large diagrams routinely exceed 64 bits.
func CountPaths(s sdd.SDD) (*big.Int, error) {
	memo := make(map[sdd.SDD]*big.Int)
	return countPaths(s, memo)
}

func countPaths(s sdd.SDD, memo map[sdd.SDD]*big.Int) (*big.Int, error) {
	if n, ok := memo[s]; ok {
		return n, nil
	}

	var result *big.Int
	switch {
	case s.IsZero():
		result = big.NewInt(0)
	case s.IsOne():
		result = big.NewInt(1)
	case s.IsFlat():
		result = big.NewInt(0)
		for _, arc := range s.FlatArcs() {
			succCount, err := countPaths(arc.Successor, memo)
			if err != nil {
				return nil, err
			}
			weight := big.NewInt(int64(arc.Values.Size()))
			term := new(big.Int).Mul(weight, succCount)
			result.Add(result, term)
		}
	case s.IsHierarchical():
		result = big.NewInt(0)
		for _, arc := range s.HierArcs() {
			nestedCount, err := countPaths(arc.Nested, memo)
			if err != nil {
				return nil, err
			}
			succCount, err := countPaths(arc.Successor, memo)
			if err != nil {
				return nil, err
			}
			term := new(big.Int).Mul(nestedCount, succCount)
			result.Add(result, term)
		}
	default:
		// Unreachable: s must be one of the four kinds by construction.
		panic("sdd/visit: node of unknown kind")
	}

	memo[s] = result
	return result, nil
}
