package sdd

import (
	"github.com/gosdd/gosdd/internal/errs"
	"github.com/gosdd/gosdd/values"
)

// Union computes the set union of a and b, memoized on (a, b) pointer
// identity. Grounded on spec.md §4.4's recursive structural rules.
func (s *Store) Union(a, b SDD) (SDD, error) {
	return s.union2(a, b)
}

// UnionAll folds Union across operands, short-circuiting to Zero for an
// empty slice (the identity element of union).
func (s *Store) UnionAll(operands []SDD) (SDD, error) {
	acc := s.zero
	for _, o := range operands {
		var err error
		acc, err = s.union2(acc, o)
		if err != nil {
			return SDD{}, err
		}
	}
	return acc, nil
}

// unionCached is the internal entry point used by the square-union
// merge in the constructors; it must never fail (both operands are
// already canonical SDDs built through this Store, so a Top error here
// would indicate a programmer bug rather than bad input) and panics on
// an impossible shape mismatch instead of threading an error through
// constructor call sites that have no caller to report it to.
func (s *Store) unionCached(a, b SDD) SDD {
	r, err := s.union2(a, b)
	if err != nil {
		panic(err)
	}
	return r
}

func (s *Store) union2(a, b SDD) (SDD, error) {
	if a.Equal(b) {
		return a, nil
	}
	if a.IsZero() {
		return b, nil
	}
	if b.IsZero() {
		return a, nil
	}
	if a.IsOne() && b.IsOne() {
		return a, nil
	}
	if a.IsOne() != b.IsOne() {
		return SDD{}, errs.WrapTop("union of One and a node")
	}

	key := commutativeKey(opSum, a, b)
	if cached, ok := s.sumCache.Get(key); ok {
		return cached, nil
	}

	result, err := s.unionNodes(a, b)
	if err != nil {
		return SDD{}, err
	}
	s.sumCache.Add(key, result)
	return result, nil
}

func (s *Store) unionNodes(a, b SDD) (SDD, error) {
	if a.IsFlat() != b.IsFlat() {
		return SDD{}, errs.WrapTop("union of flat and hierarchical nodes")
	}
	if a.Variable() != b.Variable() {
		return SDD{}, errs.WrapTop("union of nodes at different variables (%d, %d)", a.Variable(), b.Variable())
	}

	if a.IsFlat() {
		merged, err := s.mergeFlatUnion(a.FlatArcs(), b.FlatArcs())
		if err != nil {
			return SDD{}, err
		}
		return s.NodeFlat(a.Variable(), merged), nil
	}

	merged, err := s.mergeHierUnion(a.HierArcs(), b.HierArcs())
	if err != nil {
		return SDD{}, err
	}
	return s.NodeHierarchical(a.Variable(), merged), nil
}

// mergeFlatUnion implements the square union described in spec.md §4.4:
// every left arc is paired with every right arc whose valuation
// intersects, producing an arc of (intersection, union-of-successors);
// the valuation residues left over on each side survive with their
// original successor.
func (s *Store) mergeFlatUnion(left, right []FlatArc) ([]FlatArc, error) {
	out := make([]FlatArc, 0, len(left)+len(right))
	leftResidue := make([]values.Set, len(left))
	for i, a := range left {
		leftResidue[i] = a.Values
	}
	for _, rb := range right {
		rightResidue := rb.Values
		for i, la := range left {
			common := leftResidue[i].Intersection(rb.Values)
			if common.Empty() {
				continue
			}
			succ, err := s.union2(la.Successor, rb.Successor)
			if err != nil {
				return nil, err
			}
			out = append(out, FlatArc{Values: common, Successor: succ})
			leftResidue[i] = leftResidue[i].Difference(common)
			rightResidue = rightResidue.Difference(common)
		}
		if !rightResidue.Empty() {
			out = append(out, FlatArc{Values: rightResidue, Successor: rb.Successor})
		}
	}
	for i, la := range left {
		if !leftResidue[i].Empty() {
			out = append(out, FlatArc{Values: leftResidue[i], Successor: la.Successor})
		}
	}
	return out, nil
}

func (s *Store) mergeHierUnion(left, right []HierArc) ([]HierArc, error) {
	out := make([]HierArc, 0, len(left)+len(right))
	leftResidue := make([]SDD, len(left))
	for i, a := range left {
		leftResidue[i] = a.Nested
	}
	for _, rb := range right {
		rightResidue := rb.Nested
		for i, la := range left {
			common, err := s.Intersection(leftResidue[i], rb.Nested)
			if err != nil {
				return nil, err
			}
			if common.IsZero() {
				continue
			}
			succ, err := s.union2(la.Successor, rb.Successor)
			if err != nil {
				return nil, err
			}
			out = append(out, HierArc{Nested: common, Successor: succ})
			leftResidue[i], err = s.Difference(leftResidue[i], common)
			if err != nil {
				return nil, err
			}
			rightResidue, err = s.Difference(rightResidue, common)
			if err != nil {
				return nil, err
			}
		}
		if !rightResidue.IsZero() {
			out = append(out, HierArc{Nested: rightResidue, Successor: rb.Successor})
		}
	}
	for i, la := range left {
		if !leftResidue[i].IsZero() {
			out = append(out, HierArc{Nested: leftResidue[i], Successor: la.Successor})
		}
	}
	return out, nil
}
