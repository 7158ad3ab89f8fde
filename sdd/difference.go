package sdd

import "github.com/gosdd/gosdd/internal/errs"

// Difference computes a minus b, memoized on the ordered pair (a, b)
// (difference is not commutative, so unlike Union/Intersection the
// cache key preserves operand order).
func (s *Store) Difference(a, b SDD) (SDD, error) {
	if a.Equal(b) {
		return s.zero, nil
	}
	if a.IsZero() {
		return s.zero, nil
	}
	if b.IsZero() {
		return a, nil
	}
	if a.IsOne() && b.IsOne() {
		return s.zero, nil
	}
	if a.IsOne() != b.IsOne() {
		return SDD{}, errs.WrapTop("difference between One and a node")
	}

	key := orderedKey(opDifference, a, b)
	if cached, ok := s.diffCache.Get(key); ok {
		return cached, nil
	}

	result, err := s.differenceNodes(a, b)
	if err != nil {
		return SDD{}, err
	}
	s.diffCache.Add(key, result)
	return result, nil
}

func (s *Store) differenceNodes(a, b SDD) (SDD, error) {
	if a.IsFlat() != b.IsFlat() {
		return SDD{}, errs.WrapTop("difference of flat and hierarchical nodes")
	}
	if a.Variable() != b.Variable() {
		return SDD{}, errs.WrapTop("difference of nodes at different variables (%d, %d)", a.Variable(), b.Variable())
	}

	if a.IsFlat() {
		merged, err := s.mergeFlatDifference(a.FlatArcs(), b.FlatArcs())
		if err != nil {
			return SDD{}, err
		}
		return s.NodeFlat(a.Variable(), merged), nil
	}

	merged, err := s.mergeHierDifference(a.HierArcs(), b.HierArcs())
	if err != nil {
		return SDD{}, err
	}
	return s.NodeHierarchical(a.Variable(), merged), nil
}

// mergeFlatDifference removes, from each left arc, the portion of its
// valuation also reachable (to an equal successor after recursion) via
// a right arc: the overlap keeps successor = difference(leftSucc,
// rightSucc); the part of the left valuation that never overlapped any
// right arc is untouched. Right-only residues contribute nothing.
func (s *Store) mergeFlatDifference(left, right []FlatArc) ([]FlatArc, error) {
	out := make([]FlatArc, 0, len(left))
	for _, la := range left {
		residue := la.Values
		for _, rb := range right {
			common := residue.Intersection(rb.Values)
			if common.Empty() {
				continue
			}
			succ, err := s.Difference(la.Successor, rb.Successor)
			if err != nil {
				return nil, err
			}
			if !succ.IsZero() {
				out = append(out, FlatArc{Values: common, Successor: succ})
			}
			residue = residue.Difference(common)
		}
		if !residue.Empty() {
			out = append(out, FlatArc{Values: residue, Successor: la.Successor})
		}
	}
	return out, nil
}

func (s *Store) mergeHierDifference(left, right []HierArc) ([]HierArc, error) {
	out := make([]HierArc, 0, len(left))
	for _, la := range left {
		residue := la.Nested
		for _, rb := range right {
			common, err := s.Intersection(residue, rb.Nested)
			if err != nil {
				return nil, err
			}
			if common.IsZero() {
				continue
			}
			succ, err := s.Difference(la.Successor, rb.Successor)
			if err != nil {
				return nil, err
			}
			if !succ.IsZero() {
				out = append(out, HierArc{Nested: common, Successor: succ})
			}
			residue, err = s.Difference(residue, common)
			if err != nil {
				return nil, err
			}
		}
		if !residue.IsZero() {
			out = append(out, HierArc{Nested: residue, Successor: la.Successor})
		}
	}
	return out, nil
}
