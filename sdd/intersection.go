package sdd

import "github.com/gosdd/gosdd/internal/errs"

// Intersection computes the set intersection of a and b, memoized on
// (a, b) pointer identity.
func (s *Store) Intersection(a, b SDD) (SDD, error) {
	if a.Equal(b) {
		return a, nil
	}
	if a.IsZero() || b.IsZero() {
		return s.zero, nil
	}
	if a.IsOne() && b.IsOne() {
		return a, nil
	}
	if a.IsOne() != b.IsOne() {
		return SDD{}, errs.WrapTop("intersection between One and a node")
	}

	key := commutativeKey(opIntersection, a, b)
	if cached, ok := s.interCache.Get(key); ok {
		return cached, nil
	}

	result, err := s.intersectionNodes(a, b)
	if err != nil {
		return SDD{}, err
	}
	s.interCache.Add(key, result)
	return result, nil
}

func (s *Store) intersectionNodes(a, b SDD) (SDD, error) {
	if a.IsFlat() != b.IsFlat() {
		return SDD{}, errs.WrapTop("intersection of flat and hierarchical nodes")
	}
	if a.Variable() != b.Variable() {
		return SDD{}, errs.WrapTop("intersection of nodes at different variables (%d, %d)", a.Variable(), b.Variable())
	}

	if a.IsFlat() {
		merged, err := s.mergeFlatIntersection(a.FlatArcs(), b.FlatArcs())
		if err != nil {
			return SDD{}, err
		}
		return s.NodeFlat(a.Variable(), merged), nil
	}

	merged, err := s.mergeHierIntersection(a.HierArcs(), b.HierArcs())
	if err != nil {
		return SDD{}, err
	}
	return s.NodeHierarchical(a.Variable(), merged), nil
}

// mergeFlatIntersection pairs every left arc with every right arc whose
// valuation intersects, keeping only (intersection-of-values,
// intersection-of-successors); unlike union there are no residues, only
// the overlap survives.
func (s *Store) mergeFlatIntersection(left, right []FlatArc) ([]FlatArc, error) {
	out := make([]FlatArc, 0, minInt(len(left), len(right)))
	for _, la := range left {
		for _, rb := range right {
			common := la.Values.Intersection(rb.Values)
			if common.Empty() {
				continue
			}
			succ, err := s.Intersection(la.Successor, rb.Successor)
			if err != nil {
				return nil, err
			}
			if succ.IsZero() {
				continue
			}
			out = append(out, FlatArc{Values: common, Successor: succ})
		}
	}
	return out, nil
}

func (s *Store) mergeHierIntersection(left, right []HierArc) ([]HierArc, error) {
	out := make([]HierArc, 0, minInt(len(left), len(right)))
	for _, la := range left {
		for _, rb := range right {
			common, err := s.Intersection(la.Nested, rb.Nested)
			if err != nil {
				return nil, err
			}
			if common.IsZero() {
				continue
			}
			succ, err := s.Intersection(la.Successor, rb.Successor)
			if err != nil {
				return nil, err
			}
			if succ.IsZero() {
				continue
			}
			out = append(out, HierArc{Nested: common, Successor: succ})
		}
	}
	return out, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
