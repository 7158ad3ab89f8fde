package sdd

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gosdd/gosdd/internal/metrics"
	"github.com/gosdd/gosdd/internal/refcount"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/values"
)

// opTag discriminates the three binary operations sharing the cache key
// shape (opTag, left, right).
type opTag uint8

const (
	opSum opTag = iota
	opIntersection
	opDifference
)

type opKey struct {
	op   opTag
	l, r *unique.Entry[nodeData]
}

// Store owns the process-wide SDD unique table and the three
// per-operation caches (spec.md §2 items 1 and 5, §6 config). One Store
// is created per manager.Manager; sharing a Store across managers is
// undefined, mirroring the single global table of the original.
type Store struct {
	table *unique.Table[nodeData]

	sumCache   *lru.Cache[opKey, SDD]
	interCache *lru.Cache[opKey, SDD]
	diffCache  *lru.Cache[opKey, SDD]

	zero SDD
	one  SDD
}

// NewStore builds a Store with the given unique-table bucket count,
// per-operation cache sizes and arena block cap, and registers its
// instrumentation under reg (nil is accepted and disables metrics,
// for tests).
func NewStore(uniqueTableSize, sumCacheSize, interCacheSize, diffCacheSize, arenaBlocks int, reg *metrics.Registry) *Store {
	var tm *metrics.TableMetrics
	if reg != nil {
		tm = reg.Table("sdd")
	}
	s := &Store{
		table: unique.New[nodeData](uniqueTableSize, arenaBlocks, tm),
	}
	s.sumCache, _ = lru.New[opKey, SDD](sumCacheSize)
	s.interCache, _ = lru.New[opKey, SDD](interCacheSize)
	s.diffCache, _ = lru.New[opKey, SDD](diffCacheSize)

	s.zero = SDD{ref: refcount.New(s.table.Unify(nodeData{kind: kindZero}))}
	s.one = SDD{ref: refcount.New(s.table.Unify(nodeData{kind: kindOne}))}
	return s
}

// Zero returns the canonical empty-set terminal.
func (s *Store) Zero() SDD { return s.zero }

// One returns the canonical empty-tuple terminal.
func (s *Store) One() SDD { return s.one }

// Flat constructs a single-arc Flat node, reducing to Zero when vals is
// empty or successor is Zero (spec.md §4.3).
func (s *Store) Flat(v Variable, vals values.Set, successor SDD) SDD {
	if vals == nil || vals.Empty() || successor.IsZero() {
		return s.zero
	}
	return s.unifyFlat(v, []FlatArc{{Values: vals, Successor: successor}})
}

// Hierarchical constructs a single-arc Hierarchical node, reducing to
// Zero when nested is Zero or successor is Zero.
func (s *Store) Hierarchical(v Variable, nested, successor SDD) SDD {
	if nested.IsZero() || successor.IsZero() {
		return s.zero
	}
	return s.unifyHier(v, []HierArc{{Nested: nested, Successor: successor}})
}

// NodeFlat builds a Flat node from a pre-built arc set, merging
// duplicate-keyed arcs by square union: arcs with equal values are
// merged by unioning their successors, and arcs with equal successors
// are merged by unioning their values (spec.md §4.3).
func (s *Store) NodeFlat(v Variable, arcs []FlatArc) SDD {
	merged := s.squareUnionFlat(arcs)
	if len(merged) == 0 {
		return s.zero
	}
	return s.unifyFlat(v, merged)
}

// NodeHierarchical builds a Hierarchical node from a pre-built arc set
// with the same square-union merge rule.
func (s *Store) NodeHierarchical(v Variable, arcs []HierArc) SDD {
	merged := s.squareUnionHier(arcs)
	if len(merged) == 0 {
		return s.zero
	}
	return s.unifyHier(v, merged)
}

func (s *Store) unifyFlat(v Variable, arcs []FlatArc) SDD {
	sortFlatArcs(arcs)
	return SDD{ref: refcount.New(s.table.Unify(nodeData{kind: kindFlat, variable: v, flat: arcs}))}
}

func (s *Store) unifyHier(v Variable, arcs []HierArc) SDD {
	sortHierArcs(arcs)
	return SDD{ref: refcount.New(s.table.Unify(nodeData{kind: kindHierarchical, variable: v, hier: arcs}))}
}

// squareUnionFlat drops empty-valuation or Zero-successor arcs, then
// repeatedly merges any pair that share a valuation (union successors)
// or share a successor (union valuations) until no such pair remains.
func (s *Store) squareUnionFlat(arcs []FlatArc) []FlatArc {
	live := make([]FlatArc, 0, len(arcs))
	for _, a := range arcs {
		if a.Values == nil || a.Values.Empty() || a.Successor.IsZero() {
			continue
		}
		live = append(live, a)
	}
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(live); i++ {
			for j := i + 1; j < len(live); j++ {
				switch {
				case live[i].Successor.Equal(live[j].Successor):
					live[i].Values = live[i].Values.Sum(live[j].Values)
					live = removeFlat(live, j)
					changed = true
				case live[i].Values.Equal(live[j].Values):
					live[i].Successor = s.unionCached(live[i].Successor, live[j].Successor)
					live = removeFlat(live, j)
					changed = true
				default:
					continue
				}
				break
			}
			if changed {
				break
			}
		}
	}
	return live
}

func (s *Store) squareUnionHier(arcs []HierArc) []HierArc {
	live := make([]HierArc, 0, len(arcs))
	for _, a := range arcs {
		if a.Nested.IsZero() || a.Successor.IsZero() {
			continue
		}
		live = append(live, a)
	}
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(live); i++ {
			for j := i + 1; j < len(live); j++ {
				switch {
				case live[i].Successor.Equal(live[j].Successor):
					live[i].Nested = s.unionCached(live[i].Nested, live[j].Nested)
					live = removeHier(live, j)
					changed = true
				case live[i].Nested.Equal(live[j].Nested):
					live[i].Successor = s.unionCached(live[i].Successor, live[j].Successor)
					live = removeHier(live, j)
					changed = true
				default:
					continue
				}
				break
			}
			if changed {
				break
			}
		}
	}
	return live
}

func removeFlat(arcs []FlatArc, i int) []FlatArc {
	return append(arcs[:i], arcs[i+1:]...)
}

func removeHier(arcs []HierArc, i int) []HierArc {
	return append(arcs[:i], arcs[i+1:]...)
}
