// Package sdd implements the canonicalized Hierarchical Set Decision
// Diagram data structure: the four node kinds (Zero, One, Flat,
// Hierarchical), the three constructors enforcing reducedness and
// uniqueness, and the three binary set operations with memoization.
// Grounded on _examples/original_source/sdd/dd and
// _examples/original_source/sdd/internal/mem.
package sdd

import (
	"sort"

	"github.com/gosdd/gosdd/internal/hashutil"
	"github.com/gosdd/gosdd/internal/refcount"
	"github.com/gosdd/gosdd/internal/unique"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/values"
)

// Variable re-exports order.Variable: SDD node levels are keyed by the
// same numeric variable the order assigns to identifiers.
type Variable = order.Variable

type kind uint8

const (
	kindZero kind = iota
	kindOne
	kindFlat
	kindHierarchical
)

// FlatArc is one arc of a Flat node: a non-empty values.Set labelling
// the edge, and the successor SDD reached by it.
type FlatArc struct {
	Values    values.Set
	Successor SDD
}

// HierArc is one arc of a Hierarchical node: a nested SDD (never Zero)
// labelling the edge, and the successor SDD reached by it.
type HierArc struct {
	Nested    SDD
	Successor SDD
}

// nodeData is the structural, hash-consed payload behind every SDD
// handle, including the Zero and One terminals (represented as nodeData
// values with no arcs, distinguished by kind).
type nodeData struct {
	kind     kind
	variable Variable
	flat     []FlatArc
	hier     []HierArc
}

// Hash implements unique.Unifiable.
func (n nodeData) Hash() uint64 {
	h := hashutil.Uint64(uint64(n.kind))
	switch n.kind {
	case kindZero, kindOne:
		return h
	case kindFlat:
		h = hashutil.Combine(h, hashutil.Uint64(uint64(n.variable)))
		for _, a := range n.flat {
			h = hashutil.Combine(h, hashutil.Combine(a.Values.Hash(), a.Successor.Hash()))
		}
	case kindHierarchical:
		h = hashutil.Combine(h, hashutil.Uint64(uint64(n.variable)))
		for _, a := range n.hier {
			h = hashutil.Combine(h, hashutil.Combine(a.Nested.Hash(), a.Successor.Hash()))
		}
	}
	return h
}

// Equal implements unique.Unifiable. Arc slices are kept in canonical
// sorted order by the constructors, so element-wise comparison is
// sufficient and does not depend on insertion order (spec.md §3
// "ordering of arcs" invariant).
func (n nodeData) Equal(other nodeData) bool {
	if n.kind != other.kind || n.variable != other.variable {
		return false
	}
	switch n.kind {
	case kindZero, kindOne:
		return true
	case kindFlat:
		if len(n.flat) != len(other.flat) {
			return false
		}
		for i := range n.flat {
			if !n.flat[i].Successor.Equal(other.flat[i].Successor) || !n.flat[i].Values.Equal(other.flat[i].Values) {
				return false
			}
		}
		return true
	case kindHierarchical:
		if len(n.hier) != len(other.hier) {
			return false
		}
		for i := range n.hier {
			if !n.hier[i].Successor.Equal(other.hier[i].Successor) || !n.hier[i].Nested.Equal(other.hier[i].Nested) {
				return false
			}
		}
		return true
	}
	return false
}

// RetainChildren implements unique.Retainable: called by Unify exactly
// once, the moment n becomes the new canonical entry, retaining the
// arc successors/nested diagrams it now structurally owns a copy of.
func (n nodeData) RetainChildren() {
	switch n.kind {
	case kindFlat:
		for _, a := range n.flat {
			a.Successor.Retain()
		}
	case kindHierarchical:
		for _, a := range n.hier {
			a.Nested.Retain()
			a.Successor.Retain()
		}
	}
}

// Children implements unique.Releasable: the arc successors and nested
// diagrams release() cascades into once n's entry loses its last
// reference.
func (n nodeData) Children() []unique.Releaser {
	switch n.kind {
	case kindFlat:
		out := make([]unique.Releaser, len(n.flat))
		for i, a := range n.flat {
			out[i] = a.Successor
		}
		return out
	case kindHierarchical:
		out := make([]unique.Releaser, 0, 2*len(n.hier))
		for _, a := range n.hier {
			out = append(out, a.Nested, a.Successor)
		}
		return out
	default:
		return nil
	}
}

// SDD is a canonicalized handle: equality and hashing are pointer
// identity over the shared unique-table entry (spec.md §8 invariant 1).
type SDD struct {
	ref refcount.Ref[nodeData]
}

// Equal reports whether s and other are the same canonical diagram.
func (s SDD) Equal(other SDD) bool { return s.ref.Equal(other.ref) }

// Hash returns a hash consistent with Equal.
func (s SDD) Hash() uint64 { return s.ref.Hash() }

// Retain/Release expose the handle's reference count to callers that
// need to keep a diagram alive beyond its defining scope (spec.md §5).
func (s SDD) Retain()  { s.ref.Retain() }
func (s SDD) Release() { s.ref.Release() }

// DropOne implements unique.Releaser, letting an SDD act as a child in
// another value's cascade-release worklist (a homomorphism operand
// embedding a Constant diagram, for instance).
func (s SDD) DropOne() []unique.Releaser { return s.ref.DropOne() }

// IsZero reports whether s is the empty-set terminal.
func (s SDD) IsZero() bool { return s.ref.Value().kind == kindZero }

// IsOne reports whether s is the empty-tuple terminal.
func (s SDD) IsOne() bool { return s.ref.Value().kind == kindOne }

// IsFlat reports whether s is a Flat node.
func (s SDD) IsFlat() bool { return s.ref.Value().kind == kindFlat }

// IsHierarchical reports whether s is a Hierarchical node.
func (s SDD) IsHierarchical() bool { return s.ref.Value().kind == kindHierarchical }

// Variable returns the variable of a Flat or Hierarchical node; callers
// must check IsFlat/IsHierarchical first.
func (s SDD) Variable() Variable { return s.ref.Value().variable }

// FlatArcs returns the arcs of a Flat node (nil otherwise).
func (s SDD) FlatArcs() []FlatArc { return s.ref.Value().flat }

// HierArcs returns the arcs of a Hierarchical node (nil otherwise).
func (s SDD) HierArcs() []HierArc { return s.ref.Value().hier }

// entry exposes the backing unique-table entry for cache keys.
func (s SDD) entry() *unique.Entry[nodeData] { return s.ref.Entry() }

func sortFlatArcs(arcs []FlatArc) {
	sort.Slice(arcs, func(i, j int) bool {
		hi, hj := arcs[i].Values.Hash(), arcs[j].Values.Hash()
		if hi != hj {
			return hi < hj
		}
		return arcs[i].Successor.Hash() < arcs[j].Successor.Hash()
	})
}

func sortHierArcs(arcs []HierArc) {
	sort.Slice(arcs, func(i, j int) bool {
		hi, hj := arcs[i].Nested.Hash(), arcs[j].Nested.Hash()
		if hi != hj {
			return hi < hj
		}
		return arcs[i].Successor.Hash() < arcs[j].Successor.Hash()
	})
}
