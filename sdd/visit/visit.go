// Package visit implements the traversal contract spec.md §6 provides to
// out-of-scope collaborators (DOT rendering, path counting): a
// depth-first walk over `(zero|one|flat|hier) x order x depth`.
package visit

import (
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
)

// Kind classifies the node passed to a Func call.
type Kind int

const (
	Zero Kind = iota
	One
	Flat
	Hierarchical
)

// Func is called once per distinct node reached during a Visit,
// pre-order (a node is visited before its successors/nested diagrams).
// Returning false stops the descent below this node (its arcs are not
// followed), without aborting the rest of the walk.
type Func[Id comparable] func(kind Kind, node sdd.SDD, o *order.Order[Id], depth int) bool

// Visit walks s depth-first, calling fn at every distinct node exactly
// once (nodes reachable via more than one path are visited only on
// first encounter, since the diagram is a DAG and siblings sharing a
// successor is the common case this guards against redundant work).
func Visit[Id comparable](s sdd.SDD, o *order.Order[Id], fn Func[Id]) {
	seen := make(map[sdd.SDD]bool)
	visit(s, o, 0, fn, seen)
}

func visit[Id comparable](s sdd.SDD, o *order.Order[Id], depth int, fn Func[Id], seen map[sdd.SDD]bool) {
	if seen[s] {
		return
	}
	seen[s] = true

	switch {
	case s.IsZero():
		fn(Zero, s, o, depth)
	case s.IsOne():
		fn(One, s, o, depth)
	case s.IsFlat():
		if !fn(Flat, s, o, depth) {
			return
		}
		next, _ := o.Next()
		for _, arc := range s.FlatArcs() {
			visit(arc.Successor, next, depth+1, fn, seen)
		}
	case s.IsHierarchical():
		if !fn(Hierarchical, s, o, depth) {
			return
		}
		next, _ := o.Next()
		nested, _ := o.Nested()
		for _, arc := range s.HierArcs() {
			visit(arc.Nested, nested, depth+1, fn, seen)
			visit(arc.Successor, next, depth+1, fn, seen)
		}
	}
}
