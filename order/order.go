// Package order implements the immutable, possibly hierarchical order of
// identifiers described in spec.md §3/§4.5: a persistent linked tree
// associating each user identifier with a numeric Variable and an
// absolute pre-order Position, grounded directly on
// _examples/original_source/sdd/order/order.hh.
package order

import (
	"github.com/google/btree"

	"github.com/gosdd/gosdd/internal/errs"
)

// Variable is the library-assigned numeric key for one level of the
// order. Variable 0 is always the innermost/last level of a sibling
// chain or hierarchy.
type Variable uint32

// Position is the absolute pre-order index of a node when the order is
// seen as flattened: a hierarchical identifier's position precedes all
// of its nested identifiers', which in turn precede its next sibling's.
type Position uint32

// node is one entry of the immutable linked order structure. Identifier
// appears only through the generic Order[Id]; node itself stays
// unexported since it is only ever reached through Order's navigation
// methods.
type node[Id comparable] struct {
	identifier Id
	variable   Variable
	position   Position
	next       *node[Id]
	nested     *node[Id]
	path       *[]Id // shared among every node of the same hierarchical subtree
}

// lessByPosition adapts *node[Id] for btree.BTreeG ordering by Position.
func lessByPosition[Id comparable](a, b *node[Id]) bool {
	return a.position < b.position
}

// Order is an immutable view into a linked order structure, rooted at
// head. The zero value is not usable; construct with Builder.Build.
type Order[Id comparable] struct {
	byIdentifier map[Id]*node[Id]
	byPosition   *btree.BTreeG[*node[Id]]
	head         *node[Id]
}

// Empty reports whether this view has no current node (true for the
// order obtained by calling Next past the last sibling, or Nested on a
// flat node).
func (o *Order[Id]) Empty() bool { return o == nil || o.head == nil }

// Variable returns the variable of the current head.
func (o *Order[Id]) Variable() (Variable, error) {
	if o.Empty() {
		return 0, errs.OrderErrEmpty
	}
	return o.head.variable, nil
}

// Identifier returns the identifier of the current head.
func (o *Order[Id]) Identifier() (Id, error) {
	var zero Id
	if o.Empty() {
		return zero, errs.OrderErrEmpty
	}
	return o.head.identifier, nil
}

// Next returns the order view advanced to the next sibling.
func (o *Order[Id]) Next() (*Order[Id], error) {
	if o.Empty() {
		return nil, errs.OrderErrEmpty
	}
	return &Order[Id]{byIdentifier: o.byIdentifier, byPosition: o.byPosition, head: o.head.next}, nil
}

// Nested returns the order view descending into the current head's
// hierarchy (nil head if the current node is flat).
func (o *Order[Id]) Nested() (*Order[Id], error) {
	if o.Empty() {
		return nil, errs.OrderErrEmpty
	}
	return &Order[Id]{byIdentifier: o.byIdentifier, byPosition: o.byPosition, head: o.head.nested}, nil
}

// IdentifierVariable returns the variable assigned to id.
func (o *Order[Id]) IdentifierVariable(id Id) (Variable, error) {
	n, ok := o.byIdentifier[id]
	if !ok {
		return 0, errs.WrapNotFound("identifier %v", id)
	}
	return n.variable, nil
}

// PositionOf returns the absolute position assigned to id.
func (o *Order[Id]) PositionOf(id Id) (Position, error) {
	n, ok := o.byIdentifier[id]
	if !ok {
		return 0, errs.WrapNotFound("identifier %v", id)
	}
	return n.position, nil
}

// Compare reports whether lhs is ordered before rhs when the order is
// flattened.
func (o *Order[Id]) Compare(lhs, rhs Id) (bool, error) {
	l, ok := o.byIdentifier[lhs]
	if !ok {
		return false, errs.WrapNotFound("identifier %v", lhs)
	}
	r, ok := o.byIdentifier[rhs]
	if !ok {
		return false, errs.WrapNotFound("identifier %v", rhs)
	}
	return l.position < r.position, nil
}

// Contains reports whether nested lies within upper's hierarchy.
func (o *Order[Id]) Contains(upper, nested Id) bool {
	n, ok := o.byIdentifier[nested]
	if !ok {
		return false
	}
	for _, id := range *n.path {
		if id == upper {
			return true
		}
	}
	return false
}

// SameHierarchy reports whether lhs and rhs belong to the same
// hierarchical subtree (including both being at the top level).
func (o *Order[Id]) SameHierarchy(lhs, rhs Id) (bool, error) {
	l, ok := o.byIdentifier[lhs]
	if !ok {
		return false, errs.WrapNotFound("identifier %v", lhs)
	}
	r, ok := o.byIdentifier[rhs]
	if !ok {
		return false, errs.WrapNotFound("identifier %v", rhs)
	}
	return l.path == r.path, nil
}

// Len returns the total number of identifiers known to this order. Every
// one of them was pushed explicitly; Build generates no identifiers of
// its own.
func (o *Order[Id]) Len() int { return len(o.byIdentifier) }

// Identifiers returns every identifier known to this order, in
// ascending position order.
func (o *Order[Id]) Identifiers() []Id {
	out := make([]Id, 0, o.byPosition.Len())
	o.byPosition.Ascend(func(n *node[Id]) bool {
		out = append(out, n.identifier)
		return true
	})
	return out
}
