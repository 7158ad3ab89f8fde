package order

import (
	"fmt"

	"github.com/google/btree"

	"github.com/gosdd/gosdd/internal/errs"
)

// Builder assembles an Order out of three primitives: Push (a flat
// identifier), PushNested (an identifier with a nested sub-hierarchy),
// and Concat (append another builder's levels). It mirrors
// _examples/original_source/sdd/order/order_builder.hh.
type Builder[Id comparable] struct {
	identifier    Id
	hasIdentifier bool
	nested        *Builder[Id]
	next          *Builder[Id]
}

// NewBuilder returns an empty builder.
func NewBuilder[Id comparable]() *Builder[Id] {
	return &Builder[Id]{}
}

// Push appends a flat identifier at the current level.
func (b *Builder[Id]) Push(id Id) *Builder[Id] {
	return b.append(&Builder[Id]{identifier: id, hasIdentifier: true})
}

// PushNested appends an identifier whose values are themselves described
// by a nested order (a hierarchical level).
func (b *Builder[Id]) PushNested(id Id, nested *Builder[Id]) *Builder[Id] {
	return b.append(&Builder[Id]{identifier: id, hasIdentifier: true, nested: nested})
}

// Concat appends every level of other after b's own levels.
func (b *Builder[Id]) Concat(other *Builder[Id]) *Builder[Id] {
	if other == nil || other.empty() {
		return b
	}
	return b.append(other.clone())
}

func (b *Builder[Id]) empty() bool { return b == nil || !b.hasIdentifier }

func (b *Builder[Id]) clone() *Builder[Id] {
	if b == nil {
		return nil
	}
	c := &Builder[Id]{identifier: b.identifier, hasIdentifier: b.hasIdentifier, nested: b.nested}
	c.next = b.next.clone()
	return c
}

// append attaches tail at the end of b's sibling chain, returning the
// head of the resulting chain (b itself, unless b was empty).
func (b *Builder[Id]) append(tail *Builder[Id]) *Builder[Id] {
	if b.empty() {
		return tail
	}
	cur := b
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = tail
	return b
}

// Build freezes the builder into an immutable Order: it assigns
// positions top-down in pre-order (a hierarchical identifier's position
// precedes all of its nested identifiers', which precede its next
// sibling's) and variables bottom-up within each sibling chain (the
// last sibling gets variable 0), exactly as
// _examples/original_source/sdd/order/order.hh::mk_nodes_ptr does.
func Build[Id comparable](b *Builder[Id]) (*Order[Id], error) {
	byIdentifier := make(map[Id]*node[Id])
	byPosition := btree.NewG(32, lessByPosition[Id])

	if b.empty() {
		return &Order[Id]{byIdentifier: byIdentifier, byPosition: byPosition, head: nil}, nil
	}

	pos := Position(0)
	var buildErr error

	var helper func(ob *Builder[Id], path *[]Id) (*node[Id], Variable)
	helper = func(ob *Builder[Id], path *[]Id) (*node[Id], Variable) {
		if buildErr != nil {
			return nil, 0
		}
		oldPos := pos
		pos++

		var nestedHead *node[Id]
		if !ob.nested.empty() {
			newPath := append(append([]Id{}, *path...), ob.identifier)
			nestedHead, _ = helper(ob.nested, &newPath)
		}

		var nextHead *node[Id]
		var nextVar Variable
		if !ob.next.empty() {
			nextHead, nextVar = helper(ob.next, path)
		}

		if buildErr != nil {
			return nil, 0
		}

		variable := nextVar
		n := &node[Id]{
			identifier: ob.identifier,
			variable:   variable,
			position:   oldPos,
			next:       nextHead,
			nested:     nestedHead,
			path:       path,
		}

		if _, dup := byIdentifier[ob.identifier]; dup {
			buildErr = errs.WrapDuplicate("%v", ob.identifier)
			return nil, 0
		}
		byIdentifier[ob.identifier] = n
		byPosition.ReplaceOrInsert(n)

		return n, variable + 1
	}

	rootPath := []Id{}
	head, _ := helper(b, &rootPath)
	if buildErr != nil {
		return nil, buildErr
	}

	return &Order[Id]{byIdentifier: byIdentifier, byPosition: byPosition, head: head}, nil
}

// ArtificialIdentifier synthesizes the kind of internally generated
// identifier the original assigns to unnamed hierarchical internal
// nodes. It is a convenience for string-keyed orders; orders over other
// identifier types must name every level explicitly via Push/PushNested.
func ArtificialIdentifier(n int) string {
	return fmt.Sprintf("@hier#%d", n)
}
