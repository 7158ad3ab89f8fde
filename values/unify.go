package values

import "github.com/gosdd/gosdd/internal/unique"

// genericEntry adapts GenericValues[T] to unique.Unifiable so it can be
// hash-consed by a unique.Table.
type genericEntry[T comparable] struct{ gv GenericValues[T] }

func (g genericEntry[T]) Hash() uint64                     { return g.gv.Hash() }
func (g genericEntry[T]) Equal(other genericEntry[T]) bool { return g.gv.Equal(other.gv) }

// Unifier deduplicates GenericValues instances through a unique table
// (spec.md §9's open question on flat-set uniquing). It is standalone:
// config.FlatSetUnify does not create or select one, so it takes effect
// only where a caller constructs it. Unlike SDD nodes and homomorphisms,
// unified values are not themselves reference-counted: the table here
// only caps memory by sharing storage for structurally equal sets, it
// does not gate their lifetime.
type Unifier[T comparable] struct {
	table *unique.Table[genericEntry[T]]
}

// NewUnifier builds a Unifier backed by a table with the given initial
// bucket count.
func NewUnifier[T comparable](initialBuckets int) *Unifier[T] {
	return &Unifier[T]{table: unique.New[genericEntry[T]](initialBuckets, 0, nil)}
}

// Unify returns the canonical GenericValues structurally equal to v,
// interning v if none existed yet.
func (u *Unifier[T]) Unify(v GenericValues[T]) GenericValues[T] {
	return u.table.Unify(genericEntry[T]{gv: v}).Value.gv
}

// Size reports how many distinct value sets are currently interned.
func (u *Unifier[T]) Size() int { return u.table.Size() }
