// Package unique implements the process-wide hash-consing table behind
// every canonicalized type in gosdd: SDD nodes, homomorphisms, and
// (optionally) values-set instances. It is grounded on
// _examples/original_source/sdd/internal/mem/unique_table.hh: a hash set
// keyed by structural equality that returns a single canonical handle
// per distinct value, resizes at load factor 0.9, and recycles recently
// freed entries up to a capacity cap.
package unique

import (
	"sync"

	"github.com/gosdd/gosdd/internal/intutil"
	"github.com/gosdd/gosdd/internal/metrics"
)

// Unifiable is the contract a type must satisfy to be hash-consed: a
// hash consistent with Equal, and structural equality against another
// value of the same type.
type Unifiable[T any] interface {
	Hash() uint64
	Equal(T) bool
}

// Releaser is implemented by a hash-consed handle (refcount.Ref[T], and
// by extension sdd.SDD and hom.Homomorphism[Id]) so that a released
// entry's structure can be cascaded into without the caller needing to
// know the concrete handle type. DropOne drops one reference and, if
// that was the last one, returns the further handles the freed value
// alone was keeping alive.
type Releaser interface {
	DropOne() []Releaser
}

// Releasable is implemented by a unified value whose structure embeds
// other hash-consed handles (an SDD node's arc successors and nested
// diagrams, a homomorphism's operands). release consults it once an
// entry's last reference drops, to find what to cascade into.
type Releasable interface {
	Children() []Releaser
}

// Retainable is implemented by a unified value whose structure embeds
// other hash-consed handles, so Unify can retain them exactly once, at
// the moment the value becomes the new canonical entry — the "copy
// increments" half of spec.md §4.2 for the copy that now lives inside
// the table rather than in a caller's hand. A structurally-equal
// prototype that turns out to be a duplicate is simply discarded
// without ever retaining anything, so no matching release is owed.
type Retainable interface {
	RetainChildren()
}

// Entry is the canonical, pinned handle to one unified value. Table
// hands these out from unify() and owns their lifetime until Release
// drops the last reference (see internal/refcount).
type Entry[T Unifiable[T]] struct {
	Value    T
	refcount int32
	table    *Table[T]
	next     *Entry[T] // bucket chain link
	hash     uint64
}

// Table is a generic unique table: given a freshly constructed prototype
// value, Unify returns the shared canonical Entry, discarding the
// prototype if an equal entry already exists.
type Table[T Unifiable[T]] struct {
	mu      sync.Mutex
	buckets []*Entry[T]
	count   int
	metrics *metrics.TableMetrics

	pool   []T // FIFO block-reuse pool of recently freed values
	poolCap int
}

// New builds a Table with initialBuckets buckets (rounded up to at
// least 1) and a block-reuse pool capped at poolCap entries.
func New[T Unifiable[T]](initialBuckets, poolCap int, m *metrics.TableMetrics) *Table[T] {
	if initialBuckets < 1 {
		initialBuckets = 1
	}
	return &Table[T]{
		buckets: make([]*Entry[T], initialBuckets),
		metrics: m,
		poolCap: poolCap,
	}
}

// Unify returns the canonical Entry for prototype, creating one if no
// structurally equal entry exists yet.
func (t *Table[T]) Unify(prototype T) *Entry[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.loadFactor() >= 0.9 {
		t.rehashLocked()
	}

	h := prototype.Hash()
	idx := h % uint64(len(t.buckets))
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.hash == h && e.Value.Equal(prototype) {
			t.observeHit()
			t.recycleLocked(prototype)
			return e
		}
	}

	e := &Entry[T]{Value: prototype, table: t, hash: h}
	e.next = t.buckets[idx]
	t.buckets[idx] = e
	t.count++
	t.observeMiss()
	if retainable, ok := any(e.Value).(Retainable); ok {
		retainable.RetainChildren()
	}
	return e
}

// release removes e from the table; called by Entry.DropOne when the
// last reference to e drops to zero.
func (t *Table[T]) release(e *Entry[T]) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := e.hash % uint64(len(t.buckets))
	cur := t.buckets[idx]
	if cur == e {
		t.buckets[idx] = e.next
		t.count--
		t.stashLocked(e.Value)
		return
	}
	for cur != nil && cur.next != e {
		cur = cur.next
	}
	if cur != nil {
		cur.next = e.next
		t.count--
		t.stashLocked(e.Value)
	}
}

// Size reports the number of live entries.
func (t *Table[T]) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

func (t *Table[T]) loadFactor() float64 {
	return float64(t.count) / float64(len(t.buckets))
}

func (t *Table[T]) rehashLocked() {
	newSize, overflowed := intutil.SafeMul(uint64(len(t.buckets)), 2)
	if overflowed || newSize > intutil.MaxUint32 {
		// Table has grown implausibly large for this process; stop
		// doubling rather than wrap around to a tiny bucket count.
		return
	}
	newBuckets := make([]*Entry[T], newSize)
	for _, head := range t.buckets {
		for e := head; e != nil; {
			next := e.next
			idx := e.hash % uint64(len(newBuckets))
			e.next = newBuckets[idx]
			newBuckets[idx] = e
			e = next
		}
	}
	t.buckets = newBuckets
	if t.metrics != nil {
		t.metrics.Rehash.Inc()
	}
}

// stashLocked offers a freed value to the reuse pool, evicting the
// oldest entry (FIFO) once poolCap is reached. Values are not reused as
// allocations in Go the way raw byte blocks are in the original (the GC
// already recycles them), and nothing takes values back out of the
// pool: it only holds up to poolCap recently freed or discarded values.
func (t *Table[T]) stashLocked(v T) {
	if t.poolCap <= 0 {
		return
	}
	if len(t.pool) >= t.poolCap {
		t.pool = t.pool[1:]
	}
	t.pool = append(t.pool, v)
}

func (t *Table[T]) recycleLocked(discarded T) {
	if t.poolCap <= 0 {
		return
	}
	if len(t.pool) >= t.poolCap {
		t.pool = t.pool[1:]
	}
	t.pool = append(t.pool, discarded)
}

func (t *Table[T]) observeHit() {
	if t.metrics != nil {
		t.metrics.Hits.Inc()
		t.metrics.Entries.Set(float64(t.count))
	}
}

func (t *Table[T]) observeMiss() {
	if t.metrics != nil {
		t.metrics.Misses.Inc()
		t.metrics.Entries.Set(float64(t.count))
	}
}

// Retain increments e's reference count.
func (e *Entry[T]) Retain() {
	e.refcount++
}

// DropOne implements Releaser: decrements e's reference count,
// releasing e from its owning table once it reaches zero, and in that
// case returns e's own children (spec.md §5's cascaded drops) so the
// caller's worklist can continue without recursing.
func (e *Entry[T]) DropOne() []Releaser {
	e.refcount--
	if e.refcount > 0 {
		return nil
	}
	e.table.release(e)
	if releasable, ok := any(e.Value).(Releasable); ok {
		return releasable.Children()
	}
	return nil
}

// Release decrements e's reference count. Dropping the last reference
// deallocates e and cascades into any children e alone was keeping
// alive, iteratively via an explicit worklist rather than recursively
// (spec.md §5).
func (e *Entry[T]) Release() {
	worklist := e.DropOne()
	for len(worklist) > 0 {
		n := len(worklist) - 1
		child := worklist[n]
		worklist = worklist[:n]
		worklist = append(worklist, child.DropOne()...)
	}
}

// RefCount reports the current reference count, for tests and
// diagnostics.
func (e *Entry[T]) RefCount() int32 { return e.refcount }
