package scenarios

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosdd/gosdd/hom"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
	"github.com/gosdd/gosdd/sdd/visit"
	"github.com/gosdd/gosdd/values"
)

// scheduleStep is a Function that, given a set of reachable
// completion-status bit vectors, returns every vector one task-t
// completion away: bit t set where it was clear and every dependency
// bit of t was already set. Grounded on the single-core scheduling step
// in _examples/original_source/examples/scheduling/Schedulers.hpp,
// simplified to a fixed dependency graph (out of scope as product
// logic; exercised only here).
type scheduleStep struct {
	task int
	deps []int
}

func (s scheduleStep) Apply(vals values.Set) values.Set {
	out := values.NewBitsetValues()
	bits, ok := vals.(values.BitsetValues)
	if !ok {
		return out
	}
	for _, b := range bits.Elements() {
		if b&(1<<uint(s.task)) != 0 {
			continue
		}
		ready := true
		for _, d := range s.deps {
			if b&(1<<uint(d)) == 0 {
				ready = false
				break
			}
		}
		if !ready {
			continue
		}
		out = out.Sum(values.NewBitsetValues(b | (1 << uint(s.task)))).(values.BitsetValues)
	}
	return out
}

func (scheduleStep) Selector() bool { return false }

func (s scheduleStep) Equal(other hom.FlatFunction[string]) bool {
	o, ok := other.(scheduleStep)
	return ok && s.task == o.task
}

func (s scheduleStep) Hash() uint64 { return uint64(s.task) ^ 0x5C4ED }

// TestSchedulingReachableStateCountMatchesNaiveBFS cross-checks the
// fixed point of independently-applied per-task scheduling steps
// against a plain graph search over the same three-task, single-core
// dependency model (task1 and task2 each depend on task0).
func TestSchedulingReachableStateCountMatchesNaiveBFS(t *testing.T) {
	const nbTasks = 3
	deps := map[int][]int{0: {}, 1: {0}, 2: {0}}

	store := sdd.NewStore(64, 64, 64, 64, 64, nil)
	o, err := order.Build(order.NewBuilder[string]().Push("state"))
	require.NoError(t, err)
	v, err := o.IdentifierVariable("state")
	require.NoError(t, err)

	ctx, err := hom.NewContext[string](store, 64, 64)
	require.NoError(t, err)

	m0 := store.Flat(v, values.NewBitsetValues(0), store.One())

	var events []hom.Homomorphism[string]
	for task := 0; task < nbTasks; task++ {
		events = append(events, ctx.Function(v, scheduleStep{task: task, deps: deps[task]}))
	}
	events = append(events, ctx.Id())

	h := ctx.Fixpoint(ctx.Sum(events...))
	final, err := ctx.Apply(h, o, m0)
	require.NoError(t, err)

	count, err := visit.CountPaths(final)
	require.NoError(t, err)

	naive := naiveReachableStateCount(nbTasks, deps)
	require.Equal(t, naive, count.Int64())
}

// naiveReachableStateCount brute-forces the same reachability question
// by explicit graph search over completion-status bit vectors, as an
// independent oracle for the SDD-based fixed point above.
func naiveReachableStateCount(nbTasks int, deps map[int][]int) int64 {
	start := 0
	seen := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for task := 0; task < nbTasks; task++ {
			if cur&(1<<uint(task)) != 0 {
				continue
			}
			ready := true
			for _, d := range deps[task] {
				if cur&(1<<uint(d)) == 0 {
					ready = false
					break
				}
			}
			if !ready {
				continue
			}
			next := cur | (1 << uint(task))
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return int64(len(seen))
}
