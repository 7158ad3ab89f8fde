// Package intutil collects the small overflow-checked integer helpers
// the unique table's resize path needs. Adapted from
// _examples/AKJUS-bsc-erigon's erigon-lib/common/math/integer.go,
// trimmed to a handful of operations (SafeMul and MaxUint32 are used by
// the unique table's rehash; CeilDiv currently has no caller) — the
// hex/decimal JSON marshaling, randomness and absolute-difference
// helpers there have no caller in this domain and were dropped rather
// than carried along unused.
package intutil

import "math/bits"

// MaxUint32 bounds the variable and position counters order.Order
// assigns (both are uint32), so it doubles as the sanity limit a
// pathologically large order should be rejected against.
const MaxUint32 = 1<<32 - 1

// SafeMul returns x*y and reports whether it overflowed a uint64.
func SafeMul(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi != 0
}

// CeilDiv returns ceil(x/y), or 0 if y is 0.
func CeilDiv(x, y int) int {
	if y == 0 {
		return 0
	}
	return (x + y - 1) / y
}
