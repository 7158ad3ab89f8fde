// Package hashutil provides the hash-combining helper used throughout the
// unique tables and caches: every canonicalized type folds its fields
// into a single uint64 with this function, mirroring the original's
// util::hash_combine.
package hashutil

// Combine folds h2 into h1 with the hash_combine formula (golden-ratio
// constant plus shifted copies of h1). The exact constants are not
// load-bearing for correctness (only for bucket distribution), but must
// be stable across calls within one process since hashes key unique
// tables and caches.
func Combine(h1, h2 uint64) uint64 {
	h1 ^= h2 + 0x9e3779b97f4a7c15 + (h1 << 6) + (h1 >> 2)
	return h1
}

// FNV1a hashes a byte slice.
func FNV1a(b []byte) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= prime64
	}
	return h
}

// Uint64 hashes a single uint64 value.
func Uint64(v uint64) uint64 {
	v ^= v >> 33
	v *= 0xff51afd7ed558ccd
	v ^= v >> 33
	v *= 0xc4ceb9fe1a85ec53
	v ^= v >> 33
	return v
}
