// Package config collects the manager's tunable options: unique-table
// and cache sizes, the arena block-reuse cap, and the flat-set uniquing
// toggle. Defaults mirror the values named in the original source's
// configuration (spec.md §6).
package config

import (
	"github.com/c2h5oh/datasize"
	"github.com/spf13/pflag"

	"github.com/gosdd/gosdd/internal/errs"
)

// Config holds every recognized manager option.
type Config struct {
	// SDDUniqueTableSize is the initial bucket count of the SDD node
	// unique table.
	SDDUniqueTableSize int

	// DifferenceCacheSize, IntersectionCacheSize and SumCacheSize bound
	// the three binary-operation caches.
	DifferenceCacheSize   int
	IntersectionCacheSize int
	SumCacheSize          int

	// ArenaSize is the configured byte size of the unique-table
	// block-reuse pool and ArenaBlocks its block-count cap. The manager
	// passes only ArenaBlocks to the SDD store, so the pool is bounded by
	// count alone; ArenaSize is accepted by WithArena and the
	// sdd-arena-size flag but is not read by any other package.
	ArenaSize   datasize.ByteSize
	ArenaBlocks int

	// HomUniqueTableSize and HomCacheSize size the homomorphism unique
	// table and its ARC-backed evaluation cache.
	HomUniqueTableSize int
	HomCacheSize       int

	// FlatSetUniqueTableSize is the configured size of the flat-set
	// unique table. It is validated but not read by any other package.
	FlatSetUniqueTableSize int

	// FlatSetUnify records whether GenericValues instances are to be
	// passed through a values unique table. The manager only logs it; no
	// constructor consults it, and values.Unifier is used only where a
	// caller builds one directly. This resolves the open question in
	// spec.md §9: the trade-off depends on the workload, so it is a
	// toggle rather than a fixed choice.
	FlatSetUnify bool

	// Verbose enables debug-level logging on the manager.
	Verbose bool
}

// Default returns the configuration with every option at its documented
// default.
func Default() Config {
	return Config{
		SDDUniqueTableSize:     10_000_000,
		DifferenceCacheSize:    500_000,
		IntersectionCacheSize:  500_000,
		SumCacheSize:           1_000_000,
		ArenaSize:              16 * datasize.MB,
		ArenaBlocks:            2048,
		HomUniqueTableSize:     1_000_000,
		HomCacheSize:           1_000_000,
		FlatSetUniqueTableSize: 5_000,
		FlatSetUnify:           false,
	}
}

// Option mutates a Config in place; constructors compose them left to
// right, the last writer for a given field winning.
type Option func(*Config)

// WithSDDUniqueTableSize overrides the SDD node unique-table bucket
// count.
func WithSDDUniqueTableSize(n int) Option {
	return func(c *Config) { c.SDDUniqueTableSize = n }
}

// WithCacheSizes overrides the three binary-operation cache sizes.
func WithCacheSizes(sum, intersection, difference int) Option {
	return func(c *Config) {
		c.SumCacheSize = sum
		c.IntersectionCacheSize = intersection
		c.DifferenceCacheSize = difference
	}
}

// WithHomSizes overrides the homomorphism unique-table and cache sizes.
func WithHomSizes(uniqueTable, cache int) Option {
	return func(c *Config) {
		c.HomUniqueTableSize = uniqueTable
		c.HomCacheSize = cache
	}
}

// WithArena overrides the block-reuse pool's byte and block-count caps.
func WithArena(size datasize.ByteSize, blocks int) Option {
	return func(c *Config) {
		c.ArenaSize = size
		c.ArenaBlocks = blocks
	}
}

// WithFlatSetUnify sets the FlatSetUnify field.
func WithFlatSetUnify(unify bool) Option {
	return func(c *Config) { c.FlatSetUnify = unify }
}

// WithVerbose toggles debug logging.
func WithVerbose(v bool) Option {
	return func(c *Config) { c.Verbose = v }
}

// New builds a Config from Default() plus the given options, then
// validates it.
func New(opts ...Option) (Config, error) {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	return c, c.Validate()
}

// Validate rejects non-positive sizes; a zero or negative table/cache
// size can never hold anything and almost always indicates a flag typo.
func (c Config) Validate() error {
	for name, v := range map[string]int{
		"sdd_unique_table_size":     c.SDDUniqueTableSize,
		"sdd_difference_cache_size": c.DifferenceCacheSize,
		"sdd_intersection_cache_size": c.IntersectionCacheSize,
		"sdd_sum_cache_size":         c.SumCacheSize,
		"hom_unique_table_size":      c.HomUniqueTableSize,
		"hom_cache_size":             c.HomCacheSize,
		"flat_set_unique_table_size": c.FlatSetUniqueTableSize,
	} {
		if v <= 0 {
			return errs.WrapConfig("%s must be positive, got %d", name, v)
		}
	}
	if c.ArenaBlocks <= 0 {
		return errs.WrapConfig("sdd_arena_size block cap must be positive, got %d", c.ArenaBlocks)
	}
	return nil
}

// byteSizeValue adapts datasize.ByteSize's encoding.TextUnmarshaler to the
// pflag.Value interface so it can be bound directly with fs.Var.
type byteSizeValue struct{ size *datasize.ByteSize }

func (v byteSizeValue) String() string { return v.size.HumanReadable() }
func (v byteSizeValue) Type() string   { return "byteSize" }
func (v byteSizeValue) Set(s string) error {
	return v.size.UnmarshalText([]byte(s))
}

// RegisterFlags binds every option to a pflag.FlagSet, for the
// gosddctl demo binary.
func RegisterFlags(fs *pflag.FlagSet) *Config {
	c := Default()
	fs.IntVar(&c.SDDUniqueTableSize, "sdd-unique-table-size", c.SDDUniqueTableSize, "initial bucket count for the SDD node unique table")
	fs.IntVar(&c.SumCacheSize, "sdd-sum-cache-size", c.SumCacheSize, "entry cap for the union operation cache")
	fs.IntVar(&c.IntersectionCacheSize, "sdd-intersection-cache-size", c.IntersectionCacheSize, "entry cap for the intersection operation cache")
	fs.IntVar(&c.DifferenceCacheSize, "sdd-difference-cache-size", c.DifferenceCacheSize, "entry cap for the difference operation cache")
	fs.IntVar(&c.HomUniqueTableSize, "hom-unique-table-size", c.HomUniqueTableSize, "initial bucket count for the homomorphism unique table")
	fs.IntVar(&c.HomCacheSize, "hom-cache-size", c.HomCacheSize, "entry cap for the homomorphism evaluation cache")
	fs.IntVar(&c.FlatSetUniqueTableSize, "flat-set-unique-table-size", c.FlatSetUniqueTableSize, "entry cap for the flat-set unique table")
	fs.IntVar(&c.ArenaBlocks, "sdd-arena-blocks", c.ArenaBlocks, "block-count cap for the node block-reuse pool")
	fs.BoolVar(&c.FlatSetUnify, "flat-set-unify", c.FlatSetUnify, "record the flat-set uniquing toggle (logged by the manager, not otherwise consulted)")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "enable debug logging")
	fs.Var(byteSizeValue{&c.ArenaSize}, "sdd-arena-size", "byte size of the node block-reuse pool")
	return &c
}
