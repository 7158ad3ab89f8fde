// Package manager wires together everything a caller needs to build and
// evaluate SDDs: the config, the SDD store, the homomorphism context,
// structured logging and metrics. It is the single constructor/teardown
// boundary described in spec.md §5/§6, grounded the way
// _examples/AKJUS-bsc-erigon's node/backend wires its own stores,
// caches and logger behind one Backend type.
package manager

import (
	"github.com/gosdd/gosdd/config"
	"github.com/gosdd/gosdd/hom"
	"github.com/gosdd/gosdd/internal/errs"
	"github.com/gosdd/gosdd/internal/logging"
	"github.com/gosdd/gosdd/internal/metrics"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd"
	"go.uber.org/zap"
)

// Manager owns one process-wide SDD store and homomorphism context,
// configured from a single config.Config. Create one per independent
// model; sharing unique tables across unrelated models defeats
// canonicalization's whole point (equal diagrams from different models
// would needlessly collide in the same table).
type Manager[Id comparable] struct {
	cfg config.Config
	log *zap.SugaredLogger
	reg *metrics.Registry

	sdds *sdd.Store
	homs *hom.Context[Id]
}

// New builds a Manager from cfg, registering its instrumentation on a
// fresh metrics.Registry.
func New[Id comparable](cfg config.Config) (*Manager[Id], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logging.New(cfg.Verbose)
	reg := metrics.NewRegistry()

	sdds := sdd.NewStore(
		cfg.SDDUniqueTableSize,
		cfg.SumCacheSize,
		cfg.IntersectionCacheSize,
		cfg.DifferenceCacheSize,
		cfg.ArenaBlocks,
		reg,
	)

	homs, err := hom.NewContext[Id](sdds, cfg.HomUniqueTableSize, cfg.HomCacheSize)
	if err != nil {
		return nil, errs.WrapConfig("building homomorphism context: %v", err)
	}

	log.Debugw("manager initialized",
		"sdd_unique_table_size", cfg.SDDUniqueTableSize,
		"hom_unique_table_size", cfg.HomUniqueTableSize,
		"flat_set_unify", cfg.FlatSetUnify,
	)

	return &Manager[Id]{cfg: cfg, log: log, reg: reg, sdds: sdds, homs: homs}, nil
}

// Config returns the configuration the manager was built with.
func (m *Manager[Id]) Config() config.Config { return m.cfg }

// Logger returns the manager's structured logger.
func (m *Manager[Id]) Logger() *zap.SugaredLogger { return m.log }

// Metrics returns the manager's metrics registry (a prometheus.Gatherer
// via Registry.Gatherer, for exposing a /metrics endpoint).
func (m *Manager[Id]) Metrics() *metrics.Registry { return m.reg }

// Store returns the manager's SDD unique table and operation caches.
func (m *Manager[Id]) Store() *sdd.Store { return m.sdds }

// Homomorphisms returns the manager's homomorphism context.
func (m *Manager[Id]) Homomorphisms() *hom.Context[Id] { return m.homs }

// Evaluate applies h to s under o, logging at debug level on error — a
// thin convenience wrapper around hom.Context.Apply on the manager's
// own homomorphism context.
func (m *Manager[Id]) Evaluate(h hom.Homomorphism[Id], o *order.Order[Id], s sdd.SDD) (sdd.SDD, error) {
	result, err := m.homs.Apply(h, o, s)
	if err != nil {
		m.log.Debugw("evaluation failed", "error", err)
		return sdd.SDD{}, err
	}
	return result, nil
}

// Close releases resources the manager owns. The unique tables and
// caches themselves are plain Go values collected by the GC once
// unreferenced; Close exists as the explicit lifecycle boundary spec.md
// §5 calls for, and is where a future on-disk persistence layer would
// flush state.
func (m *Manager[Id]) Close() error {
	m.log.Debug("manager closed")
	return nil
}
