// Package app assembles the collector from configuration: store, response cache, stats
// API client and the sync services.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/mlb-stats/external/statsapi"
	"github.com/riskibarqy/mlb-stats/internal/config"
	"github.com/riskibarqy/mlb-stats/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/mlb-stats/internal/observability"
	"github.com/riskibarqy/mlb-stats/internal/platform/cache"
	idgen "github.com/riskibarqy/mlb-stats/internal/platform/id"
	"github.com/riskibarqy/mlb-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-stats/internal/platform/provenance"
	"github.com/riskibarqy/mlb-stats/internal/platform/resilience"
	"github.com/riskibarqy/mlb-stats/internal/usecase"
)

type App struct {
	Config     config.Config
	Logger     *logging.Logger
	Target     sqlstore.Target
	Store      *sqlstore.Store
	Cache      *cache.Store
	Client     *statsapi.Client
	References *usecase.ReferenceSyncService
	Games      *usecase.GameSyncService
	Backfill   *usecase.BackfillService
	SyncLog    *sqlstore.SyncLogRepository

	closers []func(context.Context) error
}

// InitDB creates the database named by cfg if needed and applies all migrations.
func InitDB(ctx context.Context, cfg config.Config) (sqlstore.Target, error) {
	target, err := sqlstore.ResolveTarget(cfg.DBURL, cfg.DBPath, cfg.DBDisablePreparedBinary)
	if err != nil {
		return sqlstore.Target{}, err
	}
	// Open creates the SQLite file and its directory before the migrator touches it.
	store, err := sqlstore.Open(ctx, target, nil)
	if err != nil {
		return sqlstore.Target{}, err
	}
	if err := store.Close(); err != nil {
		return sqlstore.Target{}, fmt.Errorf("close database: %w", err)
	}
	if err := sqlstore.Migrate(target); err != nil {
		return sqlstore.Target{}, err
	}
	return target, nil
}

// NewCache returns the configured response cache, or nil when caching is disabled.
func NewCache(cfg config.Config, logger *logging.Logger) *cache.Store {
	if !cfg.CacheEnabled || cfg.CacheDir == "" {
		return nil
	}
	return cache.NewStore(cfg.CacheDir, logger.Named("cache"))
}

// NewClient builds the stats API client from cfg.
func NewClient(cfg config.Config, store *cache.Store, logger *logging.Logger) *statsapi.Client {
	return statsapi.NewClient(statsapi.ClientConfig{
		BaseURL:      cfg.StatsAPIBaseURL,
		Version:      cfg.ServiceVersion,
		Timeout:      cfg.StatsAPITimeout,
		MaxRetries:   cfg.StatsAPIMaxRetries,
		BackoffBase:  cfg.StatsAPIBackoffBase,
		BackoffMax:   cfg.StatsAPIBackoffMax,
		RequestDelay: cfg.StatsAPIRequestDelay,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.StatsAPICircuitEnabled,
			FailureThreshold: cfg.StatsAPICircuitFailureCount,
			OpenTimeout:      cfg.StatsAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.StatsAPICircuitHalfOpenMaxReq,
		},
		Cache:  store,
		Logger: logger.Named("statsapi"),
	})
}

// New starts the exporters enabled in cfg, migrates and opens the store, and wires the
// sync services. Callers must Close the returned App.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	a := &App{Config: cfg, Logger: logger}

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}
	a.closers = append(a.closers, shutdownTracing)

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}
	a.closers = append(a.closers, func(context.Context) error { return stopProfiler() })

	target, err := InitDB(ctx, cfg)
	if err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("init database: %w", err)
	}
	a.Target = target

	revision := cfg.Revision
	if revision == "" {
		revision = provenance.DetectRevision(ctx)
	}
	prov := provenance.NewProvider(revision, cfg.ServiceVersion, nil)

	store, err := sqlstore.Open(ctx, target, prov)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	a.Store = store
	a.closers = append(a.closers, func(context.Context) error { return store.Close() })

	a.Cache = NewCache(cfg, logger)
	a.Client = NewClient(cfg, a.Cache, logger)

	teams := sqlstore.NewTeamRepository(store)
	venues := sqlstore.NewVenueRepository(store)
	players := sqlstore.NewPlayerRepository(store)
	games := sqlstore.NewGameRepository(store)
	a.SyncLog = sqlstore.NewSyncLogRepository(store)

	a.References = usecase.NewReferenceSyncService(a.Client, store, teams, venues, players, prov, logger.Named("reference"))
	a.Games = usecase.NewGameSyncService(a.Client, store, a.References, usecase.GameRepositories{
		Teams:     teams,
		Venues:    venues,
		Players:   players,
		Games:     games,
		Boxscores: sqlstore.NewBoxscoreRepository(store),
		Plays:     sqlstore.NewPlayRepository(store),
		Rosters:   sqlstore.NewRosterRepository(store),
	}, prov, logger.Named("game"))
	a.Backfill = usecase.NewBackfillService(a.Client, a.Games, games, a.SyncLog, idgen.NewUUIDGenerator(), logger.Named("backfill"))

	logger.Debug("collector ready",
		"dialect", target.Dialect,
		"database", target.Name,
		"revision", prov.Revision(),
		"version", prov.Version(),
		"cache_enabled", a.Cache != nil,
	)
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
