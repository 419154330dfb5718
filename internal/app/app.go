package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fantasy-points/internal/config"
	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
	cacherepo "github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/file"
	"github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-points/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-points/internal/platform/cache"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/riskibarqy/fantasy-points/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// Sources are the play and roster repositories selected by configuration,
// already wrapped by the season cache when it is enabled.
type Sources struct {
	Plays   play.Repository
	Rosters roster.Repository
	DB      *sqlx.DB

	closers []func() error
}

func (s *Sources) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func NewSources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Sources, error) {
	if logger == nil {
		logger = logging.Default()
	}

	src := &Sources{}
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		src.DB = db
		src.closers = append(src.closers, db.Close)
		src.Plays = postgres.NewPlayRepository(db)
		src.Rosters = postgres.NewRosterRepository(db)
	case config.DataSourceMemory:
		src.Plays = memory.NewPlayRepository(memory.SeedPlays())
		src.Rosters = memory.NewRosterRepository(memory.SeedRosters())
	default:
		src.Plays = file.NewPlayRepository(cfg.PBPPathTemplate, logger)
		src.Rosters = file.NewRosterRepository(cfg.RosterPathTemplate, logger)
	}

	if !cfg.CacheEnabled {
		return src, nil
	}

	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(opts)
		src.closers = append(src.closers, client.Close)

		prefix := strings.TrimSpace(cfg.ServiceName) + ":"
		src.Plays = cacherepo.NewPlayRepository(src.Plays, cache.NewRedisStore[[]play.Record](client, prefix, cfg.CacheTTL, logger))
		src.Rosters = cacherepo.NewRosterRepository(src.Rosters, cache.NewRedisStore[[]roster.Entry](client, prefix, cfg.CacheTTL, logger))
	default:
		src.Plays = cacherepo.NewPlayRepository(src.Plays, cache.NewStore[[]play.Record](cfg.CacheTTL))
		src.Rosters = cacherepo.NewRosterRepository(src.Rosters, cache.NewStore[[]roster.Entry](cfg.CacheTTL))
	}

	logger.Info("data sources ready", "data_source", cfg.DataSource, "cache", cfg.CacheBackend, "cache_ttl", cfg.CacheTTL.String())
	return src, nil
}

// OpenDB opens the traced postgres pool and checks it is reachable.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(DBNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	otelsql.ReportDBStatsMetrics(db.DB)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func NewFantasyService(cfg config.Config, src *Sources, logger *logging.Logger) *usecase.FantasyService {
	return usecase.NewFantasyService(src.Plays, src.Rosters, usecase.FantasyServiceConfig{
		AggregateWorkers: cfg.AggregateWorkers,
		DefaultProfile:   cfg.DefaultScoring,
		SourceCircuit: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SourceCircuitEnabled,
			FailureThreshold: cfg.SourceCircuitFailureCount,
			OpenTimeout:      cfg.SourceCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SourceCircuitHalfOpenMaxReq,
		},
	}, logger)
}

func NewHTTPServer(cfg config.Config, fantasyService *usecase.FantasyService, logger *logging.Logger) (*http.Server, error) {
	handler := httpapi.NewHandler(fantasyService, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
