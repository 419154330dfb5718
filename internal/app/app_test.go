package app

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-points/internal/config"
	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
	"github.com/stretchr/testify/require"
)

func TestNewSources_MemoryWithCache(t *testing.T) {
	cfg := config.Config{
		DataSource:   config.DataSourceMemory,
		CacheEnabled: true,
		CacheBackend: config.CacheBackendMemory,
		CacheTTL:     time.Minute,
	}

	src, err := NewSources(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, src.Close()) }()

	records, err := src.Plays.ListBySeason(context.Background(), memory.SeedSeason, play.NewFilter().Week(2))
	require.NoError(t, err)
	require.Len(t, records, 3)

	svc := NewFantasyService(cfg, src, logging.NewNop())
	result, err := svc.ScoreGame(context.Background(), usecase.ScoreQuery{
		Season:  memory.SeedSeason,
		Plays:   play.NewFilter().Week(2),
		Profile: mustProfile(t, svc),
	})
	require.NoError(t, err)
	require.Equal(t, "2023_01_KC_LV", result.GameID)
}

func TestNewSources_RedisRejectsBadURL(t *testing.T) {
	cfg := config.Config{
		DataSource:   config.DataSourceMemory,
		CacheEnabled: true,
		CacheBackend: config.CacheBackendRedis,
		RedisURL:     "not-a-redis-url",
	}

	_, err := NewSources(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	svc := usecase.NewFantasyService(memory.NewPlayRepository(nil), memory.NewRosterRepository(nil), usecase.FantasyServiceConfig{}, nil)

	_, err := NewHTTPServer(config.Config{}, svc, logging.NewNop())
	require.Error(t, err)

	server, err := NewHTTPServer(config.Config{HTTPAddr: ":8080"}, svc, logging.NewNop())
	require.NoError(t, err)
	require.NotNil(t, server.Handler)
}

func mustProfile(t *testing.T, svc *usecase.FantasyService) scoring.Profile {
	t.Helper()
	p, err := svc.ResolveProfile("")
	require.NoError(t, err)
	return p
}
