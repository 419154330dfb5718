package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
	basecache "github.com/riskibarqy/fantasy-points/internal/platform/cache"
)

// PlayRepository caches whole seasons and filters them in memory, so every
// filter over the same season shares one load.
type PlayRepository struct {
	next  play.Repository
	cache basecache.Loader[[]play.Record]
}

func NewPlayRepository(next play.Repository, cache basecache.Loader[[]play.Record]) *PlayRepository {
	return &PlayRepository{next: next, cache: cache}
}

func (r *PlayRepository) ListBySeason(ctx context.Context, season int, filter play.Filter) ([]play.Record, error) {
	key := "plays:season:" + strconv.Itoa(season)
	items, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]play.Record, error) {
		return r.next.ListBySeason(ctx, season, play.NewFilter())
	})
	if err != nil {
		return nil, err
	}

	return append([]play.Record(nil), filter.Apply(items)...), nil
}

type RosterRepository struct {
	next  roster.Repository
	cache basecache.Loader[[]roster.Entry]
}

func NewRosterRepository(next roster.Repository, cache basecache.Loader[[]roster.Entry]) *RosterRepository {
	return &RosterRepository{next: next, cache: cache}
}

func (r *RosterRepository) ListBySeason(ctx context.Context, season int, filter roster.Filter) ([]roster.Entry, error) {
	key := "rosters:season:" + strconv.Itoa(season)
	items, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]roster.Entry, error) {
		return r.next.ListBySeason(ctx, season, roster.NewFilter())
	})
	if err != nil {
		return nil, err
	}

	return filter.Apply(items), nil
}
