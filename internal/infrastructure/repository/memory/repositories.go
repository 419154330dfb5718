package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
)

type PlayRepository struct {
	mu       sync.RWMutex
	bySeason map[int][]play.Record
}

func NewPlayRepository(records []play.Record) *PlayRepository {
	bySeason := make(map[int][]play.Record)
	for _, item := range records {
		bySeason[item.Season] = append(bySeason[item.Season], item)
	}
	return &PlayRepository{bySeason: bySeason}
}

func (r *PlayRepository) ListBySeason(_ context.Context, season int, filter play.Filter) ([]play.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, ok := r.bySeason[season]
	if !ok {
		return nil, fmt.Errorf("season %d: %w", season, play.ErrSeasonNotFound)
	}
	return append([]play.Record(nil), filter.Apply(records)...), nil
}

func (r *PlayRepository) ReplaceSeason(_ context.Context, season int, records []play.Record) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]play.Record, 0, len(records))
	for _, item := range records {
		item.Season = season
		items = append(items, item)
	}
	r.bySeason[season] = items
	return len(items), nil
}

type RosterRepository struct {
	mu       sync.RWMutex
	bySeason map[int][]roster.Entry
}

func NewRosterRepository(entries []roster.Entry) *RosterRepository {
	bySeason := make(map[int][]roster.Entry)
	for _, item := range entries {
		bySeason[item.Season] = append(bySeason[item.Season], item)
	}
	return &RosterRepository{bySeason: bySeason}
}

func (r *RosterRepository) ListBySeason(_ context.Context, season int, filter roster.Filter) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, ok := r.bySeason[season]
	if !ok {
		return nil, fmt.Errorf("season %d: %w", season, roster.ErrSeasonNotFound)
	}
	return filter.Apply(entries), nil
}

func (r *RosterRepository) ReplaceSeason(_ context.Context, season int, entries []roster.Entry) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]roster.Entry, 0, len(entries))
	for _, item := range entries {
		item.Season = season
		items = append(items, item)
	}
	r.bySeason[season] = items
	return len(items), nil
}
