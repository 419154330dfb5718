package file

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
)

// PlayRepository reads one file per season, e.g. data/pbp_2023.parquet.
type PlayRepository struct {
	pathTemplate string
	logger       *logging.Logger
}

func NewPlayRepository(pathTemplate string, logger *logging.Logger) *PlayRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayRepository{pathTemplate: pathTemplate, logger: logger.Named("file-plays")}
}

func (r *PlayRepository) ListBySeason(ctx context.Context, season int, filter play.Filter) ([]play.Record, error) {
	path := SeasonPath(r.pathTemplate, season)
	records, err := ReadPlays(ctx, path)
	if err != nil {
		return nil, err
	}
	if path == r.pathTemplate {
		records = onlySeason(records, season, func(rec play.Record) int { return rec.Season })
		if len(records) == 0 {
			return nil, fmt.Errorf("%s: season %d: %w", path, season, play.ErrSeasonNotFound)
		}
	}

	out := filter.Apply(records)
	r.logger.DebugContext(ctx, "plays loaded", "path", path, "rows", len(records), "matched", len(out))
	return out, nil
}

// RosterRepository reads one weekly roster file per season.
type RosterRepository struct {
	pathTemplate string
	logger       *logging.Logger
}

func NewRosterRepository(pathTemplate string, logger *logging.Logger) *RosterRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterRepository{pathTemplate: pathTemplate, logger: logger.Named("file-rosters")}
}

func (r *RosterRepository) ListBySeason(ctx context.Context, season int, filter roster.Filter) ([]roster.Entry, error) {
	path := SeasonPath(r.pathTemplate, season)
	entries, err := ReadRoster(ctx, path)
	if err != nil {
		return nil, err
	}
	if path == r.pathTemplate {
		entries = onlySeason(entries, season, func(e roster.Entry) int { return e.Season })
		if len(entries) == 0 {
			return nil, fmt.Errorf("%s: season %d: %w", path, season, roster.ErrSeasonNotFound)
		}
	}

	out := filter.Apply(entries)
	r.logger.DebugContext(ctx, "roster loaded", "path", path, "rows", len(entries), "matched", len(out))
	return out, nil
}

// SeasonPath fills the season into template. A template without a %d verb is
// a fixed path and is returned unchanged.
func SeasonPath(template string, season int) string {
	if !strings.Contains(template, "%d") {
		return template
	}
	return fmt.Sprintf(template, season)
}

// onlySeason narrows a multi-season file. Rows without a season are kept.
func onlySeason[T any](items []T, season int, seasonOf func(T) int) []T {
	out := items[:0:0]
	for _, item := range items {
		if s := seasonOf(item); s == 0 || s == season {
			out = append(out, item)
		}
	}
	return out
}
