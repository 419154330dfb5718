package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// PlaySeasonWriter replaces a stored season of plays.
type PlaySeasonWriter interface {
	ReplaceSeason(ctx context.Context, season int, records []play.Record) (int, error)
}

// RosterSeasonWriter replaces a stored season of roster listings.
type RosterSeasonWriter interface {
	ReplaceSeason(ctx context.Context, season int, entries []roster.Entry) (int, error)
}

type ImportRequest struct {
	Season  int
	Plays   bool
	Rosters bool
}

type ImportResult struct {
	Season         int
	Plays          int
	SkippedPlays   int
	Rosters        int
	SkippedRosters int
}

// ImportService copies whole seasons from a read source into a writable store.
type ImportService struct {
	playSource   play.Repository
	rosterSource roster.Repository
	plays        PlaySeasonWriter
	rosters      RosterSeasonWriter
	logger       *logging.Logger
}

func NewImportService(
	playSource play.Repository,
	rosterSource roster.Repository,
	plays PlaySeasonWriter,
	rosters RosterSeasonWriter,
	logger *logging.Logger,
) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		playSource:   playSource,
		rosterSource: rosterSource,
		plays:        plays,
		rosters:      rosters,
		logger:       logger.Named("import"),
	}
}

func (s *ImportService) Import(ctx context.Context, req ImportRequest) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import")
	defer span.End()

	if req.Season <= 0 {
		return ImportResult{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	if !req.Plays && !req.Rosters {
		return ImportResult{}, fmt.Errorf("%w: nothing selected to import", ErrInvalidInput)
	}

	result := ImportResult{Season: req.Season}
	if req.Plays {
		if err := s.importPlays(ctx, req.Season, &result); err != nil {
			return result, err
		}
	}
	if req.Rosters {
		if err := s.importRosters(ctx, req.Season, &result); err != nil {
			return result, err
		}
	}

	span.SetAttributes(
		attribute.Int("import.season", req.Season),
		attribute.Int("import.plays", result.Plays),
		attribute.Int("import.rosters", result.Rosters),
	)
	return result, nil
}

func (s *ImportService) importPlays(ctx context.Context, season int, result *ImportResult) error {
	if s.playSource == nil || s.plays == nil {
		return fmt.Errorf("%w: play import is not configured", ErrInvalidInput)
	}

	records, err := s.playSource.ListBySeason(ctx, season, play.NewFilter())
	if err != nil {
		if errors.Is(err, play.ErrSeasonNotFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return fmt.Errorf("read plays: %w", err)
	}

	keep := make([]play.Record, 0, len(records))
	for _, r := range records {
		if r.GameID == "" {
			result.SkippedPlays++
			continue
		}
		keep = append(keep, r)
	}

	n, err := s.plays.ReplaceSeason(ctx, season, keep)
	if err != nil {
		return fmt.Errorf("store plays: %w", err)
	}
	result.Plays = n
	s.logger.InfoContext(ctx, "plays imported", "season", season, "rows", n, "skipped", result.SkippedPlays)
	return nil
}

func (s *ImportService) importRosters(ctx context.Context, season int, result *ImportResult) error {
	if s.rosterSource == nil || s.rosters == nil {
		return fmt.Errorf("%w: roster import is not configured", ErrInvalidInput)
	}

	entries, err := s.rosterSource.ListBySeason(ctx, season, roster.NewFilter())
	if err != nil {
		if errors.Is(err, roster.ErrSeasonNotFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return fmt.Errorf("read rosters: %w", err)
	}

	keep := make([]roster.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Season == 0 {
			e.Season = season
		}
		if err := e.Validate(); err != nil {
			result.SkippedRosters++
			s.logger.DebugContext(ctx, "roster row skipped", "player_id", e.PlayerID, "error", err)
			continue
		}
		keep = append(keep, e)
	}

	n, err := s.rosters.ReplaceSeason(ctx, season, keep)
	if err != nil {
		return fmt.Errorf("store rosters: %w", err)
	}
	result.Rosters = n
	s.logger.InfoContext(ctx, "rosters imported", "season", season, "rows", n, "skipped", result.SkippedRosters)
	return nil
}
