package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-points/internal/domain/stats"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/riskibarqy/fantasy-points/internal/platform/resilience"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// ScoreQuery selects the plays to score and how to report them. Roster is only
// consulted when RestrictToRoster is set.
type ScoreQuery struct {
	Season           int
	Plays            play.Filter
	Roster           roster.Filter
	RestrictToRoster bool
	Profile          scoring.Profile
	Granularity      scoring.Granularity
}

// ScoreResult carries the rows for the requested granularity only.
type ScoreResult struct {
	Season      int
	GameID      string
	Granularity scoring.Granularity
	Rows        []scoring.ScoreRow
	Players     []scoring.PlayerTotal
	Games       []scoring.GameTotal
}

// NamedProfile pairs a preset name with its coefficients.
type NamedProfile struct {
	Name    string
	Profile scoring.Profile
}

type FantasyServiceConfig struct {
	AggregateWorkers int
	DefaultProfile   string
	SourceCircuit    resilience.CircuitBreakerConfig
}

type FantasyService struct {
	plays          play.Repository
	rosters        roster.Repository
	aggregator     aggregator
	breaker        *resilience.CircuitBreaker
	defaultProfile string
	logger         *logging.Logger
}

func NewFantasyService(plays play.Repository, rosters roster.Repository, cfg FantasyServiceConfig, logger *logging.Logger) *FantasyService {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("fantasy")

	defaultProfile := strings.TrimSpace(cfg.DefaultProfile)
	if defaultProfile == "" {
		defaultProfile = scoring.PresetPPR
	}

	var breaker *resilience.CircuitBreaker
	if cfg.SourceCircuit.Enabled {
		circuit := cfg.SourceCircuit
		circuit.Ignore = append([]error{play.ErrSeasonNotFound, roster.ErrSeasonNotFound}, circuit.Ignore...)
		breaker = resilience.NewCircuitBreaker(circuit)
	}

	return &FantasyService{
		plays:          plays,
		rosters:        rosters,
		aggregator:     newAggregator(cfg.AggregateWorkers, logger),
		breaker:        breaker,
		defaultProfile: defaultProfile,
		logger:         logger,
	}
}

// ResolveProfile looks up a preset by name; an empty name selects the
// configured default.
func (s *FantasyService) ResolveProfile(name string) (scoring.Profile, error) {
	if strings.TrimSpace(name) == "" {
		name = s.defaultProfile
	}
	p, err := scoring.ProfileByName(name)
	if err != nil {
		return scoring.Profile{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return p, nil
}

func (s *FantasyService) Presets() []NamedProfile {
	names := scoring.PresetNames()
	out := make([]NamedProfile, 0, len(names))
	for _, name := range names {
		p, err := scoring.ProfileByName(name)
		if err != nil {
			continue
		}
		out = append(out, NamedProfile{Name: name, Profile: p})
	}
	return out
}

// Score computes one row per player per game over every play matching the query.
func (s *FantasyService) Score(ctx context.Context, q ScoreQuery) (ScoreResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.Score")
	defer span.End()

	if err := validateQuery(q); err != nil {
		return ScoreResult{}, err
	}

	plays, entries, err := s.load(ctx, q)
	if err != nil {
		return ScoreResult{}, err
	}

	tables, err := s.aggregator.run(ctx, plays)
	if err != nil {
		return ScoreResult{}, err
	}
	merged := stats.Merge(tables)

	result := s.finish(ctx, q, merged, entries)
	span.SetAttributes(
		attribute.Int("fantasy.season", q.Season),
		attribute.Int("fantasy.plays", len(plays)),
		attribute.Int("fantasy.rows", len(merged)),
	)
	return result, nil
}

// ScoreGame scores a selection that must resolve to exactly one game. Rows are
// joined on team and player only, so each player appears once.
func (s *FantasyService) ScoreGame(ctx context.Context, q ScoreQuery) (ScoreResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.ScoreGame")
	defer span.End()

	if err := validateQuery(q); err != nil {
		return ScoreResult{}, err
	}

	plays, entries, err := s.load(ctx, q)
	if err != nil {
		return ScoreResult{}, err
	}

	gameID, err := play.EnsureSingleGame(plays)
	if err != nil {
		s.logger.InfoContext(ctx, "single game selection rejected", "season", q.Season, "error", err)
		return ScoreResult{}, err
	}

	tables, err := s.aggregator.run(ctx, plays)
	if err != nil {
		return ScoreResult{}, err
	}
	merged := stats.Merge(tables, stats.WithinGame())

	result := s.finish(ctx, q, merged, entries)
	result.GameID = gameID
	span.SetAttributes(
		attribute.String("fantasy.game_id", gameID),
		attribute.Int("fantasy.rows", len(merged)),
	)
	return result, nil
}

func validateQuery(q ScoreQuery) error {
	if q.Season <= 0 {
		return fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	if err := q.Profile.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := scoring.ParseGranularity(string(q.Granularity)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func (s *FantasyService) finish(ctx context.Context, q ScoreQuery, merged []stats.Row, entries []roster.Entry) ScoreResult {
	rows := scoring.Score(merged, q.Profile)
	if q.RestrictToRoster {
		before := len(rows)
		rows = scoring.RestrictToRoster(rows, entries)
		s.logger.DebugContext(ctx, "rows restricted to roster", "before", before, "after", len(rows), "roster", len(entries))
	}

	granularity, _ := scoring.ParseGranularity(string(q.Granularity))
	result := ScoreResult{Season: q.Season, Granularity: granularity}
	switch granularity {
	case scoring.GranularityPlayer:
		result.Players = scoring.ByPlayer(rows)
	case scoring.GranularityGame:
		result.Games = scoring.ByGame(rows)
	default:
		result.Rows = rows
	}
	return result
}

// load fetches plays and, when needed, the roster concurrently.
func (s *FantasyService) load(ctx context.Context, q ScoreQuery) ([]play.Record, []roster.Entry, error) {
	var (
		plays   []play.Record
		entries []roster.Entry
	)

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		records, err := s.loadPlays(ctx, q.Season, q.Plays)
		plays = records
		return err
	})
	if q.RestrictToRoster {
		p.Go(func(ctx context.Context) error {
			items, err := s.loadRoster(ctx, q.Season, q.Roster)
			entries = items
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	s.logger.DebugContext(ctx, "sources loaded", "season", q.Season, "plays", len(plays), "roster", len(entries))
	return plays, entries, nil
}

func (s *FantasyService) loadPlays(ctx context.Context, season int, filter play.Filter) ([]play.Record, error) {
	var out []play.Record
	err := s.guard(func() error {
		records, err := s.plays.ListBySeason(ctx, season, filter)
		out = records
		return err
	})
	if errors.Is(err, play.ErrSeasonNotFound) {
		return nil, fmt.Errorf("%w: plays for season %d: %w", ErrNotFound, season, err)
	}
	if err != nil {
		return nil, sourceError("load plays", err)
	}
	return out, nil
}

func (s *FantasyService) loadRoster(ctx context.Context, season int, filter roster.Filter) ([]roster.Entry, error) {
	var out []roster.Entry
	err := s.guard(func() error {
		entries, err := s.rosters.ListBySeason(ctx, season, filter)
		out = entries
		return err
	})
	if errors.Is(err, roster.ErrSeasonNotFound) {
		return nil, fmt.Errorf("%w: roster for season %d: %w", ErrNotFound, season, err)
	}
	if err != nil {
		return nil, sourceError("load roster", err)
	}
	return out, nil
}

// guard runs fn through the source circuit breaker. A missing season is on the
// breaker's ignore list and never opens it.
func (s *FantasyService) guard(fn func() error) error {
	return s.breaker.Execute(fn)
}

func sourceError(op string, err error) error {
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
