package usecase

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	playmock "github.com/riskibarqy/fantasy-points/internal/mocks/domain/play"
	rostermock "github.com/riskibarqy/fantasy-points/internal/mocks/domain/roster"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/riskibarqy/fantasy-points/internal/platform/resilience"
	"github.com/stretchr/testify/mock"
)

const (
	qbID = "00-0000001"
	wrID = "00-0000002"
	rbID = "00-0000003"
)

func passPlay(gameID string, yards, td float64) play.Record {
	r := play.Record{GameID: gameID, Season: 2023, Week: 1, PosTeam: "KC", PlayType: "pass",
		PassingYards: yards, ReceivingYards: yards, PassTouchdown: td, CompletePass: 1}
	r.SetPlayer(play.RolePasser, qbID, "Q.Back")
	r.SetPlayer(play.RoleReceiver, wrID, "W.Out")
	return r
}

func rushPlay(gameID string, week int, yards float64) play.Record {
	r := play.Record{GameID: gameID, Season: 2023, Week: week, PosTeam: "KC", PlayType: "run", RushingYards: yards}
	r.SetPlayer(play.RoleRusher, rbID, "R.Back")
	return r
}

// samplePlays scores under PPR to WR 13, QB 6, RB 4 in g1 and RB 2 in g2.
func samplePlays() []play.Record {
	return []play.Record{
		passPlay("g1", 30, 1),
		passPlay("g1", 20, 0),
		rushPlay("g1", 1, 40),
		rushPlay("g2", 2, 20),
	}
}

func newTestService(plays play.Repository, rosters roster.Repository, circuit resilience.CircuitBreakerConfig) *FantasyService {
	return NewFantasyService(plays, rosters, FantasyServiceConfig{
		AggregateWorkers: 4,
		DefaultProfile:   scoring.PresetPPR,
		SourceCircuit:    circuit,
	}, logging.NewNop())
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFantasyService_Score_PlayerGameRows(t *testing.T) {
	t.Parallel()

	plays := playmock.NewRepository(t)
	plays.On("ListBySeason", mock.Anything, 2023, mock.Anything).Return(samplePlays(), nil).Once()

	svc := newTestService(plays, rostermock.NewRepository(t), resilience.CircuitBreakerConfig{})
	got, err := svc.Score(context.Background(), ScoreQuery{Season: 2023, Plays: play.NewFilter(), Profile: scoring.PPR()})
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	if got.Granularity != scoring.GranularityPlayerGame {
		t.Fatalf("unexpected granularity: %s", got.Granularity)
	}
	want := []struct {
		id     string
		game   string
		points float64
	}{
		{wrID, "g1", 13},
		{qbID, "g1", 6},
		{rbID, "g1", 4},
		{rbID, "g2", 2},
	}
	if len(got.Rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got.Rows))
	}
	for i, w := range want {
		row := got.Rows[i]
		if row.PlayerID != w.id || row.GameID != w.game || !closeTo(row.FantasyPoints, w.points) {
			t.Fatalf("row %d: got %s/%s %.2f, want %s/%s %.2f", i, row.PlayerID, row.GameID, row.FantasyPoints, w.id, w.game, w.points)
		}
	}
}

func TestFantasyService_Score_ByPlayer(t *testing.T) {
	t.Parallel()

	plays := playmock.NewRepository(t)
	plays.On("ListBySeason", mock.Anything, 2023, mock.Anything).Return(samplePlays(), nil).Once()

	svc := newTestService(plays, rostermock.NewRepository(t), resilience.CircuitBreakerConfig{})
	got, err := svc.Score(context.Background(), ScoreQuery{
		Season:      2023,
		Profile:     scoring.PPR(),
		Granularity: scoring.GranularityPlayer,
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if got.Rows != nil || len(got.Players) != 3 {
		t.Fatalf("expected only player totals, got rows=%d players=%d", len(got.Rows), len(got.Players))
	}
	last := got.Players[2]
	if last.PlayerID != rbID || last.Games != 2 || !closeTo(last.FantasyPoints, 6) {
		t.Fatalf("unexpected rb total: %+v", last)
	}
}

func TestFantasyService_Score_RestrictToRoster(t *testing.T) {
	t.Parallel()

	plays := playmock.NewRepository(t)
	plays.On("ListBySeason", mock.Anything, 2023, mock.Anything).Return(samplePlays(), nil).Once()
	rosters := rostermock.NewRepository(t)
	rosters.On("ListBySeason", mock.Anything, 2023, mock.Anything).Return([]roster.Entry{
		{PlayerID: wrID, Season: 2023, Week: 1, Position: "WR", FullName: "Wide Out"},
		{PlayerID: rbID, Season: 2023, Week: 1, Position: "RB", FullName: "Running Back"},
	}, nil).Once()

	svc := newTestService(plays, rosters, resilience.CircuitBreakerConfig{})
	got, err := svc.Score(context.Background(), ScoreQuery{
		Season:           2023,
		Profile:          scoring.PPR(),
		Roster:           roster.NewFilter().Position(roster.PositionFlex).UniquePlayers(),
		RestrictToRoster: true,
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if len(got.Rows) != 3 {
		t.Fatalf("expected 3 flex rows, got %d", len(got.Rows))
	}
	for _, row := range got.Rows {
		if row.PlayerID == qbID {
			t.Fatalf("quarterback must be dropped by the roster join")
		}
		if row.Position == "" || row.FullName == "" {
			t.Fatalf("row not labelled from roster: %+v", row)
		}
	}
}

func TestFantasyService_ScoreGame(t *testing.T) {
	t.Parallel()

	t.Run("single game", func(t *testing.T) {
		t.Parallel()

		plays := playmock.NewRepository(t)
		plays.On("ListBySeason", mock.Anything, 2023, mock.Anything).Return(samplePlays()[:3], nil).Once()

		svc := newTestService(plays, rostermock.NewRepository(t), resilience.CircuitBreakerConfig{})
		got, err := svc.ScoreGame(context.Background(), ScoreQuery{Season: 2023, Profile: scoring.PPR()})
		if err != nil {
			t.Fatalf("score game: %v", err)
		}
		if got.GameID != "g1" || len(got.Rows) != 3 {
			t.Fatalf("unexpected result: game=%q rows=%d", got.GameID, len(got.Rows))
		}
	})

	t.Run("several games", func(t *testing.T) {
		t.Parallel()

		plays := playmock.NewRepository(t)
		plays.On("ListBySeason", mock.Anything, 2023, mock.Anything).Return(samplePlays(), nil).Once()

		svc := newTestService(plays, rostermock.NewRepository(t), resilience.CircuitBreakerConfig{})
		_, err := svc.ScoreGame(context.Background(), ScoreQuery{Season: 2023, Profile: scoring.PPR()})

		var guardErr *play.NotASingleGameError
		if !errors.As(err, &guardErr) {
			t.Fatalf("expected NotASingleGameError, got %v", err)
		}
		if !reflect.DeepEqual(guardErr.GameIDs, []string{"g1", "g2"}) {
			t.Fatalf("unexpected game ids: %v", guardErr.GameIDs)
		}
	})

	t.Run("no plays", func(t *testing.T) {
		t.Parallel()

		plays := playmock.NewRepository(t)
		plays.On("ListBySeason", mock.Anything, 2023, mock.Anything).Return([]play.Record{}, nil).Once()

		svc := newTestService(plays, rostermock.NewRepository(t), resilience.CircuitBreakerConfig{})
		_, err := svc.ScoreGame(context.Background(), ScoreQuery{Season: 2023, Profile: scoring.PPR()})

		var guardErr *play.NotASingleGameError
		if !errors.As(err, &guardErr) || len(guardErr.GameIDs) != 0 {
			t.Fatalf("expected empty NotASingleGameError, got %v", err)
		}
	})
}

func TestFantasyService_Score_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(playmock.NewRepository(t), rostermock.NewRepository(t), resilience.CircuitBreakerConfig{})
	ctx := context.Background()

	cases := map[string]ScoreQuery{
		"season":      {Season: 0, Profile: scoring.PPR()},
		"profile":     {Season: 2023, Profile: scoring.Profile{}},
		"granularity": {Season: 2023, Profile: scoring.PPR(), Granularity: "team"},
	}
	for name, q := range cases {
		if _, err := svc.Score(ctx, q); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestFantasyService_Score_SeasonNotFound(t *testing.T) {
	t.Parallel()

	plays := playmock.NewRepository(t)
	plays.On("ListBySeason", mock.Anything, 1999, mock.Anything).Return(nil, play.ErrSeasonNotFound).Twice()

	svc := newTestService(plays, rostermock.NewRepository(t), resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		_, err := svc.Score(context.Background(), ScoreQuery{Season: 1999, Profile: scoring.PPR()})
		if !errors.Is(err, ErrNotFound) || !errors.Is(err, play.ErrSeasonNotFound) {
			t.Fatalf("attempt %d: expected not found, got %v", i, err)
		}
	}
}

func TestFantasyService_Score_CircuitOpensOnSourceFailures(t *testing.T) {
	t.Parallel()

	plays := playmock.NewRepository(t)
	plays.On("ListBySeason", mock.Anything, 2023, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	svc := newTestService(plays, rostermock.NewRepository(t), resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})
	ctx := context.Background()
	q := ScoreQuery{Season: 2023, Profile: scoring.PPR()}

	if _, err := svc.Score(ctx, q); err == nil || errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("first failure should surface the source error, got %v", err)
	}
	if _, err := svc.Score(ctx, q); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once the circuit is open, got %v", err)
	}
}

func TestFantasyService_Score_CircuitUsesSourceDefaults(t *testing.T) {
	t.Parallel()

	defaults := resilience.DefaultSourceCircuitConfig()
	plays := playmock.NewRepository(t)
	plays.On("ListBySeason", mock.Anything, 2023, mock.Anything).Return(nil, errors.New("read parquet: unexpected EOF")).Times(defaults.FailureThreshold)

	svc := newTestService(plays, rostermock.NewRepository(t), resilience.CircuitBreakerConfig{Enabled: true})
	ctx := context.Background()
	q := ScoreQuery{Season: 2023, Profile: scoring.PPR()}

	for i := 0; i < defaults.FailureThreshold; i++ {
		if _, err := svc.Score(ctx, q); err == nil || errors.Is(err, ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected the source error, got %v", i, err)
		}
	}
	if _, err := svc.Score(ctx, q); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable after %d failures, got %v", defaults.FailureThreshold, err)
	}
}

func TestFantasyService_ResolveProfile(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, resilience.CircuitBreakerConfig{})

	p, err := svc.ResolveProfile("")
	if err != nil {
		t.Fatalf("resolve default: %v", err)
	}
	if p != scoring.PPR() {
		t.Fatalf("expected ppr as the default profile")
	}
	if _, err := svc.ResolveProfile("standard-ish"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := svc.Presets(); len(got) != len(scoring.PresetNames()) {
		t.Fatalf("expected every preset, got %d", len(got))
	}
}

func TestAggregator_WorkerCountDoesNotChangeResult(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sequential, err := newAggregator(1, logging.NewNop()).run(ctx, samplePlays())
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	pooled, err := newAggregator(6, logging.NewNop()).run(ctx, samplePlays())
	if err != nil {
		t.Fatalf("pooled: %v", err)
	}
	if !reflect.DeepEqual(sequential, pooled) {
		t.Fatalf("pooled aggregation differs from sequential")
	}
}
