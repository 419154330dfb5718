package stats

import (
	"testing"

	"github.com/riskibarqy/fantasy-points/internal/domain/play"
)

const gameID = "2023_01_DET_KC"

func newPlay(mutate func(*play.Record)) play.Record {
	r := play.Record{GameID: gameID, Season: 2023, Week: 1, PosTeam: "KC", PlayType: "pass"}
	mutate(&r)
	return r
}

func mustSpec(t *testing.T, c Category) Spec {
	t.Helper()
	spec, ok := SpecFor(c)
	if !ok {
		t.Fatalf("spec %s not registered", c)
	}
	return spec
}

func TestAggregateCategory_PassingSumsPerPlayer(t *testing.T) {
	t.Parallel()

	plays := []play.Record{
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RolePasser, "QB1", "P.Mahomes")
			r.PassingYards = 51
			r.PassTouchdown = 1
		}),
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RolePasser, "QB1", "P.Mahomes")
			r.PassingYards = 50
			r.PassTouchdown = 1
		}),
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RolePasser, "QB1", "P.Mahomes")
			r.Interception = 1
		}),
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RoleRusher, "RB1", "I.Pacheco")
			r.RushingYards = 7
		}),
	}

	table := AggregateCategory(mustSpec(t, CategoryPassing), plays)
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 passer row, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	if row.PlayerID != "QB1" || row.Team != "KC" || row.GameID != gameID || row.Week != 1 {
		t.Fatalf("unexpected key: %+v week=%d", row.Key, row.Week)
	}
	if got := row.Value(PassingYards); got != 101 {
		t.Fatalf("passing yards: got=%v want=101", got)
	}
	if got := row.Value(PassTouchdowns); got != 2 {
		t.Fatalf("pass touchdowns: got=%v want=2", got)
	}
	if got := row.Value(Interceptions); got != 1 {
		t.Fatalf("interceptions: got=%v want=1", got)
	}
	if got := row.Value(Passing50YardTD); got != 1 {
		t.Fatalf("50+ yard touchdowns must be strict: got=%v want=1", got)
	}
}

func TestAggregateCategory_GroupsByTeamAndGame(t *testing.T) {
	t.Parallel()

	plays := []play.Record{
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RoleRusher, "RB1", "I.Pacheco")
			r.RushingYards = 10
		}),
		newPlay(func(r *play.Record) {
			r.GameID = "2023_02_KC_JAX"
			r.Week = 2
			r.SetPlayer(play.RoleRusher, "RB1", "I.Pacheco")
			r.RushingYards = 4
		}),
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RoleRusher, "RB1", "I.Pacheco")
			r.RushingYards = 3
			r.RushTouchdown = 1
		}),
	}

	table := AggregateCategory(mustSpec(t, CategoryRushing), plays)
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].GameID != gameID || table.Rows[0].Value(RushingYards) != 13 {
		t.Fatalf("unexpected first row: %+v", table.Rows[0])
	}
	if table.Rows[1].Week != 2 || table.Rows[1].Value(RushingYards) != 4 {
		t.Fatalf("unexpected second row: %+v", table.Rows[1])
	}
	if table.Rows[0].Value(Rushing50YardTD) != 0 {
		t.Fatalf("short touchdown counted as 50+")
	}
}

func TestAggregateCategory_ReceivingTwoPoint(t *testing.T) {
	t.Parallel()

	plays := []play.Record{
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RoleReceiver, "WR1", "R.Rice")
			r.CompletePass = 1
			r.ReceivingYards = 60
			r.PassTouchdown = 1
		}),
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RoleReceiver, "WR1", "R.Rice")
			r.TwoPointConvResult = play.TwoPointConvSuccess
		}),
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RoleReceiver, "WR1", "R.Rice")
			r.TwoPointConvResult = "failure"
		}),
	}

	row := AggregateCategory(mustSpec(t, CategoryReceiving), plays).Rows[0]
	if row.Value(Receptions) != 1 || row.Value(ReceivingYards) != 60 || row.Value(ReceivingTDs) != 1 {
		t.Fatalf("unexpected receiving counters: %+v", row.Values)
	}
	if row.Value(TwoPointConvMade) != 1 {
		t.Fatalf("two point conversions: got=%v want=1", row.Value(TwoPointConvMade))
	}
	if row.Value(Receiving50YardTD) != 1 {
		t.Fatalf("expected 60 yard touchdown counted as 50+")
	}
}

func TestAggregateCategory_KickingThresholds(t *testing.T) {
	t.Parallel()

	kick := func(playType, result string, distance float64) play.Record {
		return newPlay(func(r *play.Record) {
			r.PlayType = playType
			r.SetPlayer(play.RoleKicker, "K1", "H.Butker")
			r.FieldGoalResult = result
			r.KickDistance = distance
		})
	}
	plays := []play.Record{
		kick("field_goal", play.FieldGoalMade, 39),
		kick("field_goal", play.FieldGoalMade, 40),
		kick("field_goal", play.FieldGoalMade, 50),
		kick("field_goal", "missed", 55),
		kick(play.PlayTypeKickoff, "", 65),
		kick("", play.FieldGoalMade, 45),
		newPlay(func(r *play.Record) {
			r.PlayType = "extra_point"
			r.SetPlayer(play.RoleKicker, "K1", "H.Butker")
			r.ExtraPointResult = play.ExtraPointGood
		}),
	}

	table := AggregateCategory(mustSpec(t, CategoryKicking), plays)
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 kicker row, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	tests := []struct {
		col  Column
		want float64
	}{
		{col: FGMade, want: 3},
		{col: FG40PlusMade, want: 2},
		{col: FG50PlusMade, want: 1},
		{col: PATMade, want: 1},
	}
	for _, tc := range tests {
		if got := row.Value(tc.col); got != tc.want {
			t.Fatalf("%s: got=%v want=%v", tc.col, got, tc.want)
		}
	}
}

func TestAggregateCategory_KickoffOnlyKickerHasNoRow(t *testing.T) {
	t.Parallel()

	plays := []play.Record{
		newPlay(func(r *play.Record) {
			r.PlayType = play.PlayTypeKickoff
			r.SetPlayer(play.RoleKicker, "K1", "H.Butker")
		}),
	}
	if rows := AggregateCategory(mustSpec(t, CategoryKicking), plays).Rows; len(rows) != 0 {
		t.Fatalf("expected no kicker rows, got %d", len(rows))
	}
}

func TestAggregateCategory_ReturningCoalescesRoles(t *testing.T) {
	t.Parallel()

	plays := []play.Record{
		newPlay(func(r *play.Record) {
			r.PlayType = "punt"
			r.PosTeam = "DET"
			r.ReturnTouchdown = 1
			r.SetPlayer(play.RolePuntReturner, "PR1", "K.Raymond")
		}),
		newPlay(func(r *play.Record) {
			r.PlayType = "kickoff"
			r.PosTeam = "DET"
			r.ReturnTouchdown = 0
			r.SetPlayer(play.RoleKickoffReturner, "PR1", "K.Raymond")
		}),
		newPlay(func(r *play.Record) {
			r.PlayType = "punt"
			r.ReturnTouchdown = 1
		}),
	}

	table := AggregateCategory(mustSpec(t, CategoryReturning), plays)
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 returner row, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	if row.PlayerID != "PR1" || row.PlayerName != "K.Raymond" || row.Team != "DET" {
		t.Fatalf("unexpected returner key: %+v", row.Key)
	}
	if row.Value(TDReturns) != 1 {
		t.Fatalf("td returns: got=%v want=1", row.Value(TDReturns))
	}
}

func TestAggregateCategory_SkipsMissingPrimaryName(t *testing.T) {
	t.Parallel()

	plays := []play.Record{
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RoleFumbler, "F1", "")
			r.FumbleLost = 1
		}),
	}
	if rows := AggregateCategory(mustSpec(t, CategoryFumbling), plays).Rows; len(rows) != 0 {
		t.Fatalf("expected rows without player name to be skipped, got %d", len(rows))
	}
}

func TestMerge_FullOuterJoin(t *testing.T) {
	t.Parallel()

	plays := []play.Record{
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RolePasser, "QB1", "P.Mahomes")
			r.SetPlayer(play.RoleReceiver, "TE1", "T.Kelce")
			r.PassingYards = 20
			r.ReceivingYards = 20
			r.CompletePass = 1
		}),
		newPlay(func(r *play.Record) {
			r.PlayType = "run"
			r.SetPlayer(play.RoleRusher, "QB1", "P.Mahomes")
			r.RushingYards = 8
		}),
		newPlay(func(r *play.Record) {
			r.PlayType = "run"
			r.SetPlayer(play.RoleRusher, "QB1", "P.Mahomes")
			r.TwoPointConvResult = play.TwoPointConvSuccess
		}),
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RoleReceiver, "QB1", "P.Mahomes")
			r.TwoPointConvResult = play.TwoPointConvSuccess
		}),
	}

	rows := Merge(AggregateAll(plays))
	if len(rows) != 2 {
		t.Fatalf("expected 2 merged rows, got %d", len(rows))
	}

	qb := rows[0]
	if qb.PlayerID != "QB1" {
		t.Fatalf("expected passer first, got %+v", qb.Key)
	}
	if qb.Value(PassingYards) != 20 || qb.Value(RushingYards) != 8 {
		t.Fatalf("unexpected qb counters: %+v", qb.Values)
	}
	if qb.Value(TwoPointConvMade) != 2 {
		t.Fatalf("two point conversions from receiving and rushing must add: got=%v", qb.Value(TwoPointConvMade))
	}
	if !qb.InCategory(CategoryPassing) || !qb.InCategory(CategoryRushing) || !qb.InCategory(CategoryReceiving) {
		t.Fatalf("unexpected categories: %v", qb.Categories)
	}

	te := rows[1]
	if te.Has(PassingYards) || te.Value(PassingYards) != 0 {
		t.Fatalf("receiver should have no passing counters: %+v", te.Values)
	}
	if te.Value(ReceivingYards) != 20 || te.Value(Receptions) != 1 {
		t.Fatalf("unexpected receiver counters: %+v", te.Values)
	}
}

func TestMerge_WithinGameCoalescesGameID(t *testing.T) {
	t.Parallel()

	tables := []Table{
		{Category: CategoryPassing, Rows: []Row{{
			Key:        Key{GameID: gameID, Team: "KC", PlayerID: "QB1", PlayerName: "P.Mahomes"},
			Week:       1,
			Categories: []Category{CategoryPassing},
			Values:     map[Column]float64{PassingYards: 10},
		}}},
		{Category: CategoryRushing, Rows: []Row{{
			Key:        Key{Team: "KC", PlayerID: "QB1", PlayerName: "P.Mahomes"},
			Categories: []Category{CategoryRushing},
			Values:     map[Column]float64{RushingYards: 5},
		}}},
	}

	if rows := Merge(tables); len(rows) != 2 {
		t.Fatalf("expected game id to split rows without WithinGame, got %d", len(rows))
	}

	rows := Merge(tables, WithinGame())
	if len(rows) != 1 {
		t.Fatalf("expected 1 row within game, got %d", len(rows))
	}
	if rows[0].GameID != gameID || rows[0].Week != 1 {
		t.Fatalf("game id and week should coalesce: %+v", rows[0])
	}
	if rows[0].Value(RushingYards) != 5 || rows[0].Value(PassingYards) != 10 {
		t.Fatalf("unexpected counters: %+v", rows[0].Values)
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	plays := []play.Record{
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RoleReceiver, "WR1", "R.Rice")
			r.TwoPointConvResult = play.TwoPointConvSuccess
		}),
		newPlay(func(r *play.Record) {
			r.SetPlayer(play.RoleRusher, "WR1", "R.Rice")
			r.TwoPointConvResult = play.TwoPointConvSuccess
		}),
	}
	tables := AggregateAll(plays)
	_ = Merge(tables)

	receiving := tables[1]
	if receiving.Category != CategoryReceiving {
		t.Fatalf("unexpected table order: %s", receiving.Category)
	}
	if got := receiving.Rows[0].Value(TwoPointConvMade); got != 1 {
		t.Fatalf("category table mutated by merge: got=%v want=1", got)
	}
}
