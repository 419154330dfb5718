package play

import (
	"errors"
	"reflect"
	"testing"
)

func samplePlays() []Record {
	var pass Record
	pass.GameID = "2023_01_DET_KC"
	pass.Week = 1
	pass.PosTeam = "KC"
	pass.SetPlayer(RolePasser, "00-0033873", "P.Mahomes")
	pass.SetPlayer(RoleReceiver, "00-0030506", "T.Kelce")

	var punt Record
	punt.GameID = "2023_01_DET_KC"
	punt.Week = 1
	punt.PosTeam = "DET"
	punt.SetPlayer(RolePuntReturner, "00-0036000", "K.Raymond")

	var rush Record
	rush.GameID = "2023_03_CHI_KC"
	rush.Week = 3
	rush.PosTeam = "KC"
	rush.SetPlayer(RoleRusher, "00-0036000", "I.Pacheco")

	return []Record{pass, punt, rush}
}

func TestFilter_EmptyMatchesEverything(t *testing.T) {
	t.Parallel()

	keep := NewFilter().Build()
	for i, r := range samplePlays() {
		if !keep(r) {
			t.Fatalf("expected row %d to match empty filter", i)
		}
	}
	var zero Record
	if !keep(zero) {
		t.Fatalf("expected zero record to match empty filter")
	}
}

func TestFilter_Constraints(t *testing.T) {
	t.Parallel()

	plays := samplePlays()
	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{name: "team", filter: NewFilter().Team("KC"), want: []int{0, 2}},
		{name: "game", filter: NewFilter().Game("2023_01_DET_KC"), want: []int{0, 1}},
		{name: "week", filter: NewFilter().Week(3), want: []int{2}},
		{name: "week range inclusive", filter: NewFilter().WeekRange(1, 3), want: []int{0, 1, 2}},
		{name: "week range excludes", filter: NewFilter().WeekRange(2, 3), want: []int{2}},
		{name: "player name across roles", filter: NewFilter().PlayerName("T.Kelce"), want: []int{0}},
		{name: "player id across returner roles", filter: NewFilter().PlayerID("00-0036000"), want: []int{1, 2}},
		{name: "and combination", filter: NewFilter().Team("KC").Week(1), want: []int{0}},
		{name: "empty player id never matches", filter: NewFilter().PlayerID(""), want: []int{}},
		{name: "no match", filter: NewFilter().Team("KC").Team("DET"), want: []int{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			keep := tc.filter.Build()
			got := make([]int, 0)
			for i, r := range plays {
				if keep(r) {
					got = append(got, i)
				}
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected matches: got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestFilter_BuilderDoesNotShareState(t *testing.T) {
	t.Parallel()

	base := NewFilter().Team("KC")
	week1 := base.Week(1)
	week3 := base.Week(3)

	if len(base.Constraints()) != 1 {
		t.Fatalf("base filter mutated: %d constraints", len(base.Constraints()))
	}
	if got := len(week1.Apply(samplePlays())); got != 1 {
		t.Fatalf("week1 matches: got=%d want=1", got)
	}
	if got := len(week3.Apply(samplePlays())); got != 1 {
		t.Fatalf("week3 matches: got=%d want=1", got)
	}
}

func TestRecord_CoalesceReturners(t *testing.T) {
	t.Parallel()

	var r Record
	r.SetPlayer(RolePuntReturner, "00-0036000", "K.Raymond")
	got := r.Coalesce(ReturnerRoles)
	if got.ID != "00-0036000" || got.Name != "K.Raymond" {
		t.Fatalf("unexpected identity: %+v", got)
	}

	r.SetPlayer(RoleLateralKickoffReturner, "00-0011111", "")
	got = r.Coalesce(ReturnerRoles)
	if got.ID != "00-0011111" || got.Name != "K.Raymond" {
		t.Fatalf("ids and names should coalesce independently: %+v", got)
	}
}

func TestRole_Columns(t *testing.T) {
	t.Parallel()

	if got := RoleFumbler.IDColumn(); got != "fumbled_1_player_id" {
		t.Fatalf("unexpected fumbler id column: %s", got)
	}
	if got := RoleLateralPuntReturner.NameColumn(); got != "lateral_punt_returner_player_name" {
		t.Fatalf("unexpected returner name column: %s", got)
	}
	if len(Roles) != int(roleCount) {
		t.Fatalf("role registry out of sync: %d roles, %d declared", len(Roles), roleCount)
	}
}

func TestEnsureSingleGame(t *testing.T) {
	t.Parallel()

	plays := samplePlays()

	gameID, err := EnsureSingleGame(plays[:2])
	if err != nil {
		t.Fatalf("expected single game, got %v", err)
	}
	if gameID != "2023_01_DET_KC" {
		t.Fatalf("unexpected game id: %s", gameID)
	}

	_, err = EnsureSingleGame(plays)
	var target *NotASingleGameError
	if !errors.As(err, &target) {
		t.Fatalf("expected NotASingleGameError, got %v", err)
	}
	want := []string{"2023_01_DET_KC", "2023_03_CHI_KC"}
	if !reflect.DeepEqual(target.GameIDs, want) {
		t.Fatalf("unexpected game ids: got=%v want=%v", target.GameIDs, want)
	}

	_, err = EnsureSingleGame(nil)
	if !errors.As(err, &target) || len(target.GameIDs) != 0 {
		t.Fatalf("expected empty NotASingleGameError, got %v", err)
	}
}
