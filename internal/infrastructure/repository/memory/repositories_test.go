package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
)

func TestPlayRepository_ListBySeason(t *testing.T) {
	t.Parallel()

	repo := NewPlayRepository(SeedPlays())
	ctx := context.Background()

	all, err := repo.ListBySeason(ctx, SeedSeason, play.NewFilter())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != len(SeedPlays()) {
		t.Fatalf("expected %d plays, got %d", len(SeedPlays()), len(all))
	}

	week2, err := repo.ListBySeason(ctx, SeedSeason, play.NewFilter().Week(2))
	if err != nil {
		t.Fatalf("list week 2: %v", err)
	}
	for _, r := range week2 {
		if r.Week != 2 {
			t.Fatalf("unexpected week %d in filtered result", r.Week)
		}
	}

	if _, err := repo.ListBySeason(ctx, 1999, play.NewFilter()); !errors.Is(err, play.ErrSeasonNotFound) {
		t.Fatalf("expected ErrSeasonNotFound, got %v", err)
	}
}

func TestPlayRepository_ReplaceSeason(t *testing.T) {
	t.Parallel()

	repo := NewPlayRepository(nil)
	ctx := context.Background()

	n, err := repo.ReplaceSeason(ctx, 2022, []play.Record{{GameID: "g1", Season: 1}})
	if err != nil || n != 1 {
		t.Fatalf("replace: n=%d err=%v", n, err)
	}
	got, err := repo.ListBySeason(ctx, 2022, play.NewFilter())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Season != 2022 {
		t.Fatalf("unexpected stored plays: %+v", got)
	}
}

func TestRosterRepository_ListBySeason(t *testing.T) {
	t.Parallel()

	repo := NewRosterRepository(SeedRosters())
	ctx := context.Background()

	flex, err := repo.ListBySeason(ctx, SeedSeason, roster.NewFilter().Position(roster.PositionFlex).UniquePlayers())
	if err != nil {
		t.Fatalf("list flex: %v", err)
	}
	if len(flex) != 4 {
		t.Fatalf("expected 4 unique flex players, got %d", len(flex))
	}

	if _, err := repo.ListBySeason(ctx, 1999, roster.NewFilter()); !errors.Is(err, roster.ErrSeasonNotFound) {
		t.Fatalf("expected ErrSeasonNotFound, got %v", err)
	}
}
