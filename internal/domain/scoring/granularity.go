package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Granularity selects how scored rows are regrouped for reporting.
type Granularity string

const (
	GranularityPlayerGame Granularity = "player-game"
	GranularityPlayer     Granularity = "player"
	GranularityGame       Granularity = "game"
)

var ErrUnknownGranularity = errors.New("unknown granularity")

func ParseGranularity(raw string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(raw))); g {
	case "":
		return GranularityPlayerGame, nil
	case GranularityPlayerGame, GranularityPlayer, GranularityGame:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGranularity, raw)
	}
}

// PlayerTotal is the season or selection total for one player.
type PlayerTotal struct {
	PlayerID      string
	PlayerName    string
	Team          string
	Games         int
	FantasyPoints float64
}

// GameTotal is the sum of every scored player in one game.
type GameTotal struct {
	GameID        string
	Week          int
	Team          string
	Players       int
	FantasyPoints float64
}

// ByPlayer groups by player id. Team and name come from the first row seen, so
// pass rows in scored order to label a player by their best game.
func ByPlayer(rows []ScoreRow) []PlayerTotal {
	index := make(map[string]int)
	games := make([]map[string]struct{}, 0)
	out := make([]PlayerTotal, 0)

	for _, row := range rows {
		i, ok := index[row.PlayerID]
		if !ok {
			i = len(out)
			index[row.PlayerID] = i
			out = append(out, PlayerTotal{PlayerID: row.PlayerID, PlayerName: row.PlayerName, Team: row.Team})
			games = append(games, make(map[string]struct{}))
		}
		out[i].FantasyPoints += row.FantasyPoints
		games[i][row.GameID] = struct{}{}
	}

	for i := range out {
		out[i].Games = len(games[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FantasyPoints > out[j].FantasyPoints
	})
	return out
}

// ByGame groups by game id. Week and team come from the first row seen.
func ByGame(rows []ScoreRow) []GameTotal {
	index := make(map[string]int)
	out := make([]GameTotal, 0)

	for _, row := range rows {
		i, ok := index[row.GameID]
		if !ok {
			i = len(out)
			index[row.GameID] = i
			out = append(out, GameTotal{GameID: row.GameID, Week: row.Week, Team: row.Team})
		}
		out[i].FantasyPoints += row.FantasyPoints
		out[i].Players++
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FantasyPoints > out[j].FantasyPoints
	})
	return out
}
