package httpapi

import (
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-points/internal/domain/stats"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
)

type listDTO struct {
	Items      any `json:"items"`
	TotalItems int `json:"totalItems"`
}

type profileDTO struct {
	Name    string          `json:"name"`
	Profile scoring.Profile `json:"profile"`
}

type scoreRowDTO struct {
	GameID        string             `json:"game_id,omitempty"`
	Week          int                `json:"week"`
	Team          string             `json:"team"`
	PlayerID      string             `json:"player_id"`
	PlayerName    string             `json:"player_name"`
	Position      string             `json:"position,omitempty"`
	FullName      string             `json:"full_name,omitempty"`
	Categories    []string           `json:"categories"`
	Stats         map[string]float64 `json:"stats"`
	FantasyPoints float64            `json:"fantasy_points"`
}

type playerTotalDTO struct {
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	Team          string  `json:"team"`
	Games         int     `json:"games"`
	FantasyPoints float64 `json:"fantasy_points"`
}

type gameTotalDTO struct {
	GameID        string  `json:"game_id"`
	Week          int     `json:"week"`
	Team          string  `json:"team"`
	Players       int     `json:"players"`
	FantasyPoints float64 `json:"fantasy_points"`
}

type scoreResultDTO struct {
	Season      int    `json:"season"`
	GameID      string `json:"game_id,omitempty"`
	Granularity string `json:"granularity"`
	Items       any    `json:"items"`
	TotalItems  int    `json:"totalItems"`
}

func toScoreResultDTO(result usecase.ScoreResult) scoreResultDTO {
	out := scoreResultDTO{
		Season:      result.Season,
		GameID:      result.GameID,
		Granularity: string(result.Granularity),
	}

	switch result.Granularity {
	case scoring.GranularityPlayer:
		items := make([]playerTotalDTO, 0, len(result.Players))
		for _, p := range result.Players {
			items = append(items, playerTotalDTO(p))
		}
		out.Items, out.TotalItems = items, len(items)
	case scoring.GranularityGame:
		items := make([]gameTotalDTO, 0, len(result.Games))
		for _, g := range result.Games {
			items = append(items, gameTotalDTO(g))
		}
		out.Items, out.TotalItems = items, len(items)
	default:
		items := make([]scoreRowDTO, 0, len(result.Rows))
		for _, row := range result.Rows {
			items = append(items, toScoreRowDTO(row))
		}
		out.Items, out.TotalItems = items, len(items)
	}
	return out
}

// toScoreRowDTO reports only the counters some category produced for the row;
// a missing key means the player had no plays in that category.
func toScoreRowDTO(row scoring.ScoreRow) scoreRowDTO {
	values := make(map[string]float64, len(row.Values))
	for _, col := range stats.Columns {
		if row.Has(col) {
			values[string(col)] = row.Value(col)
		}
	}
	categories := make([]string, 0, len(row.Categories))
	for _, c := range row.Categories {
		categories = append(categories, string(c))
	}

	return scoreRowDTO{
		GameID:        row.GameID,
		Week:          row.Week,
		Team:          row.Team,
		PlayerID:      row.PlayerID,
		PlayerName:    row.PlayerName,
		Position:      row.Position,
		FullName:      row.FullName,
		Categories:    categories,
		Stats:         values,
		FantasyPoints: row.FantasyPoints,
	}
}
