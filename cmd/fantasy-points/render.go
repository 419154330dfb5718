package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-points/internal/domain/stats"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

// renderText writes an aligned table. Counters a row never produced print as
// "-" so that a zero stays distinguishable from no plays.
func renderText(w io.Writer, result usecase.ScoreResult) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	switch result.Granularity {
	case scoring.GranularityPlayer:
		fmt.Fprintln(tw, "player_id\tplayer_name\tteam\tgames\tfantasy_points\t")
		for _, p := range result.Players {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t\n", p.PlayerID, p.PlayerName, p.Team, p.Games, formatPoints(p.FantasyPoints))
		}
	case scoring.GranularityGame:
		fmt.Fprintln(tw, "game_id\tweek\tteam\tplayers\tfantasy_points\t")
		for _, g := range result.Games {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\t\n", g.GameID, g.Week, g.Team, g.Players, formatPoints(g.FantasyPoints))
		}
	default:
		writeRowHeader(tw)
		for _, row := range result.Rows {
			writeRow(tw, row)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := w.Write(buf.B)
	return err
}

func writeRowHeader(w io.Writer) {
	fmt.Fprint(w, "game_id\tweek\tteam\tplayer_id\tplayer_name\tposition\t")
	for _, col := range stats.Columns {
		fmt.Fprintf(w, "%s\t", col)
	}
	fmt.Fprintln(w, "fantasy_points\t")
}

func writeRow(w io.Writer, row scoring.ScoreRow) {
	position := row.Position
	if position == "" {
		position = "-"
	}
	fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t", row.GameID, row.Week, row.Team, row.PlayerID, row.PlayerName, position)
	for _, col := range stats.Columns {
		if !row.Has(col) {
			fmt.Fprint(w, "-\t")
			continue
		}
		fmt.Fprintf(w, "%s\t", strconv.FormatFloat(row.Value(col), 'f', -1, 64))
	}
	fmt.Fprintf(w, "%s\t\n", formatPoints(row.FantasyPoints))
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

type jsonRow struct {
	GameID        string             `json:"game_id,omitempty"`
	Week          int                `json:"week,omitempty"`
	Team          string             `json:"team"`
	PlayerID      string             `json:"player_id,omitempty"`
	PlayerName    string             `json:"player_name,omitempty"`
	Position      string             `json:"position,omitempty"`
	FullName      string             `json:"full_name,omitempty"`
	Games         int                `json:"games,omitempty"`
	Players       int                `json:"players,omitempty"`
	Stats         map[string]float64 `json:"stats,omitempty"`
	FantasyPoints float64            `json:"fantasy_points"`
}

type jsonResult struct {
	Season      int       `json:"season"`
	GameID      string    `json:"game_id,omitempty"`
	Granularity string    `json:"granularity"`
	Rows        []jsonRow `json:"rows"`
}

func renderJSON(w io.Writer, result usecase.ScoreResult) error {
	out := jsonResult{
		Season:      result.Season,
		GameID:      result.GameID,
		Granularity: string(result.Granularity),
		Rows:        make([]jsonRow, 0, len(result.Rows)+len(result.Players)+len(result.Games)),
	}
	for _, p := range result.Players {
		out.Rows = append(out.Rows, jsonRow{PlayerID: p.PlayerID, PlayerName: p.PlayerName, Team: p.Team, Games: p.Games, FantasyPoints: p.FantasyPoints})
	}
	for _, g := range result.Games {
		out.Rows = append(out.Rows, jsonRow{GameID: g.GameID, Week: g.Week, Team: g.Team, Players: g.Players, FantasyPoints: g.FantasyPoints})
	}
	for _, row := range result.Rows {
		values := make(map[string]float64, len(row.Values))
		for _, col := range stats.Columns {
			if row.Has(col) {
				values[string(col)] = row.Value(col)
			}
		}
		out.Rows = append(out.Rows, jsonRow{
			GameID:        row.GameID,
			Week:          row.Week,
			Team:          row.Team,
			PlayerID:      row.PlayerID,
			PlayerName:    row.PlayerName,
			Position:      row.Position,
			FullName:      row.FullName,
			Stats:         values,
			FantasyPoints: row.FantasyPoints,
		})
	}

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
