package scoring

import "github.com/riskibarqy/fantasy-points/internal/domain/roster"

// RestrictToRoster keeps only rows whose player id is listed in entries and
// labels them with the roster position and full name. The first listing per
// player wins. Row order is preserved.
func RestrictToRoster(rows []ScoreRow, entries []roster.Entry) []ScoreRow {
	byID := make(map[string]roster.Entry, len(entries))
	for _, e := range entries {
		if _, ok := byID[e.PlayerID]; !ok {
			byID[e.PlayerID] = e
		}
	}

	out := make([]ScoreRow, 0, len(rows))
	for _, row := range rows {
		e, ok := byID[row.PlayerID]
		if !ok {
			continue
		}
		row.Position = e.Position
		row.FullName = e.FullName
		out = append(out, row)
	}
	return out
}
