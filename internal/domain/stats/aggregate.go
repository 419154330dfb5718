package stats

import "github.com/riskibarqy/fantasy-points/internal/domain/play"

// AggregateCategory groups plays by (game, team, player id, player name) and sums
// the category's counters. Groups keep the order in which they first appear.
func AggregateCategory(spec Spec, plays []play.Record) Table {
	index := make(map[Key]int)
	rows := make([]Row, 0)

	for _, p := range plays {
		if spec.Include != nil && !spec.Include(p) {
			continue
		}
		id, ok := spec.Identity(p)
		if !ok {
			continue
		}

		key := Key{GameID: p.GameID, Team: p.PosTeam, PlayerID: id.ID, PlayerName: id.Name}
		i, seen := index[key]
		if !seen {
			i = len(rows)
			index[key] = i
			values := make(map[Column]float64, len(spec.Aggregates))
			for _, agg := range spec.Aggregates {
				values[agg.Column] = 0
			}
			rows = append(rows, Row{
				Key:        key,
				Week:       p.Week,
				Categories: []Category{spec.Category},
				Values:     values,
			})
		}

		for _, agg := range spec.Aggregates {
			rows[i].Values[agg.Column] += agg.Value(p)
		}
	}

	return Table{Category: spec.Category, Rows: rows}
}

// AggregateAll runs every registered category sequentially, in merge order.
func AggregateAll(plays []play.Record) []Table {
	out := make([]Table, 0, len(Specs))
	for _, spec := range Specs {
		out = append(out, AggregateCategory(spec, plays))
	}
	return out
}
