package stats

type mergeConfig struct {
	withinGame bool
}

// MergeOption tunes Merge.
type MergeOption func(*mergeConfig)

// WithinGame joins on (team, player id, player name) only. Use it when the input
// plays are already restricted to a single game.
func WithinGame() MergeOption {
	return func(c *mergeConfig) { c.withinGame = true }
}

// Merge full-outer-joins category tables into one row per player per game.
// Tables are joined in the order given; each new key is appended after the keys
// already seen. Counters that appear in several tables (two point conversions)
// are summed. Counters a row never received stay absent and read as zero.
func Merge(tables []Table, opts ...MergeOption) []Row {
	var cfg mergeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	index := make(map[Key]int)
	out := make([]Row, 0)

	for _, table := range tables {
		for _, row := range table.Rows {
			key := row.Key
			if cfg.withinGame {
				key.GameID = ""
			}

			i, seen := index[key]
			if !seen {
				index[key] = len(out)
				out = append(out, row.clone())
				continue
			}
			out[i] = combine(out[i], row)
		}
	}

	return out
}

func combine(dst, src Row) Row {
	dst.GameID = coalesce(dst.GameID, src.GameID)
	dst.Team = coalesce(dst.Team, src.Team)
	dst.PlayerID = coalesce(dst.PlayerID, src.PlayerID)
	dst.PlayerName = coalesce(dst.PlayerName, src.PlayerName)
	if dst.Week == 0 {
		dst.Week = src.Week
	}

	for _, c := range src.Categories {
		if !dst.InCategory(c) {
			dst.Categories = append(dst.Categories, c)
		}
	}
	for col, v := range src.Values {
		dst.Values[col] += v
	}
	return dst
}

func coalesce(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
