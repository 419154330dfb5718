package stats

// Category names one aggregation pass over the play table.
type Category string

const (
	CategoryPassing   Category = "passing"
	CategoryReceiving Category = "receiving"
	CategoryRushing   Category = "rushing"
	CategoryFumbling  Category = "fumbling"
	CategoryKicking   Category = "kicking"
	CategoryReturning Category = "returning"
)

// Column is a summed counter produced by a category.
type Column string

const (
	PassingYards    Column = "passing_yards"
	PassTouchdowns  Column = "pass_touchdowns"
	Interceptions   Column = "interceptions"
	Passing50YardTD Column = "passing_50yd_td"

	Receptions        Column = "receptions"
	ReceivingYards    Column = "receiving_yards"
	ReceivingTDs      Column = "receiving_touchdowns"
	TwoPointConvMade  Column = "two_pt_conv_made"
	Receiving50YardTD Column = "receiving_50yd_td"

	RushingYards    Column = "rushing_yards"
	RushTouchdowns  Column = "rush_touchdowns"
	Rushing50YardTD Column = "rushing_50yd_td"

	FumblesLost Column = "fumbles_lost"

	PATMade      Column = "pat_made"
	FGMade       Column = "fg_made"
	FG40PlusMade Column = "fg_40plus_made"
	FG50PlusMade Column = "fg_50plus_made"

	TDReturns Column = "td_returns"
)

// Columns lists every counter in output order.
var Columns = []Column{
	PassingYards, PassTouchdowns, Interceptions, Passing50YardTD,
	Receptions, ReceivingYards, ReceivingTDs, TwoPointConvMade, Receiving50YardTD,
	RushingYards, RushTouchdowns, Rushing50YardTD,
	FumblesLost,
	PATMade, FGMade, FG40PlusMade, FG50PlusMade,
	TDReturns,
}

// Key identifies one player in one game for one team.
type Key struct {
	GameID     string
	Team       string
	PlayerID   string
	PlayerName string
}

// Row is a per-player-per-game stat line. A category table row carries only that
// category's counters; a merged row carries the union.
type Row struct {
	Key
	Week       int
	Categories []Category
	Values     map[Column]float64
}

// Value returns the counter, treating an absent counter as zero.
func (r Row) Value(c Column) float64 {
	return r.Values[c]
}

// Has reports whether the counter was produced by some category for this row.
func (r Row) Has(c Column) bool {
	_, ok := r.Values[c]
	return ok
}

func (r Row) InCategory(c Category) bool {
	for _, item := range r.Categories {
		if item == c {
			return true
		}
	}
	return false
}

func (r Row) clone() Row {
	values := make(map[Column]float64, len(r.Values))
	for k, v := range r.Values {
		values[k] = v
	}
	return Row{
		Key:        r.Key,
		Week:       r.Week,
		Categories: append([]Category(nil), r.Categories...),
		Values:     values,
	}
}

// Table is the output of one category aggregation.
type Table struct {
	Category Category
	Rows     []Row
}
