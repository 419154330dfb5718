package scoring

import (
	"sort"

	"github.com/riskibarqy/fantasy-points/internal/domain/stats"
)

// ScoreRow is a merged stat line with its fantasy points. Position and FullName
// are set only when the rows were restricted to a roster.
type ScoreRow struct {
	stats.Row
	FantasyPoints float64
	Position      string
	FullName      string
}

// Points applies the profile to one stat line. Absent counters count as zero.
// Yardage bonuses need strictly more than the threshold.
func Points(row stats.Row, p Profile) float64 {
	passingYards := row.Value(stats.PassingYards)
	rushingYards := row.Value(stats.RushingYards)
	receivingYards := row.Value(stats.ReceivingYards)

	points := passingYards/p.PassingYdPerPoint +
		row.Value(stats.PassTouchdowns)*p.PassingTDPoints +
		rushingYards/p.RushingYdPerPoint +
		row.Value(stats.RushTouchdowns)*p.RushingTDPoints +
		row.Value(stats.Receptions)*p.ReceptionPoints +
		receivingYards/p.ReceivingYdPerPoint +
		row.Value(stats.ReceivingTDs)*p.ReceivingTDPoints +
		row.Value(stats.Interceptions)*p.InterceptionPoints +
		row.Value(stats.FumblesLost)*p.FumbleLostPoints +
		row.Value(stats.FGMade)*p.FGMadePoints +
		row.Value(stats.PATMade)*p.PATMadePoints +
		row.Value(stats.TDReturns)*p.ReturnTDPoints +
		row.Value(stats.TwoPointConvMade)*p.TwoPointConversionPoints

	points += row.Value(stats.Passing50YardTD) * p.PassingTD50YdBonus
	points += above(passingYards, 300, p.Passing300YdBonus)
	points += above(passingYards, 400, p.Passing400YdBonus)

	points += row.Value(stats.Rushing50YardTD) * p.RushingTD50YdBonus
	points += above(rushingYards, 100, p.Rushing100YdBonus)
	points += above(rushingYards, 200, p.Rushing200YdBonus)

	points += row.Value(stats.Receiving50YardTD) * p.ReceivingTD50YdBonus
	points += above(receivingYards, 100, p.Receiving100YdBonus)
	points += above(receivingYards, 200, p.Receiving200YdBonus)

	points += row.Value(stats.FG40PlusMade) * p.FGMade40YdBonus
	points += row.Value(stats.FG50PlusMade) * p.FGMade50YdBonus

	return points
}

func above(yards, threshold, bonus float64) float64 {
	if yards > threshold {
		return bonus
	}
	return 0
}

// Score computes fantasy points for every row and sorts by points descending.
// Ties keep their merge order.
func Score(rows []stats.Row, p Profile) []ScoreRow {
	out := make([]ScoreRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, ScoreRow{Row: row, FantasyPoints: Points(row, p)})
	}
	SortByPoints(out)
	return out
}

func SortByPoints(rows []ScoreRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].FantasyPoints > rows[j].FantasyPoints
	})
}
