package memory

import (
	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
)

// SeedSeason is the season served by the demo data set.
const SeedSeason = 2023

const (
	seedGameHome = "2023_01_DEN_KC"
	seedGameAway = "2023_01_KC_LV"
)

type seedPlayer struct {
	id, name, first, last, team, position string
}

var (
	seedQB  = seedPlayer{"00-0090001", "D.Arrow", "Dan", "Arrow", "KC", "QB"}
	seedWR  = seedPlayer{"00-0090002", "M.Hands", "Milo", "Hands", "KC", "WR"}
	seedRB  = seedPlayer{"00-0090003", "R.Burst", "Ray", "Burst", "KC", "RB"}
	seedK   = seedPlayer{"00-0090004", "L.Boot", "Leo", "Boot", "KC", "K"}
	seedDQB = seedPlayer{"00-0090005", "S.Pocket", "Sam", "Pocket", "DEN", "QB"}
	seedDTE = seedPlayer{"00-0090006", "T.Seam", "Tom", "Seam", "DEN", "TE"}
	seedDKR = seedPlayer{"00-0090007", "J.Jet", "Jay", "Jet", "DEN", "WR"}
)

// SeedPlays returns a small two game data set for local runs and handler tests.
func SeedPlays() []play.Record {
	return []play.Record{
		pass(seedGameHome, 1, seedQB, seedWR, 55, 1),
		pass(seedGameHome, 1, seedQB, seedWR, 12, 0),
		interception(seedGameHome, 1, seedQB),
		rush(seedGameHome, 1, seedRB, 34, 0),
		rush(seedGameHome, 1, seedRB, 3, 1),
		fieldGoal(seedGameHome, 1, seedK, 47),
		extraPoint(seedGameHome, 1, seedK),
		pass(seedGameHome, 1, seedDQB, seedDTE, 21, 1),
		kickoffReturnTD(seedGameHome, 1, seedDKR),
		pass(seedGameAway, 2, seedQB, seedWR, 8, 0),
		rush(seedGameAway, 2, seedRB, 61, 1),
		fieldGoal(seedGameAway, 2, seedK, 52),
	}
}

func SeedRosters() []roster.Entry {
	players := []seedPlayer{seedQB, seedWR, seedRB, seedK, seedDQB, seedDTE, seedDKR}
	out := make([]roster.Entry, 0, len(players)*2)
	for week := 1; week <= 2; week++ {
		for _, p := range players {
			out = append(out, roster.Entry{
				PlayerID:  p.id,
				Season:    SeedSeason,
				Week:      week,
				Team:      p.team,
				Position:  p.position,
				FullName:  p.first + " " + p.last,
				FirstName: p.first,
				LastName:  p.last,
			})
		}
	}
	return out
}

func base(gameID string, week int, team string) play.Record {
	return play.Record{GameID: gameID, Season: SeedSeason, Week: week, PosTeam: team}
}

func pass(gameID string, week int, passer, receiver seedPlayer, yards, td float64) play.Record {
	r := base(gameID, week, passer.team)
	r.PlayType = "pass"
	r.PassingYards = yards
	r.ReceivingYards = yards
	r.PassTouchdown = td
	r.CompletePass = 1
	r.SetPlayer(play.RolePasser, passer.id, passer.name)
	r.SetPlayer(play.RoleReceiver, receiver.id, receiver.name)
	return r
}

func interception(gameID string, week int, passer seedPlayer) play.Record {
	r := base(gameID, week, passer.team)
	r.PlayType = "pass"
	r.Interception = 1
	r.SetPlayer(play.RolePasser, passer.id, passer.name)
	return r
}

func rush(gameID string, week int, rusher seedPlayer, yards, td float64) play.Record {
	r := base(gameID, week, rusher.team)
	r.PlayType = "run"
	r.RushingYards = yards
	r.RushTouchdown = td
	r.SetPlayer(play.RoleRusher, rusher.id, rusher.name)
	return r
}

func fieldGoal(gameID string, week int, kicker seedPlayer, distance float64) play.Record {
	r := base(gameID, week, kicker.team)
	r.PlayType = "field_goal"
	r.FieldGoalResult = play.FieldGoalMade
	r.KickDistance = distance
	r.SetPlayer(play.RoleKicker, kicker.id, kicker.name)
	return r
}

func extraPoint(gameID string, week int, kicker seedPlayer) play.Record {
	r := base(gameID, week, kicker.team)
	r.PlayType = "extra_point"
	r.ExtraPointResult = play.ExtraPointGood
	r.SetPlayer(play.RoleKicker, kicker.id, kicker.name)
	return r
}

func kickoffReturnTD(gameID string, week int, returner seedPlayer) play.Record {
	r := base(gameID, week, "KC")
	r.PlayType = play.PlayTypeKickoff
	r.ReturnTouchdown = 1
	r.SetPlayer(play.RoleKickoffReturner, returner.id, returner.name)
	return r
}
