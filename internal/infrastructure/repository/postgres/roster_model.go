package postgres

import (
	"database/sql"

	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
)

const rostersTable = "rosters"

type rosterTableModel struct {
	ID        int64          `db:"id"`
	PlayerID  string         `db:"gsis_id"`
	Season    int            `db:"season"`
	Week      int            `db:"week"`
	Team      sql.NullString `db:"team"`
	Position  sql.NullString `db:"position"`
	FullName  sql.NullString `db:"full_name"`
	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
}

var rosterColumns = []string{
	"gsis_id",
	"season",
	"week",
	"team",
	"position",
	"full_name",
	"first_name",
	"last_name",
}

func rosterValues(e roster.Entry) []any {
	return []any{
		e.PlayerID,
		e.Season,
		e.Week,
		toNullString(e.Team),
		toNullString(e.Position),
		toNullString(e.FullName),
		toNullString(e.FirstName),
		toNullString(e.LastName),
	}
}

func (m rosterTableModel) toDomain() roster.Entry {
	return roster.Entry{
		PlayerID:  m.PlayerID,
		Season:    m.Season,
		Week:      m.Week,
		Team:      m.Team.String,
		Position:  m.Position.String,
		FullName:  m.FullName.String,
		FirstName: m.FirstName.String,
		LastName:  m.LastName.String,
	}
}
