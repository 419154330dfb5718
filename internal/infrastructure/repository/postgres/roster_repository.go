package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
	qb "github.com/riskibarqy/fantasy-points/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListBySeason(ctx context.Context, season int, filter roster.Filter) ([]roster.Entry, error) {
	conditions, residual := rosterConditions(filter)
	query, args, err := qb.Select("*").
		From(rostersTable).
		Where(append([]qb.Condition{qb.Eq("season", season)}, conditions...)...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rosters by season query: %w", err)
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("select rosters: table missing, run migrations: %w", err)
		}
		return nil, fmt.Errorf("select rosters by season: %w", err)
	}

	if len(rows) == 0 {
		exists, err := r.seasonExists(ctx, season)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("season %d: %w", season, roster.ErrSeasonNotFound)
		}
	}

	entries := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return residual.Apply(entries), nil
}

func (r *RosterRepository) seasonExists(ctx context.Context, season int) (bool, error) {
	query, args, err := qb.Select("1").From(rostersTable).Where(qb.Eq("season", season)).Limit(1).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build roster season exists query: %w", err)
	}

	var found []int
	if err := r.db.SelectContext(ctx, &found, query, args...); err != nil {
		return false, fmt.Errorf("check rosters season exists: %w", err)
	}
	return len(found) > 0, nil
}

func (r *RosterRepository) ReplaceSeason(ctx context.Context, season int, entries []roster.Entry) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx replace rosters season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom(rostersTable).Where(qb.Eq("season", season)).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete rosters season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return 0, fmt.Errorf("delete rosters season: %w", err)
	}

	size := batchSize(len(rosterColumns))
	for start := 0; start < len(entries); start += size {
		end := min(start+size, len(entries))
		insert := qb.InsertInto(rostersTable).Columns(rosterColumns...)
		for _, entry := range entries[start:end] {
			entry.Season = season
			insert.Values(rosterValues(entry)...)
		}
		query, args, err := insert.ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build insert rosters query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("insert rosters batch at %d: %w", start, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit replace rosters season tx: %w", err)
	}
	return len(entries), nil
}

// rosterConditions pushes the plain column terms into SQL. Uniqueness must run
// after every other term, so it always stays in the residual filter together
// with anything that has no SQL form.
func rosterConditions(filter roster.Filter) ([]qb.Condition, roster.Filter) {
	conditions := make([]qb.Condition, 0)
	residual := roster.NewFilter()
	if filter.IsUnique() {
		residual = residual.UniquePlayers()
	}

	for _, c := range filter.Constraints() {
		switch c := c.(type) {
		case roster.TeamEquals:
			conditions = append(conditions, qb.Eq("team", c.Team))
		case roster.PlayerIDEquals:
			conditions = append(conditions, qb.Eq("gsis_id", c.PlayerID))
		case roster.PlayerNameEquals:
			if c.PlayerName == "" {
				conditions = append(conditions, qb.Or())
				continue
			}
			conditions = append(conditions, qb.Or(
				qb.Eq("full_name", c.PlayerName),
				qb.Eq("last_name", c.PlayerName),
				qb.Eq("first_name", c.PlayerName),
			))
		case roster.PositionIn:
			positions := c.Position.Positions()
			values := make([]any, 0, len(positions))
			for _, p := range positions {
				values = append(values, string(p))
			}
			conditions = append(conditions, qb.In("position", values))
		case roster.WeekEquals:
			conditions = append(conditions, qb.Eq("week", c.Week))
		case roster.WeekBetween:
			conditions = append(conditions, qb.Between("week", c.From, c.To))
		default:
			residual = residual.Where(c)
		}
	}

	return conditions, residual
}
