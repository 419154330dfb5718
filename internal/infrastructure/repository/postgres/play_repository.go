package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	qb "github.com/riskibarqy/fantasy-points/internal/platform/querybuilder"
)

type PlayRepository struct {
	db *sqlx.DB
}

func NewPlayRepository(db *sqlx.DB) *PlayRepository {
	return &PlayRepository{db: db}
}

func (r *PlayRepository) ListBySeason(ctx context.Context, season int, filter play.Filter) ([]play.Record, error) {
	conditions, residual := playConditions(filter)
	query, args, err := qb.Select("*").
		From(playsTable).
		Where(append([]qb.Condition{qb.Eq("season", season)}, conditions...)...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select plays by season query: %w", err)
	}

	var rows []playTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("select plays: table missing, run migrations: %w", err)
		}
		return nil, fmt.Errorf("select plays by season: %w", err)
	}

	if len(rows) == 0 {
		exists, err := r.seasonExists(ctx, season)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("season %d: %w", season, play.ErrSeasonNotFound)
		}
	}

	out := make([]play.Record, 0, len(rows))
	for _, row := range rows {
		record := row.toDomain()
		if matchesAll(residual, record) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *PlayRepository) seasonExists(ctx context.Context, season int) (bool, error) {
	query, args, err := qb.Select("1").From(playsTable).Where(qb.Eq("season", season)).Limit(1).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build season exists query: %w", err)
	}

	var found []int
	if err := r.db.SelectContext(ctx, &found, query, args...); err != nil {
		return false, fmt.Errorf("check plays season exists: %w", err)
	}
	return len(found) > 0, nil
}

// ReplaceSeason deletes every stored play of season and inserts records in one
// transaction. Records are stored under season regardless of their own field.
func (r *PlayRepository) ReplaceSeason(ctx context.Context, season int, records []play.Record) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx replace plays season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom(playsTable).Where(qb.Eq("season", season)).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete plays season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return 0, fmt.Errorf("delete plays season: %w", err)
	}

	columns := playColumns()
	size := batchSize(len(columns))
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))
		insert := qb.InsertInto(playsTable).Columns(columns...)
		for _, record := range records[start:end] {
			record.Season = season
			insert.Values(playValues(record)...)
		}
		query, args, err := insert.ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build insert plays query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("insert plays batch at %d: %w", start, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit replace plays season tx: %w", err)
	}
	return len(records), nil
}

// playConditions translates filter terms into SQL. Terms without a SQL form are
// returned as residual constraints to be applied after loading.
func playConditions(filter play.Filter) ([]qb.Condition, []play.Constraint) {
	conditions := make([]qb.Condition, 0)
	var residual []play.Constraint

	for _, c := range filter.Constraints() {
		switch c := c.(type) {
		case play.TeamEquals:
			conditions = append(conditions, qb.Eq("posteam", c.Team))
		case play.GameEquals:
			conditions = append(conditions, qb.Eq("game_id", c.GameID))
		case play.WeekEquals:
			conditions = append(conditions, qb.Eq("week", c.Week))
		case play.WeekBetween:
			conditions = append(conditions, qb.Between("week", c.From, c.To))
		case play.PlayerIDEquals:
			conditions = append(conditions, anyRole(c.PlayerID, play.Role.IDColumn))
		case play.PlayerNameEquals:
			conditions = append(conditions, anyRole(c.PlayerName, play.Role.NameColumn))
		default:
			residual = append(residual, c)
		}
	}

	return conditions, residual
}

func matchesAll(constraints []play.Constraint, record play.Record) bool {
	for _, c := range constraints {
		if !c.Match(record) {
			return false
		}
	}
	return true
}

func anyRole(value string, column func(play.Role) string) qb.Condition {
	if value == "" {
		return qb.Or()
	}
	terms := make([]qb.Condition, 0, len(play.Roles))
	for _, role := range play.Roles {
		terms = append(terms, qb.Eq(column(role), value))
	}
	return qb.Or(terms...)
}
