package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// maxBindParams is the postgres limit on parameters in one statement.
const maxBindParams = 65535

const undefinedTableCode = "42P01"

func toNullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// isUndefinedTable reports a query against a table the migrations have not created.
func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == undefinedTableCode
	}
	return false
}

// batchSize returns how many rows of width columns fit in a single INSERT.
func batchSize(width int) int {
	if width <= 0 {
		return 1
	}
	n := maxBindParams / width
	if n < 1 {
		return 1
	}
	return n
}
