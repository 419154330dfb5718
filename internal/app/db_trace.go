package app

import (
	"regexp"
	"strconv"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)

	// A season import binds thousands of play rows per statement. Only the
	// first tuple is worth keeping in a span.
	bulkValuesRegex = regexp.MustCompile(`(?i)\bVALUES (\([^()]*\))((?:, ?\([^()]*\))+)`)
)

func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	normalized = collapseBulkValues(normalized)
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}

// collapseBulkValues rewrites a multi-row VALUES list as its first tuple plus
// the number of rows that followed.
func collapseBulkValues(query string) string {
	return bulkValuesRegex.ReplaceAllStringFunc(query, func(match string) string {
		groups := bulkValuesRegex.FindStringSubmatch(match)
		more := strings.Count(groups[2], "(")
		return match[:len("VALUES ")] + groups[1] + " /* +" + strconv.Itoa(more) + " rows */"
	})
}
