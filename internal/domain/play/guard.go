package play

import (
	"fmt"
	"sort"
	"strings"
)

// NotASingleGameError is returned when single-game scoring sees zero or several games.
type NotASingleGameError struct {
	GameIDs []string
}

func (e *NotASingleGameError) Error() string {
	if len(e.GameIDs) == 0 {
		return "expected single game, found none"
	}
	return fmt.Sprintf("expected single game, found multiple: %s", strings.Join(e.GameIDs, ", "))
}

// DistinctGameIDs returns the sorted distinct game ids present in records.
func DistinctGameIDs(records []Record) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 1)
	for _, r := range records {
		if _, ok := seen[r.GameID]; ok {
			continue
		}
		seen[r.GameID] = struct{}{}
		out = append(out, r.GameID)
	}
	sort.Strings(out)
	return out
}

// EnsureSingleGame returns the only game id in records or a *NotASingleGameError.
func EnsureSingleGame(records []Record) (string, error) {
	ids := DistinctGameIDs(records)
	if len(ids) != 1 {
		return "", &NotASingleGameError{GameIDs: ids}
	}
	return ids[0], nil
}
