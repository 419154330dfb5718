package roster

import (
	"fmt"
	"strings"
)

// Position represents the roster positions used for fantasy eligibility.
type Position string

const (
	PositionQuarterback  Position = "QB"
	PositionRunningBack  Position = "RB"
	PositionWideReceiver Position = "WR"
	PositionTightEnd     Position = "TE"
	PositionKicker       Position = "K"
	// PositionFlex is a selection slot, never a stored roster value.
	PositionFlex Position = "FLEX"
)

var AllPositions = map[Position]struct{}{
	PositionQuarterback:  {},
	PositionRunningBack:  {},
	PositionWideReceiver: {},
	PositionTightEnd:     {},
	PositionKicker:       {},
	PositionFlex:         {},
}

var flexPositions = []Position{PositionWideReceiver, PositionTightEnd, PositionRunningBack}

// ParsePosition accepts any letter case.
func ParsePosition(raw string) (Position, error) {
	pos := Position(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := AllPositions[pos]; !ok {
		return "", fmt.Errorf("invalid position: %q", raw)
	}
	return pos, nil
}

// Accepts reports whether a player listed at actual fills slot p.
func (p Position) Accepts(actual string) bool {
	actual = strings.ToUpper(actual)
	if p != PositionFlex {
		return actual == string(p)
	}
	for _, pos := range flexPositions {
		if actual == string(pos) {
			return true
		}
	}
	return false
}

// Positions expands p into the stored positions it accepts.
func (p Position) Positions() []Position {
	if p == PositionFlex {
		return append([]Position(nil), flexPositions...)
	}
	return []Position{p}
}

// Entry is one weekly roster listing for a player.
type Entry struct {
	PlayerID  string
	Season    int
	Week      int
	Team      string
	Position  string
	FullName  string
	FirstName string
	LastName  string
}

func (e Entry) Validate() error {
	if e.PlayerID == "" {
		return fmt.Errorf("roster player id is required")
	}
	if e.Season <= 0 {
		return fmt.Errorf("roster season must be greater than zero")
	}
	return nil
}
