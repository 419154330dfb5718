package roster

// Constraint is one AND-ed term of a Filter.
type Constraint interface {
	Match(e Entry) bool
}

type TeamEquals struct{ Team string }

func (c TeamEquals) Match(e Entry) bool { return e.Team == c.Team }

type PlayerIDEquals struct{ PlayerID string }

func (c PlayerIDEquals) Match(e Entry) bool { return e.PlayerID == c.PlayerID }

// PlayerNameEquals matches full, last or first name.
type PlayerNameEquals struct{ PlayerName string }

func (c PlayerNameEquals) Match(e Entry) bool {
	if c.PlayerName == "" {
		return false
	}
	return e.FullName == c.PlayerName || e.LastName == c.PlayerName || e.FirstName == c.PlayerName
}

type PositionIn struct{ Position Position }

func (c PositionIn) Match(e Entry) bool { return c.Position.Accepts(e.Position) }

type WeekEquals struct{ Week int }

func (c WeekEquals) Match(e Entry) bool { return e.Week == c.Week }

// WeekBetween is inclusive on both ends.
type WeekBetween struct{ From, To int }

func (c WeekBetween) Match(e Entry) bool { return e.Week >= c.From && e.Week <= c.To }

// Filter selects roster entries. Unique keeps the first listing per player after
// all other constraints have been applied.
type Filter struct {
	constraints []Constraint
	unique      bool
}

func NewFilter() Filter {
	return Filter{}
}

func (f Filter) Team(team string) Filter {
	return f.with(TeamEquals{Team: team})
}

func (f Filter) PlayerID(playerID string) Filter {
	return f.with(PlayerIDEquals{PlayerID: playerID})
}

func (f Filter) PlayerName(name string) Filter {
	return f.with(PlayerNameEquals{PlayerName: name})
}

func (f Filter) Position(pos Position) Filter {
	return f.with(PositionIn{Position: pos})
}

func (f Filter) Week(week int) Filter {
	return f.with(WeekEquals{Week: week})
}

func (f Filter) WeekRange(from, to int) Filter {
	return f.with(WeekBetween{From: from, To: to})
}

// Where appends an arbitrary constraint.
func (f Filter) Where(c Constraint) Filter {
	return f.with(c)
}

func (f Filter) UniquePlayers() Filter {
	return Filter{constraints: f.Constraints(), unique: true}
}

func (f Filter) with(c Constraint) Filter {
	next := make([]Constraint, 0, len(f.constraints)+1)
	next = append(next, f.constraints...)
	next = append(next, c)
	return Filter{constraints: next, unique: f.unique}
}

func (f Filter) Constraints() []Constraint {
	return append([]Constraint(nil), f.constraints...)
}

func (f Filter) IsUnique() bool {
	return f.unique
}

func (f Filter) Match(e Entry) bool {
	for _, c := range f.constraints {
		if !c.Match(e) {
			return false
		}
	}
	return true
}

// Apply returns the matching entries in input order.
func (f Filter) Apply(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	seen := make(map[string]struct{})
	for _, e := range entries {
		if !f.Match(e) {
			continue
		}
		if f.unique {
			if _, ok := seen[e.PlayerID]; ok {
				continue
			}
			seen[e.PlayerID] = struct{}{}
		}
		out = append(out, e)
	}
	return out
}
