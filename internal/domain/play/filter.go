package play

// Predicate reports whether a play should be kept.
type Predicate func(Record) bool

// Constraint is one AND-ed term of a Filter. The concrete types are exported so
// storage adapters can translate a filter into their own query language.
type Constraint interface {
	Match(r Record) bool
}

type TeamEquals struct{ Team string }

func (c TeamEquals) Match(r Record) bool { return r.PosTeam == c.Team }

type GameEquals struct{ GameID string }

func (c GameEquals) Match(r Record) bool { return r.GameID == c.GameID }

type WeekEquals struct{ Week int }

func (c WeekEquals) Match(r Record) bool { return r.Week == c.Week }

// WeekBetween is inclusive on both ends.
type WeekBetween struct{ From, To int }

func (c WeekBetween) Match(r Record) bool { return r.Week >= c.From && r.Week <= c.To }

// PlayerIDEquals matches when any role column carries the id. Null columns never match.
type PlayerIDEquals struct{ PlayerID string }

func (c PlayerIDEquals) Match(r Record) bool {
	if c.PlayerID == "" {
		return false
	}
	for _, role := range Roles {
		if r.Player(role).ID == c.PlayerID {
			return true
		}
	}
	return false
}

// PlayerNameEquals matches when any role column carries the name.
type PlayerNameEquals struct{ PlayerName string }

func (c PlayerNameEquals) Match(r Record) bool {
	if c.PlayerName == "" {
		return false
	}
	for _, role := range Roles {
		if r.Player(role).Name == c.PlayerName {
			return true
		}
	}
	return false
}

// Filter accumulates constraints combined with AND.
type Filter struct {
	constraints []Constraint
}

func NewFilter() Filter {
	return Filter{}
}

func (f Filter) Team(team string) Filter {
	return f.with(TeamEquals{Team: team})
}

func (f Filter) Game(gameID string) Filter {
	return f.with(GameEquals{GameID: gameID})
}

func (f Filter) Week(week int) Filter {
	return f.with(WeekEquals{Week: week})
}

func (f Filter) WeekRange(from, to int) Filter {
	return f.with(WeekBetween{From: from, To: to})
}

func (f Filter) PlayerID(playerID string) Filter {
	return f.with(PlayerIDEquals{PlayerID: playerID})
}

func (f Filter) PlayerName(playerName string) Filter {
	return f.with(PlayerNameEquals{PlayerName: playerName})
}

func (f Filter) with(c Constraint) Filter {
	next := make([]Constraint, 0, len(f.constraints)+1)
	next = append(next, f.constraints...)
	next = append(next, c)
	return Filter{constraints: next}
}

// Constraints returns a copy of the accumulated terms.
func (f Filter) Constraints() []Constraint {
	return append([]Constraint(nil), f.constraints...)
}

func (f Filter) IsEmpty() bool {
	return len(f.constraints) == 0
}

// Build returns the combined predicate. An empty filter matches every play.
func (f Filter) Build() Predicate {
	constraints := f.Constraints()
	if len(constraints) == 0 {
		return func(Record) bool { return true }
	}
	return func(r Record) bool {
		for _, c := range constraints {
			if !c.Match(r) {
				return false
			}
		}
		return true
	}
}

// Apply returns the plays matching the filter, preserving input order.
func (f Filter) Apply(records []Record) []Record {
	if f.IsEmpty() {
		return records
	}
	keep := f.Build()
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
