package play

// Identity is a player id/name pair taken from one role column pair.
// Empty strings stand for null columns.
type Identity struct {
	ID   string
	Name string
}

func (i Identity) IsZero() bool {
	return i.ID == "" && i.Name == ""
}

// Record is one play-by-play row.
type Record struct {
	GameID  string
	Season  int
	Week    int
	PosTeam string

	Players [roleCount]Identity

	PassingYards    float64
	ReceivingYards  float64
	RushingYards    float64
	PassTouchdown   float64
	RushTouchdown   float64
	Interception    float64
	CompletePass    float64
	FumbleLost      float64
	ReturnTouchdown float64
	KickDistance    float64

	PlayType           string
	FieldGoalResult    string
	ExtraPointResult   string
	TwoPointConvResult string
}

// Player returns the identity recorded for role, zero when the role is unknown.
func (r Record) Player(role Role) Identity {
	if !role.valid() {
		return Identity{}
	}
	return r.Players[role]
}

// SetPlayer is used by loaders while building a record.
func (r *Record) SetPlayer(role Role, id, name string) {
	if !role.valid() {
		return
	}
	r.Players[role] = Identity{ID: id, Name: name}
}

const (
	PlayTypeKickoff = "kickoff"

	FieldGoalMade       = "made"
	ExtraPointGood      = "good"
	TwoPointConvSuccess = "success"
)
