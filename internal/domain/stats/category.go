package stats

import "github.com/riskibarqy/fantasy-points/internal/domain/play"

// Aggregate sums Value over the rows of a group into Column.
type Aggregate struct {
	Column Column
	Value  func(play.Record) float64
}

// Spec describes one category pass: which plays count, whose play it is, and
// which counters to sum.
type Spec struct {
	Category   Category
	Include    func(play.Record) bool
	Identity   func(play.Record) (play.Identity, bool)
	Aggregates []Aggregate
}

// Specs is the full category table. Order is the merge order.
var Specs = []Spec{
	{
		Category: CategoryPassing,
		Identity: byRole(play.RolePasser),
		Aggregates: []Aggregate{
			{Column: PassingYards, Value: passingYards},
			{Column: PassTouchdowns, Value: passTouchdown},
			{Column: Interceptions, Value: interception},
			{Column: Passing50YardTD, Value: when(longerThan(passingYards, 50), passTouchdown)},
		},
	},
	{
		Category: CategoryReceiving,
		Identity: byRole(play.RoleReceiver),
		Aggregates: []Aggregate{
			{Column: Receptions, Value: completePass},
			{Column: ReceivingYards, Value: receivingYards},
			{Column: ReceivingTDs, Value: passTouchdown},
			{Column: TwoPointConvMade, Value: when(twoPointSucceeded, one)},
			{Column: Receiving50YardTD, Value: when(longerThan(receivingYards, 50), passTouchdown)},
		},
	},
	{
		Category: CategoryRushing,
		Identity: byRole(play.RoleRusher),
		Aggregates: []Aggregate{
			{Column: RushingYards, Value: rushingYards},
			{Column: RushTouchdowns, Value: rushTouchdown},
			{Column: TwoPointConvMade, Value: when(twoPointSucceeded, one)},
			{Column: Rushing50YardTD, Value: when(longerThan(rushingYards, 50), rushTouchdown)},
		},
	},
	{
		Category: CategoryFumbling,
		Identity: byRole(play.RoleFumbler),
		Aggregates: []Aggregate{
			{Column: FumblesLost, Value: fumbleLost},
		},
	},
	{
		Category: CategoryKicking,
		Include:  notKickoff,
		Identity: byRole(play.RoleKicker),
		Aggregates: []Aggregate{
			{Column: PATMade, Value: when(extraPointGood, one)},
			{Column: FGMade, Value: when(fieldGoalMade, one)},
			{Column: FG40PlusMade, Value: when(fieldGoalAtLeast(40), one)},
			{Column: FG50PlusMade, Value: when(fieldGoalAtLeast(50), one)},
		},
	},
	{
		Category: CategoryReturning,
		Include:  returnTouchdown,
		Identity: coalesced(play.ReturnerRoles),
		Aggregates: []Aggregate{
			{Column: TDReturns, Value: returnTouchdowns},
		},
	},
}

// SpecFor returns the spec registered for c.
func SpecFor(c Category) (Spec, bool) {
	for _, s := range Specs {
		if s.Category == c {
			return s, true
		}
	}
	return Spec{}, false
}

func byRole(role play.Role) func(play.Record) (play.Identity, bool) {
	return func(r play.Record) (play.Identity, bool) {
		id := r.Player(role)
		return id, id.Name != ""
	}
}

func coalesced(roles []play.Role) func(play.Record) (play.Identity, bool) {
	return func(r play.Record) (play.Identity, bool) {
		id := r.Coalesce(roles)
		return id, !id.IsZero()
	}
}

func when(cond func(play.Record) bool, value func(play.Record) float64) func(play.Record) float64 {
	return func(r play.Record) float64 {
		if !cond(r) {
			return 0
		}
		return value(r)
	}
}

// longerThan is strict: a 50 yard touchdown is not a 50+ yard touchdown.
func longerThan(yards func(play.Record) float64, limit float64) func(play.Record) bool {
	return func(r play.Record) bool { return yards(r) > limit }
}

// fieldGoalAtLeast is inclusive: a made 40 yard kick counts toward 40+.
func fieldGoalAtLeast(distance float64) func(play.Record) bool {
	return func(r play.Record) bool { return fieldGoalMade(r) && r.KickDistance >= distance }
}

// notKickoff mirrors SQL `play_type != 'kickoff'`, which also drops null play types.
func notKickoff(r play.Record) bool {
	return r.PlayType != "" && r.PlayType != play.PlayTypeKickoff
}

func returnTouchdown(r play.Record) bool { return r.ReturnTouchdown == 1 }

func twoPointSucceeded(r play.Record) bool { return r.TwoPointConvResult == play.TwoPointConvSuccess }

func fieldGoalMade(r play.Record) bool { return r.FieldGoalResult == play.FieldGoalMade }

func extraPointGood(r play.Record) bool { return r.ExtraPointResult == play.ExtraPointGood }

func one(play.Record) float64 { return 1 }

func passingYards(r play.Record) float64 { return r.PassingYards }

func receivingYards(r play.Record) float64 { return r.ReceivingYards }

func rushingYards(r play.Record) float64 { return r.RushingYards }

func passTouchdown(r play.Record) float64 { return r.PassTouchdown }

func rushTouchdown(r play.Record) float64 { return r.RushTouchdown }

func interception(r play.Record) float64 { return r.Interception }

func completePass(r play.Record) float64 { return r.CompletePass }

func fumbleLost(r play.Record) float64 { return r.FumbleLost }

func returnTouchdowns(r play.Record) float64 { return r.ReturnTouchdown }
