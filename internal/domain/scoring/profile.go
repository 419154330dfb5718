package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownProfile = errors.New("unknown scoring profile")
	ErrInvalidProfile = errors.New("invalid scoring profile")
)

// Profile holds the scoring coefficients. Yardage is divided by the *_yd_per_point
// denominators; counters are multiplied by the rest.
type Profile struct {
	PassingYdPerPoint  float64 `json:"passing_yd_per_point" validate:"gt=0"`
	Passing300YdBonus  float64 `json:"passing_300yd_bonus"`
	Passing400YdBonus  float64 `json:"passing_400yd_bonus"`
	PassingTDPoints    float64 `json:"passing_td_points"`
	PassingTD50YdBonus float64 `json:"passing_td_50yd_bonus"`

	RushingYdPerPoint  float64 `json:"rushing_yd_per_point" validate:"gt=0"`
	Rushing100YdBonus  float64 `json:"rushing_100yd_bonus"`
	Rushing200YdBonus  float64 `json:"rushing_200yd_bonus"`
	RushingTDPoints    float64 `json:"rushing_td_points"`
	RushingTD50YdBonus float64 `json:"rushing_td_50yd_bonus"`

	ReceptionPoints      float64 `json:"reception_points"`
	ReceivingYdPerPoint  float64 `json:"receiving_yd_per_point" validate:"gt=0"`
	Receiving100YdBonus  float64 `json:"receiving_100yd_bonus"`
	Receiving200YdBonus  float64 `json:"receiving_200yd_bonus"`
	ReceivingTDPoints    float64 `json:"receiving_td_points"`
	ReceivingTD50YdBonus float64 `json:"receiving_td_50yd_bonus"`

	// FumbleRecoveryTDPoints is carried for compatibility; no counter feeds it yet.
	FumbleRecoveryTDPoints float64 `json:"fumble_recovery_td_points"`
	ReturnTDPoints         float64 `json:"return_td_points"`

	InterceptionPoints       float64 `json:"interception_points"`
	FumbleLostPoints         float64 `json:"fumble_lost_points"`
	TwoPointConversionPoints float64 `json:"two_point_conversion_points"`
	FGMadePoints             float64 `json:"fg_made_points"`
	FGMade40YdBonus          float64 `json:"fg_made_40yd_bonus"`
	FGMade50YdBonus          float64 `json:"fg_made_50yd_bonus"`
	PATMadePoints            float64 `json:"pat_made_points"`
}

func (p Profile) Validate() error {
	if p.PassingYdPerPoint <= 0 {
		return fmt.Errorf("%w: passing_yd_per_point must be greater than zero", ErrInvalidProfile)
	}
	if p.RushingYdPerPoint <= 0 {
		return fmt.Errorf("%w: rushing_yd_per_point must be greater than zero", ErrInvalidProfile)
	}
	if p.ReceivingYdPerPoint <= 0 {
		return fmt.Errorf("%w: receiving_yd_per_point must be greater than zero", ErrInvalidProfile)
	}
	return nil
}

const (
	PresetPPR      = "ppr"
	PresetHalfPPR  = "half-ppr"
	PresetNoPPR    = "no-ppr"
	PresetAllBonus = "all-bonus"
)

// PPR awards one point per reception and no yardage or distance bonuses.
func PPR() Profile {
	return Profile{
		PassingYdPerPoint:        25,
		PassingTDPoints:          4,
		InterceptionPoints:       -2,
		RushingYdPerPoint:        10,
		RushingTDPoints:          6,
		ReceptionPoints:          1,
		ReceivingYdPerPoint:      10,
		ReceivingTDPoints:        6,
		FumbleLostPoints:         -2,
		TwoPointConversionPoints: 2,
		FGMadePoints:             3,
		PATMadePoints:            1,
		FumbleRecoveryTDPoints:   6,
		ReturnTDPoints:           6,
	}
}

func HalfPPR() Profile {
	p := PPR()
	p.ReceptionPoints = 0.5
	return p
}

func NoPPR() Profile {
	p := PPR()
	p.ReceptionPoints = 0
	return p
}

// AllBonus is PPR with every yardage and distance bonus worth one point.
func AllBonus() Profile {
	p := PPR()
	p.Passing300YdBonus = 1
	p.Passing400YdBonus = 1
	p.PassingTD50YdBonus = 1
	p.Rushing100YdBonus = 1
	p.Rushing200YdBonus = 1
	p.RushingTD50YdBonus = 1
	p.Receiving100YdBonus = 1
	p.Receiving200YdBonus = 1
	p.ReceivingTD50YdBonus = 1
	p.FGMade40YdBonus = 1
	p.FGMade50YdBonus = 1
	return p
}

var presets = map[string]func() Profile{
	PresetPPR:      PPR,
	PresetHalfPPR:  HalfPPR,
	PresetNoPPR:    NoPPR,
	PresetAllBonus: AllBonus,
}

// ProfileByName resolves a preset name, ignoring case.
func ProfileByName(name string) (Profile, error) {
	build, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q (use one of %s)", ErrUnknownProfile, name, strings.Join(PresetNames(), ", "))
	}
	return build(), nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
