package postgres

import (
	"database/sql"

	"github.com/riskibarqy/fantasy-points/internal/domain/play"
)

const playsTable = "plays"

type playTableModel struct {
	ID      int64          `db:"id"`
	GameID  string         `db:"game_id"`
	Season  int            `db:"season"`
	Week    int            `db:"week"`
	PosTeam sql.NullString `db:"posteam"`

	PasserPlayerID                   sql.NullString `db:"passer_player_id"`
	PasserPlayerName                 sql.NullString `db:"passer_player_name"`
	ReceiverPlayerID                 sql.NullString `db:"receiver_player_id"`
	ReceiverPlayerName               sql.NullString `db:"receiver_player_name"`
	RusherPlayerID                   sql.NullString `db:"rusher_player_id"`
	RusherPlayerName                 sql.NullString `db:"rusher_player_name"`
	Fumbled1PlayerID                 sql.NullString `db:"fumbled_1_player_id"`
	Fumbled1PlayerName               sql.NullString `db:"fumbled_1_player_name"`
	KickerPlayerID                   sql.NullString `db:"kicker_player_id"`
	KickerPlayerName                 sql.NullString `db:"kicker_player_name"`
	LateralKickoffReturnerPlayerID   sql.NullString `db:"lateral_kickoff_returner_player_id"`
	LateralKickoffReturnerPlayerName sql.NullString `db:"lateral_kickoff_returner_player_name"`
	LateralPuntReturnerPlayerID      sql.NullString `db:"lateral_punt_returner_player_id"`
	LateralPuntReturnerPlayerName    sql.NullString `db:"lateral_punt_returner_player_name"`
	KickoffReturnerPlayerID          sql.NullString `db:"kickoff_returner_player_id"`
	KickoffReturnerPlayerName        sql.NullString `db:"kickoff_returner_player_name"`
	PuntReturnerPlayerID             sql.NullString `db:"punt_returner_player_id"`
	PuntReturnerPlayerName           sql.NullString `db:"punt_returner_player_name"`

	PassingYards    sql.NullFloat64 `db:"passing_yards"`
	ReceivingYards  sql.NullFloat64 `db:"receiving_yards"`
	RushingYards    sql.NullFloat64 `db:"rushing_yards"`
	PassTouchdown   sql.NullFloat64 `db:"pass_touchdown"`
	RushTouchdown   sql.NullFloat64 `db:"rush_touchdown"`
	Interception    sql.NullFloat64 `db:"interception"`
	CompletePass    sql.NullFloat64 `db:"complete_pass"`
	FumbleLost      sql.NullFloat64 `db:"fumble_lost"`
	ReturnTouchdown sql.NullFloat64 `db:"return_touchdown"`
	KickDistance    sql.NullFloat64 `db:"kick_distance"`

	PlayType           sql.NullString `db:"play_type"`
	FieldGoalResult    sql.NullString `db:"field_goal_result"`
	ExtraPointResult   sql.NullString `db:"extra_point_result"`
	TwoPointConvResult sql.NullString `db:"two_point_conv_result"`
}

var playScalarColumns = []string{
	"game_id",
	"season",
	"week",
	"posteam",
}

var playMeasureColumns = []string{
	"passing_yards",
	"receiving_yards",
	"rushing_yards",
	"pass_touchdown",
	"rush_touchdown",
	"interception",
	"complete_pass",
	"fumble_lost",
	"return_touchdown",
	"kick_distance",
	"play_type",
	"field_goal_result",
	"extra_point_result",
	"two_point_conv_result",
}

// playColumns is the insert column order; playValues must follow it.
func playColumns() []string {
	out := make([]string, 0, len(playScalarColumns)+2*len(play.Roles)+len(playMeasureColumns))
	out = append(out, playScalarColumns...)
	for _, role := range play.Roles {
		out = append(out, role.IDColumn(), role.NameColumn())
	}
	return append(out, playMeasureColumns...)
}

func playValues(r play.Record) []any {
	out := make([]any, 0, len(playScalarColumns)+2*len(play.Roles)+len(playMeasureColumns))
	out = append(out, r.GameID, r.Season, r.Week, toNullString(r.PosTeam))
	for _, role := range play.Roles {
		p := r.Player(role)
		out = append(out, toNullString(p.ID), toNullString(p.Name))
	}
	return append(out,
		r.PassingYards,
		r.ReceivingYards,
		r.RushingYards,
		r.PassTouchdown,
		r.RushTouchdown,
		r.Interception,
		r.CompletePass,
		r.FumbleLost,
		r.ReturnTouchdown,
		r.KickDistance,
		toNullString(r.PlayType),
		toNullString(r.FieldGoalResult),
		toNullString(r.ExtraPointResult),
		toNullString(r.TwoPointConvResult),
	)
}

func (m playTableModel) toDomain() play.Record {
	r := play.Record{
		GameID:             m.GameID,
		Season:             m.Season,
		Week:               m.Week,
		PosTeam:            m.PosTeam.String,
		PassingYards:       m.PassingYards.Float64,
		ReceivingYards:     m.ReceivingYards.Float64,
		RushingYards:       m.RushingYards.Float64,
		PassTouchdown:      m.PassTouchdown.Float64,
		RushTouchdown:      m.RushTouchdown.Float64,
		Interception:       m.Interception.Float64,
		CompletePass:       m.CompletePass.Float64,
		FumbleLost:         m.FumbleLost.Float64,
		ReturnTouchdown:    m.ReturnTouchdown.Float64,
		KickDistance:       m.KickDistance.Float64,
		PlayType:           m.PlayType.String,
		FieldGoalResult:    m.FieldGoalResult.String,
		ExtraPointResult:   m.ExtraPointResult.String,
		TwoPointConvResult: m.TwoPointConvResult.String,
	}
	r.SetPlayer(play.RolePasser, m.PasserPlayerID.String, m.PasserPlayerName.String)
	r.SetPlayer(play.RoleReceiver, m.ReceiverPlayerID.String, m.ReceiverPlayerName.String)
	r.SetPlayer(play.RoleRusher, m.RusherPlayerID.String, m.RusherPlayerName.String)
	r.SetPlayer(play.RoleFumbler, m.Fumbled1PlayerID.String, m.Fumbled1PlayerName.String)
	r.SetPlayer(play.RoleKicker, m.KickerPlayerID.String, m.KickerPlayerName.String)
	r.SetPlayer(play.RoleLateralKickoffReturner, m.LateralKickoffReturnerPlayerID.String, m.LateralKickoffReturnerPlayerName.String)
	r.SetPlayer(play.RoleLateralPuntReturner, m.LateralPuntReturnerPlayerID.String, m.LateralPuntReturnerPlayerName.String)
	r.SetPlayer(play.RoleKickoffReturner, m.KickoffReturnerPlayerID.String, m.KickoffReturnerPlayerName.String)
	r.SetPlayer(play.RolePuntReturner, m.PuntReturnerPlayerID.String, m.PuntReturnerPlayerName.String)
	return r
}
