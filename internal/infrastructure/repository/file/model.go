package file

import (
	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
)

// playParquetModel is the subset of the nflverse play-by-play schema the engine
// reads. Every column is optional; nulls decode to nil.
type playParquetModel struct {
	GameID  *string `parquet:"game_id,optional"`
	Season  *int32  `parquet:"season,optional"`
	Week    *int32  `parquet:"week,optional"`
	PosTeam *string `parquet:"posteam,optional"`

	PasserPlayerID                 *string `parquet:"passer_player_id,optional"`
	PasserPlayerName               *string `parquet:"passer_player_name,optional"`
	ReceiverPlayerID               *string `parquet:"receiver_player_id,optional"`
	ReceiverPlayerName             *string `parquet:"receiver_player_name,optional"`
	RusherPlayerID                 *string `parquet:"rusher_player_id,optional"`
	RusherPlayerName               *string `parquet:"rusher_player_name,optional"`
	Fumbled1PlayerID               *string `parquet:"fumbled_1_player_id,optional"`
	Fumbled1PlayerName             *string `parquet:"fumbled_1_player_name,optional"`
	KickerPlayerID                 *string `parquet:"kicker_player_id,optional"`
	KickerPlayerName               *string `parquet:"kicker_player_name,optional"`
	LateralKickoffReturnerPlayerID *string `parquet:"lateral_kickoff_returner_player_id,optional"`
	LateralKickoffReturnerName     *string `parquet:"lateral_kickoff_returner_player_name,optional"`
	LateralPuntReturnerPlayerID    *string `parquet:"lateral_punt_returner_player_id,optional"`
	LateralPuntReturnerName        *string `parquet:"lateral_punt_returner_player_name,optional"`
	KickoffReturnerPlayerID        *string `parquet:"kickoff_returner_player_id,optional"`
	KickoffReturnerPlayerName      *string `parquet:"kickoff_returner_player_name,optional"`
	PuntReturnerPlayerID           *string `parquet:"punt_returner_player_id,optional"`
	PuntReturnerPlayerName         *string `parquet:"punt_returner_player_name,optional"`

	PassingYards    *float64 `parquet:"passing_yards,optional"`
	ReceivingYards  *float64 `parquet:"receiving_yards,optional"`
	RushingYards    *float64 `parquet:"rushing_yards,optional"`
	PassTouchdown   *float64 `parquet:"pass_touchdown,optional"`
	RushTouchdown   *float64 `parquet:"rush_touchdown,optional"`
	Interception    *float64 `parquet:"interception,optional"`
	CompletePass    *float64 `parquet:"complete_pass,optional"`
	FumbleLost      *float64 `parquet:"fumble_lost,optional"`
	ReturnTouchdown *float64 `parquet:"return_touchdown,optional"`
	KickDistance    *float64 `parquet:"kick_distance,optional"`

	PlayType           *string `parquet:"play_type,optional"`
	FieldGoalResult    *string `parquet:"field_goal_result,optional"`
	ExtraPointResult   *string `parquet:"extra_point_result,optional"`
	TwoPointConvResult *string `parquet:"two_point_conv_result,optional"`
}

func (m playParquetModel) toDomain() play.Record {
	r := play.Record{
		GameID:             str(m.GameID),
		Season:             int(num32(m.Season)),
		Week:               int(num32(m.Week)),
		PosTeam:            str(m.PosTeam),
		PassingYards:       num(m.PassingYards),
		ReceivingYards:     num(m.ReceivingYards),
		RushingYards:       num(m.RushingYards),
		PassTouchdown:      num(m.PassTouchdown),
		RushTouchdown:      num(m.RushTouchdown),
		Interception:       num(m.Interception),
		CompletePass:       num(m.CompletePass),
		FumbleLost:         num(m.FumbleLost),
		ReturnTouchdown:    num(m.ReturnTouchdown),
		KickDistance:       num(m.KickDistance),
		PlayType:           str(m.PlayType),
		FieldGoalResult:    str(m.FieldGoalResult),
		ExtraPointResult:   str(m.ExtraPointResult),
		TwoPointConvResult: str(m.TwoPointConvResult),
	}
	r.SetPlayer(play.RolePasser, str(m.PasserPlayerID), str(m.PasserPlayerName))
	r.SetPlayer(play.RoleReceiver, str(m.ReceiverPlayerID), str(m.ReceiverPlayerName))
	r.SetPlayer(play.RoleRusher, str(m.RusherPlayerID), str(m.RusherPlayerName))
	r.SetPlayer(play.RoleFumbler, str(m.Fumbled1PlayerID), str(m.Fumbled1PlayerName))
	r.SetPlayer(play.RoleKicker, str(m.KickerPlayerID), str(m.KickerPlayerName))
	r.SetPlayer(play.RoleLateralKickoffReturner, str(m.LateralKickoffReturnerPlayerID), str(m.LateralKickoffReturnerName))
	r.SetPlayer(play.RoleLateralPuntReturner, str(m.LateralPuntReturnerPlayerID), str(m.LateralPuntReturnerName))
	r.SetPlayer(play.RoleKickoffReturner, str(m.KickoffReturnerPlayerID), str(m.KickoffReturnerPlayerName))
	r.SetPlayer(play.RolePuntReturner, str(m.PuntReturnerPlayerID), str(m.PuntReturnerPlayerName))
	return r
}

// rosterParquetModel is the subset of the nflverse weekly roster schema.
type rosterParquetModel struct {
	Season    *int32  `parquet:"season,optional"`
	Week      *int32  `parquet:"week,optional"`
	Team      *string `parquet:"team,optional"`
	Position  *string `parquet:"position,optional"`
	FullName  *string `parquet:"full_name,optional"`
	FirstName *string `parquet:"first_name,optional"`
	LastName  *string `parquet:"last_name,optional"`
	GsisID    *string `parquet:"gsis_id,optional"`
}

func (m rosterParquetModel) toDomain() roster.Entry {
	return roster.Entry{
		PlayerID:  str(m.GsisID),
		Season:    int(num32(m.Season)),
		Week:      int(num32(m.Week)),
		Team:      str(m.Team),
		Position:  str(m.Position),
		FullName:  str(m.FullName),
		FirstName: str(m.FirstName),
		LastName:  str(m.LastName),
	}
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func num(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func num32(v *int32) int32 {
	if v == nil {
		return 0
	}
	return *v
}
