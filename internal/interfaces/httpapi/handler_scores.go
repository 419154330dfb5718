package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
)

const maxScoreBodyBytes = 1 << 16

// scoreRequest is the selection shared by every score endpoint. Query strings
// and JSON bodies both decode into it. Profile overlays the fields it names on
// the Scoring preset.
type scoreRequest struct {
	Season      int             `json:"-" validate:"gt=0"`
	Week        int             `json:"week" validate:"omitempty,gte=1,lte=22,excluded_with=WeekFrom WeekTo"`
	WeekFrom    int             `json:"week_from" validate:"required_with=WeekTo,omitempty,gte=1,lte=22"`
	WeekTo      int             `json:"week_to" validate:"required_with=WeekFrom,omitempty,lte=22,gtefield=WeekFrom"`
	Team        string          `json:"team" validate:"omitempty,max=4"`
	GameID      string          `json:"game_id" validate:"omitempty,max=32"`
	PlayerID    string          `json:"player_id" validate:"omitempty,max=32"`
	PlayerName  string          `json:"player_name" validate:"omitempty,max=64"`
	Scoring     string          `json:"scoring" validate:"omitempty,max=32"`
	Profile     json.RawMessage `json:"profile"`
	Granularity string          `json:"granularity" validate:"omitempty,oneof=player-game player game"`
	Position    string          `json:"position" validate:"omitempty,max=4"`
	Roster      bool            `json:"roster"`
	Unique      bool            `json:"unique"`
}

func (h *Handler) ListSeasonScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonScores")
	defer span.End()

	req, err := scoreRequestFromQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Season, err = pathInt(r, "season"); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.score(ctx, w, req, h.fantasyService.Score)
}

func (h *Handler) ScoreSeasonCustom(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScoreSeasonCustom")
	defer span.End()

	var req scoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := pathInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req.Season = season

	if req.GameID != "" {
		h.score(ctx, w, req, h.fantasyService.ScoreGame)
		return
	}
	h.score(ctx, w, req, h.fantasyService.Score)
}

func (h *Handler) GetGameScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameScores")
	defer span.End()

	req, err := scoreRequestFromQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Season, err = pathInt(r, "season"); err != nil {
		writeError(ctx, w, err)
		return
	}
	req.GameID = strings.TrimSpace(chi.URLParam(r, "gameID"))

	h.score(ctx, w, req, h.fantasyService.ScoreGame)
}

// GetTeamWeekScores scores the one game a team played in a week.
func (h *Handler) GetTeamWeekScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamWeekScores")
	defer span.End()

	req, err := scoreRequestFromQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Season, err = pathInt(r, "season"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Week, err = pathInt(r, "week"); err != nil {
		writeError(ctx, w, err)
		return
	}
	req.WeekFrom, req.WeekTo = 0, 0
	req.Team = strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "team")))

	h.score(ctx, w, req, h.fantasyService.ScoreGame)
}

type scoreFunc func(context.Context, usecase.ScoreQuery) (usecase.ScoreResult, error)

func (h *Handler) score(ctx context.Context, w http.ResponseWriter, req scoreRequest, run scoreFunc) {
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	query, err := h.toScoreQuery(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := run(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "score request failed", "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toScoreResultDTO(result))
}

func (h *Handler) toScoreQuery(req scoreRequest) (usecase.ScoreQuery, error) {
	profile, err := h.resolveProfile(req)
	if err != nil {
		return usecase.ScoreQuery{}, err
	}

	granularity, err := scoring.ParseGranularity(req.Granularity)
	if err != nil {
		return usecase.ScoreQuery{}, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}

	plays := play.NewFilter()
	rosters := roster.NewFilter()
	if team := strings.ToUpper(strings.TrimSpace(req.Team)); team != "" {
		plays = plays.Team(team)
		rosters = rosters.Team(team)
	}
	if req.GameID != "" {
		plays = plays.Game(strings.TrimSpace(req.GameID))
	}
	switch {
	case req.Week > 0:
		plays = plays.Week(req.Week)
		rosters = rosters.Week(req.Week)
	case req.WeekFrom > 0:
		plays = plays.WeekRange(req.WeekFrom, req.WeekTo)
		rosters = rosters.WeekRange(req.WeekFrom, req.WeekTo)
	}
	if id := strings.TrimSpace(req.PlayerID); id != "" {
		plays = plays.PlayerID(id)
	}
	if name := strings.TrimSpace(req.PlayerName); name != "" {
		plays = plays.PlayerName(name)
	}

	restrict := req.Roster
	if req.Position != "" {
		position, err := roster.ParsePosition(req.Position)
		if err != nil {
			return usecase.ScoreQuery{}, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
		}
		rosters = rosters.Position(position)
		restrict = true
	}
	if req.Unique {
		rosters = rosters.UniquePlayers()
	}

	return usecase.ScoreQuery{
		Season:           req.Season,
		Plays:            plays,
		Roster:           rosters,
		RestrictToRoster: restrict,
		Profile:          profile,
		Granularity:      granularity,
	}, nil
}

func scoreRequestFromQuery(values url.Values) (scoreRequest, error) {
	req := scoreRequest{
		Team:        values.Get("team"),
		GameID:      values.Get("game"),
		PlayerID:    values.Get("player_id"),
		PlayerName:  values.Get("player_name"),
		Scoring:     values.Get("scoring"),
		Granularity: values.Get("granularity"),
		Position:    values.Get("position"),
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"week", &req.Week},
		{"week_from", &req.WeekFrom},
		{"week_to", &req.WeekTo},
	}
	for _, item := range ints {
		raw := strings.TrimSpace(values.Get(item.key))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return scoreRequest{}, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, item.key)
		}
		*item.dst = v
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"roster", &req.Roster},
		{"unique", &req.Unique},
	}
	for _, item := range bools {
		raw := strings.TrimSpace(values.Get(item.key))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return scoreRequest{}, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, item.key)
		}
		*item.dst = v
	}

	return req, nil
}

func pathInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, key, raw)
	}
	return v, nil
}

func (h *Handler) resolveProfile(req scoreRequest) (scoring.Profile, error) {
	profile, err := h.fantasyService.ResolveProfile(req.Scoring)
	if err != nil {
		return scoring.Profile{}, err
	}
	if len(req.Profile) == 0 {
		return profile, nil
	}

	dec := sonic.ConfigDefault.NewDecoder(bytes.NewReader(req.Profile))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&profile); err != nil {
		return scoring.Profile{}, fmt.Errorf("%w: decode profile: %v", usecase.ErrInvalidInput, err)
	}
	if err := profile.Validate(); err != nil {
		return scoring.Profile{}, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}
	return profile, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxScoreBodyBytes)
	dec := sonic.ConfigDefault.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
