package file

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
)

var playTextColumns = []string{
	"game_id",
	"posteam",
	"play_type",
	"field_goal_result",
	"extra_point_result",
	"two_point_conv_result",
}

var playCounterColumns = []string{
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
}

var requiredRosterColumns = []string{"gsis_id", "season"}

// requiredPlayColumns lists every column the stat categories read. A file
// missing one of them would otherwise score that category as zero.
func requiredPlayColumns() []string {
	cols := make([]string, 0, len(playTextColumns)+2+len(playCounterColumns)+2*len(play.Roles))
	cols = append(cols, playTextColumns...)
	cols = append(cols, "season", "week")
	for _, role := range play.Roles {
		cols = append(cols, role.IDColumn(), role.NameColumn())
	}
	return append(cols, playCounterColumns...)
}

// csvHeader maps column name to index. nflverse CSV exports write "NA" for null.
type csvHeader map[string]int

func readHeader(r *csv.Reader, required ...string) (csvHeader, error) {
	names, err := r.Read()
	if err != nil {
		return nil, crerr.Wrap(err, "read csv header")
	}
	h := make(csvHeader, len(names))
	for i, name := range names {
		h[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range required {
		if _, ok := h[name]; !ok {
			return nil, crerr.Newf("missing required column %q", name)
		}
	}
	return h, nil
}

func (h csvHeader) text(rec []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(rec) {
		return ""
	}
	v := strings.TrimSpace(rec[i])
	if v == "NA" {
		return ""
	}
	return v
}

func (h csvHeader) float(rec []string, name string) (float64, error) {
	v := h.text(rec, name)
	if v == "" {
		return 0, nil
	}
	out, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, crerr.Wrapf(err, "column %s", name)
	}
	return out, nil
}

func (h csvHeader) int(rec []string, name string) (int, error) {
	f, err := h.float(rec, name)
	return int(f), err
}

func decodePlaysCSV(src io.Reader) ([]play.Record, error) {
	r := csv.NewReader(src)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1

	h, err := readHeader(r, requiredPlayColumns()...)
	if err != nil {
		return nil, err
	}

	out := make([]play.Record, 0, 1024)
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, crerr.Wrapf(err, "read csv line %d", line)
		}

		p, err := decodePlayRow(h, rec)
		if err != nil {
			return nil, crerr.Wrapf(err, "decode csv line %d", line)
		}
		out = append(out, p)
	}
	return out, nil
}

func decodePlayRow(h csvHeader, rec []string) (play.Record, error) {
	p := play.Record{
		GameID:             h.text(rec, "game_id"),
		PosTeam:            h.text(rec, "posteam"),
		PlayType:           h.text(rec, "play_type"),
		FieldGoalResult:    h.text(rec, "field_goal_result"),
		ExtraPointResult:   h.text(rec, "extra_point_result"),
		TwoPointConvResult: h.text(rec, "two_point_conv_result"),
	}
	for _, role := range play.Roles {
		p.SetPlayer(role, h.text(rec, role.IDColumn()), h.text(rec, role.NameColumn()))
	}

	var err error
	ints := []struct {
		name string
		dst  *int
	}{
		{"season", &p.Season},
		{"week", &p.Week},
	}
	for _, f := range ints {
		if *f.dst, err = h.int(rec, f.name); err != nil {
			return play.Record{}, err
		}
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"passing_yards", &p.PassingYards},
		{"receiving_yards", &p.ReceivingYards},
		{"rushing_yards", &p.RushingYards},
		{"pass_touchdown", &p.PassTouchdown},
		{"rush_touchdown", &p.RushTouchdown},
		{"interception", &p.Interception},
		{"complete_pass", &p.CompletePass},
		{"fumble_lost", &p.FumbleLost},
		{"return_touchdown", &p.ReturnTouchdown},
		{"kick_distance", &p.KickDistance},
	}
	for _, f := range floats {
		if *f.dst, err = h.float(rec, f.name); err != nil {
			return play.Record{}, err
		}
	}
	return p, nil
}

func decodeRosterCSV(src io.Reader) ([]roster.Entry, error) {
	r := csv.NewReader(src)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1

	h, err := readHeader(r, requiredRosterColumns...)
	if err != nil {
		return nil, err
	}

	out := make([]roster.Entry, 0, 256)
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, crerr.Wrapf(err, "read csv line %d", line)
		}

		e := roster.Entry{
			PlayerID:  h.text(rec, "gsis_id"),
			Team:      h.text(rec, "team"),
			Position:  h.text(rec, "position"),
			FullName:  h.text(rec, "full_name"),
			FirstName: h.text(rec, "first_name"),
			LastName:  h.text(rec, "last_name"),
		}
		if e.Season, err = h.int(rec, "season"); err != nil {
			return nil, crerr.Wrapf(err, "decode csv line %d", line)
		}
		if e.Week, err = h.int(rec, "week"); err != nil {
			return nil, crerr.Wrapf(err, "decode csv line %d", line)
		}
		out = append(out, e)
	}
	return out, nil
}
