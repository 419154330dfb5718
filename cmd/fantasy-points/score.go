package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/fantasy-points/internal/app"
	"github.com/riskibarqy/fantasy-points/internal/config"
	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
)

type scoreOptions struct {
	season      int
	source      string
	playsPath   string
	rosterPath  string
	week        int
	weekFrom    int
	weekTo      int
	team        string
	game        string
	playerID    string
	playerName  string
	preset      string
	profilePath string
	granularity string
	position    string
	roster      bool
	unique      bool
	format      string
	workers     int
	verbose     verbosity
}

func parseScoreFlags(args []string, output io.Writer) (scoreOptions, error) {
	var opts scoreOptions

	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&opts.season, "season", 0, "season to score (required)")
	fs.StringVar(&opts.source, "source", "", "data source: file, postgres or memory (default from DATA_SOURCE)")
	fs.StringVar(&opts.playsPath, "file", "", "play-by-play file or %d template; implies -source file")
	fs.StringVar(&opts.rosterPath, "roster-file", "", "roster file or %d template")
	fs.IntVar(&opts.week, "week", 0, "only plays from this week")
	fs.IntVar(&opts.weekFrom, "week-from", 0, "first week of an inclusive range")
	fs.IntVar(&opts.weekTo, "week-to", 0, "last week of an inclusive range")
	fs.StringVar(&opts.team, "team", "", "only plays where this team has possession")
	fs.StringVar(&opts.game, "game", "", "only plays from this game id; scores a single game")
	fs.StringVar(&opts.playerID, "player", "", "only plays involving this player id")
	fs.StringVar(&opts.playerName, "player-name", "", "only plays involving this player name")
	fs.StringVar(&opts.preset, "scoring", "", "scoring preset: "+strings.Join(scoring.PresetNames(), ", "))
	fs.StringVar(&opts.profilePath, "profile", "", "JSON profile file; fields override the -scoring preset")
	fs.StringVar(&opts.granularity, "granularity", string(scoring.GranularityPlayerGame), "player-game, player or game")
	fs.StringVar(&opts.position, "position", "", "keep rostered players at this position (QB, RB, WR, TE, K, FLEX)")
	fs.BoolVar(&opts.roster, "roster", false, "keep rostered players only")
	fs.BoolVar(&opts.unique, "unique", false, "count each rostered player once")
	fs.StringVar(&opts.format, "format", "text", "output format: text or json")
	fs.IntVar(&opts.workers, "workers", 0, "category aggregation workers (default from AGGREGATE_WORKERS)")
	fs.Var(&opts.verbose, "v", "verbose logging; repeat for debug")

	if err := fs.Parse(args); err != nil {
		return scoreOptions{}, err
	}
	if fs.NArg() > 0 {
		return scoreOptions{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.season <= 0 {
		return scoreOptions{}, errors.New("-season is required")
	}
	if opts.week > 0 && (opts.weekFrom > 0 || opts.weekTo > 0) {
		return scoreOptions{}, errors.New("-week cannot be combined with -week-from/-week-to")
	}
	if (opts.weekFrom > 0) != (opts.weekTo > 0) {
		return scoreOptions{}, errors.New("-week-from and -week-to must be set together")
	}
	if opts.weekFrom > opts.weekTo {
		return scoreOptions{}, errors.New("-week-from must not be after -week-to")
	}
	switch opts.format {
	case "text", "json":
	default:
		return scoreOptions{}, fmt.Errorf("unknown -format %q", opts.format)
	}
	if opts.playsPath != "" {
		opts.source = config.DataSourceFile
	}
	switch opts.source {
	case "", config.DataSourceFile, config.DataSourcePostgres, config.DataSourceMemory:
	default:
		return scoreOptions{}, fmt.Errorf("unknown -source %q", opts.source)
	}
	return opts, nil
}

// singleGame reports whether the selection names one game, either directly or
// as a team's game in a week.
func (o scoreOptions) singleGame() bool {
	return o.game != "" || (o.week > 0 && o.team != "")
}

func (o scoreOptions) query(profile scoring.Profile) (usecase.ScoreQuery, error) {
	granularity, err := scoring.ParseGranularity(o.granularity)
	if err != nil {
		return usecase.ScoreQuery{}, err
	}

	plays := play.NewFilter()
	rosters := roster.NewFilter()
	if o.team != "" {
		team := strings.ToUpper(o.team)
		plays = plays.Team(team)
		rosters = rosters.Team(team)
	}
	if o.game != "" {
		plays = plays.Game(o.game)
	}
	switch {
	case o.week > 0:
		plays = plays.Week(o.week)
		rosters = rosters.Week(o.week)
	case o.weekFrom > 0:
		plays = plays.WeekRange(o.weekFrom, o.weekTo)
		rosters = rosters.WeekRange(o.weekFrom, o.weekTo)
	}
	if o.playerID != "" {
		plays = plays.PlayerID(o.playerID)
	}
	if o.playerName != "" {
		plays = plays.PlayerName(o.playerName)
	}

	restrict := o.roster
	if o.position != "" {
		position, err := roster.ParsePosition(o.position)
		if err != nil {
			return usecase.ScoreQuery{}, err
		}
		rosters = rosters.Position(position)
		restrict = true
	}
	if o.unique {
		rosters = rosters.UniquePlayers()
	}

	return usecase.ScoreQuery{
		Season:           o.season,
		Plays:            plays,
		Roster:           rosters,
		RestrictToRoster: restrict,
		Profile:          profile,
		Granularity:      granularity,
	}, nil
}

// loadProfile starts from the named preset and overlays the fields present in
// the profile file.
func loadProfile(service *usecase.FantasyService, preset, path string) (scoring.Profile, error) {
	profile, err := service.ResolveProfile(preset)
	if err != nil {
		return scoring.Profile{}, err
	}
	if path == "" {
		return profile, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return scoring.Profile{}, fmt.Errorf("read profile: %w", err)
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &profile); err != nil {
		return scoring.Profile{}, fmt.Errorf("decode profile %s: %w", path, err)
	}
	if err := profile.Validate(); err != nil {
		return scoring.Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return profile, nil
}

func runScore(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseScoreFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "score:", err)
		return 2
	}

	logger := logging.NewConsole(logging.LevelFromVerbosity(int(opts.verbose)), stderr)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		return 1
	}
	applyScoreOptions(&cfg, opts)

	sources, err := app.NewSources(ctx, cfg, logger)
	if err != nil {
		logger.Error("open data sources", "error", err)
		return 1
	}
	defer func() { _ = sources.Close() }()

	service := app.NewFantasyService(cfg, sources, logger)
	profile, err := loadProfile(service, opts.preset, opts.profilePath)
	if err != nil {
		logger.Error("load scoring profile", "error", err)
		return 1
	}
	query, err := opts.query(profile)
	if err != nil {
		logger.Error("build query", "error", err)
		return 2
	}

	score := service.Score
	if opts.singleGame() {
		score = service.ScoreGame
	}
	result, err := score(ctx, query)
	if err != nil {
		logger.Error("score", "season", opts.season, "error", err)
		return 1
	}
	logger.Info("scored", "season", result.Season, "granularity", result.Granularity, "game_id", result.GameID)

	if opts.format == "json" {
		err = renderJSON(stdout, result)
	} else {
		err = renderText(stdout, result)
	}
	if err != nil {
		logger.Error("write output", "error", err)
		return 1
	}
	return 0
}

// applyScoreOptions points the config at the flag selected source. The CLI
// runs once per process, so caching and the circuit breaker are off.
func applyScoreOptions(cfg *config.Config, opts scoreOptions) {
	if opts.source != "" {
		cfg.DataSource = opts.source
	}
	if opts.playsPath != "" {
		cfg.PBPPathTemplate = opts.playsPath
	}
	if opts.rosterPath != "" {
		cfg.RosterPathTemplate = opts.rosterPath
	}
	if opts.workers > 0 {
		cfg.AggregateWorkers = opts.workers
	}
	cfg.CacheEnabled = false
	cfg.SourceCircuitEnabled = false
}
