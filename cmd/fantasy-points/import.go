package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/riskibarqy/fantasy-points/internal/app"
	"github.com/riskibarqy/fantasy-points/internal/config"
	"github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/file"
	"github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
)

type importOptions struct {
	season      int
	playsPath   string
	rosterPath  string
	dbURL       string
	skipPlays   bool
	skipRosters bool
	verbose     verbosity
}

func parseImportFlags(args []string, output io.Writer) (importOptions, error) {
	var opts importOptions

	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&opts.season, "season", 0, "season to import (required)")
	fs.StringVar(&opts.playsPath, "file", "", "play-by-play file or %d template (default PBP_PATH_TEMPLATE)")
	fs.StringVar(&opts.rosterPath, "roster-file", "", "roster file or %d template (default ROSTER_PATH_TEMPLATE)")
	fs.StringVar(&opts.dbURL, "db", "", "postgres url (default DB_URL)")
	fs.BoolVar(&opts.skipPlays, "skip-plays", false, "do not import plays")
	fs.BoolVar(&opts.skipRosters, "skip-rosters", false, "do not import rosters")
	fs.Var(&opts.verbose, "v", "verbose logging; repeat for debug")

	if err := fs.Parse(args); err != nil {
		return importOptions{}, err
	}
	if fs.NArg() > 0 {
		return importOptions{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.season <= 0 {
		return importOptions{}, errors.New("-season is required")
	}
	if opts.skipPlays && opts.skipRosters {
		return importOptions{}, errors.New("nothing to import")
	}
	return opts, nil
}

func runImport(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseImportFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "import:", err)
		return 2
	}

	logger := logging.NewConsole(logging.LevelFromVerbosity(int(opts.verbose)+1), stderr)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		return 1
	}
	if opts.playsPath != "" {
		cfg.PBPPathTemplate = opts.playsPath
	}
	if opts.rosterPath != "" {
		cfg.RosterPathTemplate = opts.rosterPath
	}
	if opts.dbURL != "" {
		cfg.DBURL = opts.dbURL
	}

	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		logger.Error("open database", "error", err)
		return 1
	}
	defer func() { _ = db.Close() }()

	service := usecase.NewImportService(
		file.NewPlayRepository(cfg.PBPPathTemplate, logger),
		file.NewRosterRepository(cfg.RosterPathTemplate, logger),
		postgres.NewPlayRepository(db),
		postgres.NewRosterRepository(db),
		logger,
	)

	logger.Info("import starting",
		"season", opts.season,
		"plays", cfg.PBPPath(opts.season),
		"rosters", cfg.RosterPath(opts.season),
	)
	result, err := service.Import(ctx, usecase.ImportRequest{
		Season:  opts.season,
		Plays:   !opts.skipPlays,
		Rosters: !opts.skipRosters,
	})
	if err != nil {
		logger.Error("import failed", "season", opts.season, "error", err)
		return 1
	}

	fmt.Fprintf(stdout, "season %d: %d plays (%d skipped), %d roster entries (%d skipped)\n",
		result.Season, result.Plays, result.SkippedPlays, result.Rosters, result.SkippedRosters)
	return 0
}
