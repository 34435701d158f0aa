package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" help:"Log level (overrides config)"`
	Seed     int64            `help:"Random seed for reproducible results (overrides config)"`

	Eval    EvalCmd    `cmd:"" help:"Find the best combination in a set of cards"`
	Compare CompareCmd `cmd:"" help:"Settle a showdown between hole cards on a board"`
	Deal    DealCmd    `cmd:"" help:"Deal complete hands to a table of players"`
	Odds    OddsCmd    `cmd:"" help:"Estimate win odds with Monte Carlo simulation"`
}

// app carries everything commands share once flags and config are resolved.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	clock  quartz.Clock
	out    io.Writer
}

// seed returns the configured seed, or a fresh one that is logged so the run
// can be repeated.
func (a *app) seed() (int64, error) {
	if a.cfg.Seed != 0 {
		return a.cfg.Seed, nil
	}
	seed, err := randutil.NewSeed()
	if err != nil {
		return 0, err
	}
	a.logger.Info("Generated seed", "seed", seed)
	return seed, nil
}

func newApp(cli *CLI, out, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	logger := log.NewWithOptions(logOut, log.Options{
		Level:  level,
		Prefix: "showdown",
	})

	return &app{cfg: cfg, logger: logger, clock: quartz.NewReal(), out: out}, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Poker hand evaluation, showdowns and odds"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFilename,
		},
	)

	a, err := newApp(&cli, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(a)
	ctx.FatalIfErrorf(err)
}
