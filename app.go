package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime/debug"
	"slices"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/stakeseer/solstake/internal/analyzer"
	"github.com/stakeseer/solstake/internal/config"
	"github.com/stakeseer/solstake/internal/lib/coingecko"
	"github.com/stakeseer/solstake/internal/lib/misc"
	"github.com/stakeseer/solstake/internal/lib/solscan"
)

var logLevel = new(slog.LevelVar) // Info by default

func initApp() *SolstakeApp {
	log.SetFlags(0)
	var logger *slog.Logger
	if term.IsTerminal(int(os.Stdout.Fd())) {
		// Output is a tty - so we're being run interactively vs as a daemon
		logger = slog.New(misc.NewMinimalHandler(os.Stdout,
			misc.MinimalHandlerOptions{SlogOpts: slog.HandlerOptions{Level: logLevel, AddSource: true}}))
	} else {
		// not on console - output as json, but change json key names to be more
		// compatible w/ what google logging expects
		opts := &slog.HandlerOptions{
			AddSource: true,
			Level:     logLevel,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.MessageKey {
					a.Key = "message"
				} else if a.Key == slog.LevelKey && len(groups) == 0 {
					a.Key = "severity"
				}
				return a
			},
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	slog.SetDefault(logger)
	if os.Getenv("DEBUG") == "1" {
		logLevel.Set(slog.LevelDebug)
	}

	misc.LoadEnvSettings(logger)

	// We initialize our wrapper instance first, so we can call its methods in the 'Before' lambda func
	// in initialization of cli Command instance.
	appConfig := &SolstakeApp{logger: logger}

	appConfig.cliCmd = &cli.Command{
		Name:    "solstake",
		Usage:   "Analyze projected Solana staking returns and rank validator candidates",
		Version: getVersionInfo(),
		Before: func(ctx context.Context, cmd *cli.Command) error {
			// Further bootstrap of the 'app' but within context of 'cli' helper as it
			// has access to flags and options (env file, api key) already set.
			return appConfig.initClients(ctx, cmd)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "envfile",
				Usage:   "env file to load",
				Sources: cli.EnvVars("SOLSTAKE_ENVFILE"),
				Aliases: []string{"e"},
			},
			&cli.StringFlag{
				Name:    "apikey",
				Usage:   "Optional API key passed as bearer token to the Solscan API",
				Sources: cli.EnvVars("SOLANA_API_KEY"),
			},
		},
		Commands: []*cli.Command{
			GetReportCmdOpts(),
			GetValidatorCmdOpts(),
			GetProjectCmdOpts(),
			GetPriceCmdOpts(),
			GetDaemonCmdOpts(),
		},
	}
	return appConfig
}

type SolstakeApp struct {
	cliCmd *cli.Command
	logger *slog.Logger
	cfg    config.Config

	prices   *coingecko.Client
	chain    *solscan.Client
	analyzer *analyzer.Analyzer
}

// initClients loads the runtime config and wires up the price client, the
// solscan client and the analyzer on top of them.
func (ac *SolstakeApp) initClients(ctx context.Context, cmd *cli.Command) error {
	if envfile := cmd.String("envfile"); envfile != "" {
		if err := misc.LoadEnvFile(ac.logger, envfile); err != nil {
			return err
		}
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	// CLI flag wins over the environment for the api key
	if key := cmd.String("apikey"); key != "" {
		cfg.APIKey = key
	}
	ac.cfg = cfg

	ac.prices = coingecko.NewClient(ac.logger, cfg.CoinGeckoURL, cfg.HTTPTimeout)
	ac.chain = solscan.NewClient(ac.logger, cfg.SolscanURL, cfg.APIKey, cfg.HTTPTimeout)
	ac.analyzer = analyzer.New(ac.logger, ac.prices, ac.chain)
	return nil
}

// Version is replaced at build time during docker builds w/ 'release' version
// If not defined, we just return the git rev.
var Version string

func getVersionInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "The version information could not be determined"
	}
	var vcsRev = "(unknown)"
	if fnd := slices.IndexFunc(info.Settings, func(v debug.BuildSetting) bool { return v.Key == "vcs.revision" }); fnd != -1 {
		vcsRev = info.Settings[fnd].Value[0:7]
	}
	if Version != "" {
		return fmt.Sprintf("%s [%s]", Version, vcsRev)
	}
	return vcsRev
}
