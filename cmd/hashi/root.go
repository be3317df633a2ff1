package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hashi/internal/config"
	"github.com/katalvlaran/hashi/internal/logging"
)

// app is the state shared by all commands of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	logFile  string
	jsonLogs bool

	cfg    config.Config
	logger *slog.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "hashi",
		Short: "Solve Hashiwokakero (bridges) puzzles",
		Long: `hashi reads bridges puzzles in text or YAML form and solves them
with deterministic deduction rules only. Puzzles that need guessing are left
partially solved and reported as incomplete.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "TOML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFile, "log-file", "", "write logs to this rotating file instead of stderr")
	pf.BoolVar(&a.jsonLogs, "json-logs", false, "emit JSON log records")

	root.AddCommand(newSolveCmd(a), newRenderCmd(a), newConvertCmd(a))

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.Logfile = a.logFile
	}
	if flags.Changed("json-logs") {
		cfg.Log.JSON = a.jsonLogs
	}

	logger, closer, err := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		File:    cfg.Log.Logfile,
		MaxSize: cfg.Log.MaxSize,
		MaxAge:  cfg.Log.MaxAge,
		JSON:    cfg.Log.JSON,
	})
	if err != nil {
		return err
	}
	a.cfg, a.logger, a.closer = cfg, logger, closer

	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.closer == nil {
		return nil
	}

	return a.closer.Close()
}
