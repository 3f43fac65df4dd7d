package main

import (
	"fmt"
	"strconv"

	"github.com/sghaida/hof/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by every subcommand.
type app struct {
	cfg      config.Config
	verbose  bool
	logLevel string

	// logger is built in PersistentPreRunE unless already set (tests inject zap.NewNop()).
	logger *zap.Logger
}

func newApp() *app {
	return &app{}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hof",
		Short: "Higher-order function examples",
		Long: `hof replays small higher-order function examples:
function factories (greaterThan, multiplyBy), predicate extraction (isDog)
and control flow (doWhen).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.logger != nil {
				return nil
			}
			level := cfg.LogLevel
			if a.logLevel != "" {
				level = a.logLevel
			}
			if a.verbose {
				level = "debug"
			}
			a.logger, err = buildLogger(level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug|info|warn|error); defaults to HOF_LOG_LEVEL")

	root.AddCommand(
		a.compareCmd(),
		a.scaleCmd(),
		a.animalsCmd(),
		a.whenCmd(),
		a.demoCmd(),
	)
	return root
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// parseInts converts positional arguments into ints.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not an integer: %w", i+1, s, err)
		}
		out = append(out, n)
	}
	return out, nil
}
