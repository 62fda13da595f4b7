// Command crucible solves constrained-movement shortest-path puzzles on
// digit cost grids and generates synthetic grids to solve.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/crucible/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *config.Config
}

// newRootCmd builds a fresh command tree; tests call it once per run.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "crucible",
		Short: "Minimum heat-loss routes for crucibles that must turn",
		Long: `crucible finds the cheapest route across a grid of single-digit
entry costs from the top-left to the bottom-right cell, where every
straight run must cover between min-run and max-run cells before the
crucible turns 90 degrees, and it may never reverse.

Without flags, both published variants are solved: crucible [1,3] and
ultra [4,10].`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "crucible.yaml", "path to the YAML configuration file")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a), newInitConfigCmd(a))
	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	a.cfg, err = config.Load(a.configPath)
	if err != nil {
		return err
	}

	zcfg := zap.NewProductionConfig()
	if a.cfg.Logging.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(a.cfg.LogLevel())
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.logger.Debug("Configuration loaded",
		zap.String("path", a.configPath),
		zap.Int("variants", len(a.cfg.Variants)))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
