package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/crucible/internal/config"
	"github.com/katalvlaran/crucible/internal/runner"
)

// solveFlags holds the solve command's overrides of the configuration.
type solveFlags struct {
	minRun  int
	maxRun  int
	timeout time.Duration
	maxCost int64
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [input-file]",
		Short: "Solve a puzzle grid for every configured variant",
		Long: `Reads a grid of single-digit costs (one row per line) and prints the
minimum heat loss for each variant, one "<variant>: <cost>" line each,
or "<variant>: unreachable" when no legal route exists.

Setting --min-run or --max-run replaces the configured variants with a
single "custom" variant.

Example:
  crucible solve input.txt
  crucible solve input.txt --min-run 4 --max-run 10 --timeout 30s`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args, f)
		},
	}

	cmd.Flags().IntVar(&f.minRun, "min-run", 1, "shortest straight run before a turn")
	cmd.Flags().IntVar(&f.maxRun, "max-run", 3, "longest straight run before a turn")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "per-variant search deadline (0 = none)")
	cmd.Flags().Int64Var(&f.maxCost, "max-cost", 0, "give up on routes costlier than this (unset = no cap)")
	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string, f *solveFlags) error {
	// Flags override the loaded configuration.
	if len(args) == 1 {
		a.cfg.Input = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("timeout") {
		a.cfg.Timeout = f.timeout.String()
	}
	if flags.Changed("max-cost") {
		a.cfg.MaxCost = config.Int64(f.maxCost)
	}
	if flags.Changed("min-run") || flags.Changed("max-run") {
		a.cfg.Variants = []config.VariantConfig{{Name: "custom", MinRun: f.minRun, MaxRun: f.maxRun}}
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	opts, variants := runner.FromConfig(a.cfg)
	a.logger.Info("Solving puzzle",
		zap.String("input", a.cfg.Input),
		zap.Int("variants", len(variants)),
		zap.Duration("timeout", opts.Timeout))

	answers, err := runner.New(a.logger, opts).SolveFile(cmd.Context(), a.cfg.Input, variants)
	if err != nil {
		return err
	}
	for _, ans := range answers {
		fmt.Fprintln(cmd.OutOrStdout(), ans)
	}
	return nil
}
