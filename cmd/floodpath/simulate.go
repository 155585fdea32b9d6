package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/floodpath/report"
	"github.com/katalvlaran/floodpath/simulate"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		cfgPath   string
		trials    int
		seed      int64
		maxSteps  int
		workers   int
		verbose   bool
		chartPath string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Solve a flood network, then replay the policy against sampled floods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cfgPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("trials") {
				cfg.Simulation.Trials = trials
			}
			if flags.Changed("seed") {
				cfg.Simulation.Seed = seed
			}
			if flags.Changed("max-steps") {
				cfg.Simulation.MaxSteps = maxSteps
			}
			if flags.Changed("workers") {
				cfg.Simulation.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			sol, err := a.plan(cmd, cfg)
			if err != nil {
				return err
			}
			opts := []simulate.Option{
				simulate.WithSeed(cfg.Simulation.Seed),
				simulate.WithWorkers(cfg.Simulation.Workers),
				simulate.WithLogger(a.log.With(zap.String("run_id", sol.RunID.String()))),
				simulate.WithRecorder(a.metrics),
			}
			if cfg.Simulation.MaxSteps > 0 {
				opts = append(opts, simulate.WithMaxSteps(cfg.Simulation.MaxSteps))
			}
			results, err := simulate.Run(cmd.Context(), sol.Model, sol.Policy(), cfg.Simulation.Trials, opts...)
			if err != nil {
				return err
			}

			p := report.NewPrinter(cmd.OutOrStdout(), a.colour(cmd))
			p.Plan(sol)
			if verbose {
				for _, t := range results {
					p.Trial(sol.Model, t)
				}
			}
			summary := simulate.Summarize(results)
			p.Summary(summary)
			if err := p.Err(); err != nil {
				return err
			}
			a.log.Info("simulation finished",
				zap.String("run_id", sol.RunID.String()),
				zap.Int("trials", summary.Trials),
				zap.Float64("reach_rate", summary.ReachRate()),
				zap.Float64("mean_cost", summary.MeanCost),
			)

			if chartPath != "" {
				err = writeFile(chartPath, func(w io.Writer) error {
					return report.Dashboard(w, sol.Result.History, results)
				})
				if err != nil {
					return err
				}
				a.log.Info("chart written", zap.String("path", chartPath))
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "", "network YAML file")
	f.IntVarP(&trials, "trials", "n", 1, "number of trials (overrides simulation.trials)")
	f.Int64Var(&seed, "seed", 0, "base seed; 0 selects the default stream (overrides simulation.seed)")
	f.IntVar(&maxSteps, "max-steps", 0, "step cap per trial; 0 derives 3·|V|·(k+1)")
	f.IntVar(&workers, "workers", 1, "trials run concurrently")
	f.BoolVar(&verbose, "verbose-trace", false, "print every step of every trial")
	f.StringVar(&chartPath, "chart", "", "write convergence and cost charts (HTML) to this file")

	return cmd
}
