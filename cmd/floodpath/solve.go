package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/floodpath/config"
	"github.com/katalvlaran/floodpath/planner"
	"github.com/katalvlaran/floodpath/report"
	"github.com/katalvlaran/floodpath/valueiter"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		cfgPath   string
		values    bool
		chartPath string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a flood network and print the expected cost and policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cfgPath)
			if err != nil {
				return err
			}
			sol, err := a.plan(cmd, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if values {
				err = report.Values(out, sol, a.colour(cmd))
			} else {
				err = report.Plan(out, sol, a.colour(cmd))
			}
			if err != nil {
				return err
			}

			if chartPath != "" {
				err = writeFile(chartPath, func(w io.Writer) error {
					return report.ConvergenceChart(w, sol.Result.History)
				})
				if err != nil {
					return err
				}
				a.log.Info("chart written", zap.String("path", chartPath))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "network YAML file")
	cmd.Flags().BoolVar(&values, "values", false, "print the value of every explored belief")
	cmd.Flags().StringVar(&chartPath, "chart", "", "write a convergence chart (HTML) to this file")

	return cmd
}

// plan runs the planner with the solver section of cfg.
func (a *app) plan(cmd *cobra.Command, cfg *config.Config) (*planner.Solution, error) {
	g, err := cfg.Graph()
	if err != nil {
		return nil, err
	}

	return planner.Plan(cmd.Context(), g, cfg.Start, cfg.Target,
		planner.WithLogger(a.log),
		planner.WithRecorder(a.metrics),
		planner.WithSolverOptions(
			valueiter.WithDiscount(cfg.Solver.Discount),
			valueiter.WithEpsilon(cfg.Solver.Epsilon),
			valueiter.WithMaxIterations(cfg.Solver.MaxIterations),
			valueiter.WithWorkers(cfg.Solver.Workers),
		),
	)
}
