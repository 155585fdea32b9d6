package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/floodpath/builder"
	"github.com/katalvlaran/floodpath/config"
	"github.com/katalvlaran/floodpath/core"
)

// genFlags are shared by every generate subcommand.
type genFlags struct {
	seed     int64
	wmin     int
	wmax     int
	flood    float64
	pmin     float64
	pmax     float64
	start    int
	target   int
	outPath  string
	discount float64
	trials   int
}

func (g *genFlags) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.Int64Var(&g.seed, "seed", 1, "generator seed")
	f.IntVar(&g.wmin, "weight-min", 1, "smallest edge weight")
	f.IntVar(&g.wmax, "weight-max", 9, "largest edge weight")
	f.Float64Var(&g.flood, "flood-fraction", 0.3, "share of edges that may flood, in [0,1]")
	f.Float64Var(&g.pmin, "p-min", 0.1, "smallest flood probability")
	f.Float64Var(&g.pmax, "p-max", 0.6, "largest flood probability")
	f.IntVar(&g.start, "start", 0, "start vertex")
	f.IntVar(&g.target, "target", -1, "target vertex; -1 selects the last vertex")
	f.StringVarP(&g.outPath, "output", "o", "", "write YAML here instead of stdout")
	f.Float64Var(&g.discount, "discount", 0, "solver discount to record; 0 keeps the default")
	f.IntVar(&g.trials, "trials", 0, "simulation trials to record; 0 keeps the default")
}

// options validates the flags and turns them into builder options.
// Builder option constructors panic on bad input, so nothing invalid may
// reach them.
func (g *genFlags) options() ([]builder.BuilderOption, error) {
	if g.wmin < 0 || g.wmax < g.wmin {
		return nil, fmt.Errorf("weights: need 0 <= weight-min <= weight-max, got %d..%d", g.wmin, g.wmax)
	}
	if g.flood < 0 || g.flood > 1 {
		return nil, fmt.Errorf("flood-fraction %v outside [0,1]", g.flood)
	}
	if g.pmin < 0 || g.pmax > 1 || g.pmax < g.pmin {
		return nil, fmt.Errorf("probabilities: need 0 <= p-min <= p-max <= 1, got %v..%v", g.pmin, g.pmax)
	}

	return []builder.BuilderOption{
		builder.WithSeed(g.seed),
		builder.WithWeightFn(builder.IntegerWeightFn(g.wmin, g.wmax)),
		builder.WithFlooding(g.flood, builder.UniformProbabilityFn(g.pmin, g.pmax)),
	}, nil
}

func newGenerateCmd(a *app) *cobra.Command {
	gf := &genFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit a YAML config for a generated flood network",
	}
	gf.register(cmd)

	// Each topology owns its flag variables.
	add := func(use, short string, bind func(*pflag.FlagSet) func() builder.Constructor) {
		sub := &cobra.Command{Use: use, Short: short, Args: cobra.NoArgs}
		con := bind(sub.Flags())
		sub.RunE = func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd, gf, con())
		}
		cmd.AddCommand(sub)
	}

	add("path", "Simple path 0-1-...-(n-1)", func(f *pflag.FlagSet) func() builder.Constructor {
		n := f.Int("n", 5, "vertices")
		return func() builder.Constructor { return builder.Path(*n) }
	})
	add("cycle", "Simple cycle over n vertices", func(f *pflag.FlagSet) func() builder.Constructor {
		n := f.Int("n", 6, "vertices")
		return func() builder.Constructor { return builder.Cycle(*n) }
	})
	add("grid", "rows×cols street grid; vertex r·cols+c", func(f *pflag.FlagSet) func() builder.Constructor {
		rows := f.Int("rows", 3, "grid rows")
		cols := f.Int("cols", 3, "grid columns")
		return func() builder.Constructor { return builder.Grid(*rows, *cols) }
	})
	add("ladder", "Two parallel roads joined by rungs", func(f *pflag.FlagSet) func() builder.Constructor {
		rungs := f.Int("rungs", 3, "rungs")
		return func() builder.Constructor { return builder.Ladder(*rungs) }
	})
	add("random", "Random sparse network", func(f *pflag.FlagSet) func() builder.Constructor {
		n := f.Int("n", 8, "vertices")
		density := f.Float64("density", 0.3, "edge probability per vertex pair")
		return func() builder.Constructor { return builder.RandomSparse(*n, *density) }
	})

	return cmd
}

func (a *app) generate(cmd *cobra.Command, gf *genFlags, con builder.Constructor) error {
	bopts, err := gf.options()
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph([]core.GraphOption{core.WithMultiEdges()}, bopts, con)
	if err != nil {
		return err
	}
	target := gf.target
	if target < 0 {
		target = g.VertexCount() - 1
	}

	cfg := config.FromGraph(g, gf.start, target)
	if gf.discount != 0 {
		cfg.Solver.Discount = gf.discount
	}
	if gf.trials != 0 {
		cfg.Simulation.Trials = gf.trials
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	a.log.Info("network generated",
		zap.String("topology", cmd.Name()),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("uncertain", len(g.UncertainEdges())),
	)
	if gf.outPath == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	return writeFile(gf.outPath, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
