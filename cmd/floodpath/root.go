package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/floodpath/config"
	"github.com/katalvlaran/floodpath/metrics"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	logLevel    string
	metricsFile string
	noColor     bool

	level   zap.AtomicLevel
	log     *zap.Logger
	metrics *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "floodpath",
		Short:         "Plan routes over networks whose roads may be flooded",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown()
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"debug, info, warn or error (default: config log_level, then info)")
	root.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "",
		"write Prometheus text exposition to this file on exit")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(newSolveCmd(a), newSimulateCmd(a), newGenerateCmd(a))

	return root
}

// setup builds the production logger on stderr and the metrics registry.
func (a *app) setup() error {
	a.level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if a.logLevel != "" {
		if err := a.level.UnmarshalText([]byte(a.logLevel)); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = a.level
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.Sampling = nil
	log, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.log = log
	a.metrics = metrics.New()

	return nil
}

func (a *app) teardown() error {
	defer func() { _ = a.log.Sync() }()
	if a.metricsFile == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Debug("metrics written", zap.String("path", a.metricsFile))

	return nil
}

// loadConfig reads the file behind --config and adopts its log level unless
// --log-level was given.
func (a *app) loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return nil, fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if a.logLevel == "" {
		if err := a.level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("log_level: %w", err)
		}
	}
	a.log.Debug("config loaded",
		zap.String("path", path),
		zap.Int("vertices", cfg.Vertices.N),
		zap.Int("edges", len(cfg.Edges)),
	)

	return cfg, nil
}

// colour reports whether text output should carry ANSI colours.
func (a *app) colour(cmd *cobra.Command) bool {
	if a.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()

	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// writeFile creates path and hands it to write, reporting the first of the
// write and close errors.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return write(f)
}
