package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodpath/core"
)

const networkYAML = `
vertices:
  N: 4
edges:
  - "0,1,1,0.2"
  - "1,3,1,0,0.3"
  - "0, 2, 5, 0"
  - "2,3,5,0,"
start: 0
target: 3
`

func TestParseEdge(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want core.Edge
	}{
		{"four fields", "0,1,10,0.5", core.Edge{U: 0, V: 1, Weight: 10, Probability: 0.5}},
		{"legacy fifth field", "1,3,2,0,0.25", core.Edge{U: 1, V: 3, Weight: 2, Probability: 0.25}},
		{"empty fifth field", "1,3,2,0.4,", core.Edge{U: 1, V: 3, Weight: 2, Probability: 0.4}},
		{"spaces", " 2 , 0 , 1.5 , 0 ", core.Edge{U: 2, V: 0, Weight: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEdge(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEdgeMalformed(t *testing.T) {
	for _, in := range []string{"", "0,1,2", "a,1,2,0", "0,b,2,0", "0,1,w,0", "0,1,2,p", "-1,1,2,0", "0,1,2,0,x"} {
		_, err := ParseEdge(in)
		assert.ErrorIs(t, err, ErrMalformedEdge, "input %q", in)
	}
}

func TestFormatEdgeRoundTrip(t *testing.T) {
	e := core.Edge{U: 3, V: 7, Weight: 2.5, Probability: 0.125}
	got, err := ParseEdge(FormatEdge(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestParseNetwork(t *testing.T) {
	cfg, err := Parse([]byte(networkYAML))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Vertices.N)
	assert.Equal(t, 0, cfg.Start)
	assert.Equal(t, 3, cfg.Target)
	assert.Equal(t, Default().Solver, cfg.Solver)
	assert.Equal(t, Default().Simulation, cfg.Simulation)
	assert.Equal(t, "info", cfg.LogLevel)

	g, err := cfg.Graph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []int{0, 1}, g.UncertainEdges())

	e, err := g.Edge(1)
	require.NoError(t, err)
	assert.Equal(t, 0.3, e.Probability)
}

func TestParsePlannerSections(t *testing.T) {
	doc := networkYAML + `
solver:
  discount: 1
  epsilon: 1e-9
  max_iterations: 50
  workers: 4
simulation:
  trials: 20
  max_steps: 12
  seed: 42
log_level: debug
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, Solver{Discount: 1, Epsilon: 1e-9, MaxIterations: 50, Workers: 4}, cfg.Solver)
	assert.Equal(t, Simulation{Trials: 20, MaxSteps: 12, Seed: 42, Workers: 1}, cfg.Simulation)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		err    error
	}{
		{"zero vertices", func(c *Config) { c.Vertices.N = 0 }, ErrInvalidConfig},
		{"start out of range", func(c *Config) { c.Start = 4 }, ErrInvalidConfig},
		{"target out of range", func(c *Config) { c.Target = 9 }, ErrInvalidConfig},
		{"negative start", func(c *Config) { c.Start = -1 }, ErrInvalidConfig},
		{"edge endpoint out of range", func(c *Config) { c.Edges = append(c.Edges, "0,4,1,0") }, ErrInvalidConfig},
		{"malformed edge", func(c *Config) { c.Edges = append(c.Edges, "0,1") }, ErrMalformedEdge},
		{"discount zero", func(c *Config) { c.Solver.Discount = 0 }, ErrInvalidConfig},
		{"discount above one", func(c *Config) { c.Solver.Discount = 1.5 }, ErrInvalidConfig},
		{"epsilon zero", func(c *Config) { c.Solver.Epsilon = 0 }, ErrInvalidConfig},
		{"no iterations", func(c *Config) { c.Solver.MaxIterations = 0 }, ErrInvalidConfig},
		{"no trials", func(c *Config) { c.Simulation.Trials = 0 }, ErrInvalidConfig},
		{"negative max steps", func(c *Config) { c.Simulation.MaxSteps = -1 }, ErrInvalidConfig},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(networkYAML))
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.err)
		})
	}
}

func TestGraphRejectsBadProbability(t *testing.T) {
	cfg, err := Parse([]byte(networkYAML))
	require.NoError(t, err)
	cfg.Edges = append(cfg.Edges, "0,3,1,1.5")
	_, err = cfg.Graph()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDiscount:      "1",
		EnvEpsilon:       "0.001",
		EnvMaxIterations: "7",
		EnvTrials:        "3",
		EnvSeed:          "99",
		EnvLogLevel:      "WARN",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 1.0, cfg.Solver.Discount)
	assert.Equal(t, 0.001, cfg.Solver.Epsilon)
	assert.Equal(t, 7, cfg.Solver.MaxIterations)
	assert.Equal(t, 3, cfg.Simulation.Trials)
	assert.Equal(t, int64(99), cfg.Simulation.Seed)
	assert.Equal(t, "warn", cfg.LogLevel)

	env[EnvTrials] = "many"
	assert.ErrorIs(t, cfg.ApplyEnv(lookup), ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(networkYAML), 0o600))

	t.Setenv(EnvSeed, "5")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.Simulation.Seed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("vertices: [1"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestFromGraphMarshalRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(networkYAML))
	require.NoError(t, err)
	g, err := cfg.Graph()
	require.NoError(t, err)

	out := FromGraph(g, 0, 3)
	data, err := out.Marshal()
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	g2, err := back.Graph()
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), g2.Edges())
	assert.Equal(t, 3, back.Target)
}
