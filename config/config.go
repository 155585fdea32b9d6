// Package config loads planner configuration from YAML.
//
// File format (the flood-network format with optional planner sections):
//
//	vertices:
//	  N: 4
//	edges:
//	  - "0,1,1,0.2"     # u,v,w,p
//	  - "1,3,1,0,0.5"   # legacy: p in the 5th field when it is non-empty
//	start: 0
//	target: 3
//	solver:     {discount: 0.95, epsilon: 1e-6, max_iterations: 500, workers: 1}
//	simulation: {trials: 1, max_steps: 0, seed: 0, workers: 1}
//	log_level: info
//
// Precedence: environment (FLOODPATH_*) > file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/floodpath/core"
	"github.com/katalvlaran/floodpath/valueiter"
)

// Sentinel errors.
var (
	// ErrMalformedEdge indicates an edge string that is not "u,v,w,p" or the
	// legacy 5-field form.
	ErrMalformedEdge = errors.New("config: malformed edge")

	// ErrInvalidConfig indicates a configuration that fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Environment variables read by Load and ApplyEnv.
const (
	EnvDiscount      = "FLOODPATH_DISCOUNT"
	EnvEpsilon       = "FLOODPATH_EPSILON"
	EnvMaxIterations = "FLOODPATH_MAX_ITERATIONS"
	EnvTrials        = "FLOODPATH_TRIALS"
	EnvSeed          = "FLOODPATH_SEED"
	EnvLogLevel      = "FLOODPATH_LOG_LEVEL"
)

// Config is the full planner configuration.
type Config struct {
	Vertices   Vertices   `yaml:"vertices"`
	Edges      []string   `yaml:"edges"`
	Start      int        `yaml:"start" validate:"gte=0"`
	Target     int        `yaml:"target" validate:"gte=0"`
	Solver     Solver     `yaml:"solver"`
	Simulation Simulation `yaml:"simulation"`
	LogLevel   string     `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Vertices holds the vertex count under the key "N".
type Vertices struct {
	N int `yaml:"N" validate:"gte=1"`
}

// Solver holds value-iteration parameters.
type Solver struct {
	Discount      float64 `yaml:"discount" validate:"gt=0,lte=1"`
	Epsilon       float64 `yaml:"epsilon" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"gte=1"`
	Workers       int     `yaml:"workers" validate:"gte=0"`
}

// Simulation holds simulator parameters. MaxSteps 0 selects 3·|V|·(k+1).
type Simulation struct {
	Trials   int   `yaml:"trials" validate:"gte=1"`
	MaxSteps int   `yaml:"max_steps" validate:"gte=0"`
	Seed     int64 `yaml:"seed"`
	Workers  int   `yaml:"workers" validate:"gte=0"`
}

// Default returns the configuration used for absent keys.
func Default() Config {
	return Config{
		Solver: Solver{
			Discount:      valueiter.DefaultDiscount,
			Epsilon:       valueiter.DefaultEpsilon,
			MaxIterations: valueiter.DefaultMaxIterations,
			Workers:       1,
		},
		Simulation: Simulation{Trials: 1, Workers: 1},
		LogLevel:   "info",
	}
}

var validate = validator.New()

// Load reads path, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes and validates YAML without consulting the environment.
func Parse(data []byte) (*Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from the environment. lookup is usually
// os.LookupEnv. Unparsable values are errors rather than silently ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	float := func(key string, dst *float64) error {
		if v, ok := lookup(key); ok && v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
			}
			*dst = f
		}
		return nil
	}
	integer := func(key string, dst *int) error {
		if v, ok := lookup(key); ok && v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
			}
			*dst = i
		}
		return nil
	}

	if err := float(EnvDiscount, &c.Solver.Discount); err != nil {
		return err
	}
	if err := float(EnvEpsilon, &c.Solver.Epsilon); err != nil {
		return err
	}
	if err := integer(EnvMaxIterations, &c.Solver.MaxIterations); err != nil {
		return err
	}
	if err := integer(EnvTrials, &c.Simulation.Trials); err != nil {
		return err
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Simulation.Seed = s
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}

	return nil
}

// Validate checks struct tags, then cross-field constraints: start, target
// and every edge endpoint must be below N.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	n := c.Vertices.N
	if c.Start >= n {
		return fmt.Errorf("%w: start %d not below N=%d", ErrInvalidConfig, c.Start, n)
	}
	if c.Target >= n {
		return fmt.Errorf("%w: target %d not below N=%d", ErrInvalidConfig, c.Target, n)
	}
	for i, s := range c.Edges {
		e, err := ParseEdge(s)
		if err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
		if e.U >= n || e.V >= n {
			return fmt.Errorf("%w: edge %d (%q) endpoint not below N=%d", ErrInvalidConfig, i, s, n)
		}
	}

	return nil
}

// ParseEdge parses "u,v,w,p" or the legacy "u,v,w,x,p" (p taken from the
// fifth field when it is present and non-empty, otherwise from the fourth).
// Fields are trimmed. Range checks on w and p are left to core.
func ParseEdge(s string) (core.Edge, error) {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 4 {
		return core.Edge{}, fmt.Errorf("%w: %q: want u,v,w,p", ErrMalformedEdge, s)
	}

	u, err := strconv.Atoi(parts[0])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: %q: u: %v", ErrMalformedEdge, s, err)
	}
	v, err := strconv.Atoi(parts[1])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: %q: v: %v", ErrMalformedEdge, s, err)
	}
	if u < 0 || v < 0 {
		return core.Edge{}, fmt.Errorf("%w: %q: negative vertex", ErrMalformedEdge, s)
	}
	w, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: %q: w: %v", ErrMalformedEdge, s, err)
	}
	pField := parts[3]
	if len(parts) >= 5 && parts[4] != "" {
		pField = parts[4]
	}
	p, err := strconv.ParseFloat(pField, 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: %q: p: %v", ErrMalformedEdge, s, err)
	}

	return core.Edge{U: u, V: v, Weight: w, Probability: p}, nil
}

// FormatEdge renders e in the four-field form accepted by ParseEdge.
func FormatEdge(e core.Edge) string {
	return fmt.Sprintf("%d,%d,%s,%s", e.U, e.V,
		strconv.FormatFloat(e.Weight, 'g', -1, 64),
		strconv.FormatFloat(e.Probability, 'g', -1, 64))
}

// ParsedEdges parses every edge string in order.
func (c *Config) ParsedEdges() ([]core.Edge, error) {
	edges := make([]core.Edge, 0, len(c.Edges))
	for i, s := range c.Edges {
		e, err := ParseEdge(s)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// Graph builds the flood network. Parallel edges are allowed, matching the
// edge-list format, which never forbade them.
func (c *Config) Graph() (*core.Graph, error) {
	edges, err := c.ParsedEdges()
	if err != nil {
		return nil, err
	}
	g, err := core.FromEdges(c.Vertices.N, edges, core.WithMultiEdges())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return g, nil
}

// FromGraph describes g as a Config with default planner sections.
func FromGraph(g *core.Graph, start, target int) Config {
	cfg := Default()
	cfg.Vertices.N = g.VertexCount()
	cfg.Start, cfg.Target = start, target
	for _, e := range g.Edges() {
		cfg.Edges = append(cfg.Edges, FormatEdge(e))
	}

	return cfg
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
