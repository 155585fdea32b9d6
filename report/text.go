package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/floodpath/belief"
	"github.com/katalvlaran/floodpath/planner"
	"github.com/katalvlaran/floodpath/simulate"
)

const (
	ruleHeavy = "========================================"
	ruleLight = "------------------------------"
)

// Printer writes reports to one writer with a fixed colour setting.
// Write errors are sticky: after the first failure nothing more is written
// and Err returns it.
type Printer struct {
	w   io.Writer
	au  aurora.Aurora
	err error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, colour bool) *Printer {
	return &Printer{w: w, au: aurora.NewAurora(colour)}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// knowledge colours one edge state.
func (p *Printer) knowledge(k belief.Knowledge) aurora.Value {
	switch k {
	case belief.Flooded:
		return p.au.Red(k)
	case belief.Clear:
		return p.au.Green(k)
	default:
		return p.au.Yellow(k)
	}
}

// Belief prints the position and what b knows about every edge, in edge ID
// order. Deterministic edges print as "DETERMINISTIC (assumed clear)".
func (p *Printer) Belief(m *belief.Model, b belief.Belief) {
	p.printf("Position: %v\n", p.au.Bold(b.Position()))
	p.printf("Belief about edges:\n")
	for _, e := range m.Edges() {
		if e.Deterministic() {
			p.printf("  Edge %d: %v\n", e.ID, p.au.Cyan("DETERMINISTIC (assumed clear)"))
			continue
		}
		p.printf("  Edge %d: %v\n", e.ID, p.knowledge(m.EdgeStatus(b, e.ID)))
	}
}

// Plan prints the run header: belief counts, solver outcome, bounds, the
// expected cost from the start belief and the first attempt.
func (p *Printer) Plan(sol *planner.Solution) {
	res := sol.Result
	p.printf("Run %s\n", sol.RunID)
	p.printf("Beliefs: %d explored, %d with a route to the target\n", len(sol.Beliefs), res.Live)
	status := p.au.Green("converged")
	if !res.Converged {
		status = p.au.Yellow("iteration cap reached")
	}
	p.printf("Solver: %d sweeps, %v, last delta %.3g\n", res.Iterations, status, res.Delta)
	p.printf("Bounds: optimistic %s, pessimistic %s\n",
		cost(sol.Bounds.Optimistic), cost(sol.Bounds.Pessimistic))
	if v, ok := sol.ExpectedCost(); ok {
		p.printf("Expected cost from start: %v\n", p.au.Bold(fmt.Sprintf("%.3f", v)))
	} else {
		p.printf("Expected cost from start: %v\n", p.au.Red("no route"))
	}
	if a, ok := res.Policy.Action(sol.Model.Start()); ok {
		e, _ := sol.Model.Edge(a)
		p.printf("First attempt: edge %d (%d <-> %d)\n", a, e.U, e.V)
	}
}

// Values prints the Plan header followed by one line per explored belief in
// exploration order: belief, value (or "-" without a route) and the chosen
// edge.
func (p *Printer) Values(sol *planner.Solution) {
	p.Plan(sol)
	res := sol.Result
	p.printf("\nBelief State Values:\n")
	for _, b := range sol.Beliefs {
		v, ok := res.Value(b)
		val := "-"
		if ok {
			val = fmt.Sprintf("%.3f", v)
		}
		act := ""
		if a, has := res.Policy.Action(b); has {
			act = fmt.Sprintf("  attempt e%d", a)
		}
		p.printf("%-*s -> %8s%s\n", width(b), b, val, act)
	}
}

// width pads beliefs of one model to a common column.
func width(b belief.Belief) int { return 3 + 2*b.Len() }

func cost(v float64) string {
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	return fmt.Sprintf("%.3f", v)
}

// Trial prints the hidden ground truth and every step of t, followed by the
// belief it ended in and the outcome.
func (p *Printer) Trial(m *belief.Model, t *simulate.Trial) {
	p.printf("\n%s\n", ruleHeavy)
	p.printf("Simulation %d (seed %d, id %s)\n", t.Index+1, t.Seed, t.ID)
	p.printf("True flooded edges (hidden from agent):\n")
	for id, flooded := range t.GroundTruth {
		state := p.au.Green("CLEAR")
		if flooded {
			state = p.au.Red("FLOODED")
		}
		p.printf("  Edge %d: %v\n", id, state)
	}

	for i, s := range t.Steps {
		p.printf("\n%s\nStep %d\n", ruleLight, i)
		p.Belief(m, s.Belief)
		e, _ := m.Edge(s.Edge)
		p.printf("Chosen action: traverse edge %d (%d <-> %d), cost %g\n", s.Edge, e.U, e.V, s.Cost)
		if s.Flooded {
			p.printf("Observation: Edge %d is %v -> stay at %d\n", s.Edge, p.au.Red("FLOODED"), s.Next.Position())
		} else {
			p.printf("Observation: Edge %d is %v -> move to %d\n", s.Edge, p.au.Green("CLEAR"), s.Next.Position())
		}
	}

	p.printf("\n%s\n", ruleLight)
	p.Belief(m, t.Final)
	switch t.Status {
	case simulate.StatusReachedTarget:
		p.printf("\nReached target vertex: %d\n", t.Final.Position())
	case simulate.StatusNoAction:
		p.printf("\n%v\n", p.au.Red("No available action, stopping."))
	default:
		p.printf("\n%v\n", p.au.Yellow(fmt.Sprintf("Step limit exceeded after %d steps.", len(t.Steps))))
	}
	p.printf("Total cost: %g\n%s\n", t.TotalCost, ruleHeavy)
}

// Summary prints aggregate statistics of a batch.
func (p *Printer) Summary(s simulate.Summary) {
	p.printf("\nTrials: %d, reached target: %.1f%%\n", s.Trials, 100*s.ReachRate())
	statuses := make([]simulate.Status, 0, len(s.ByStatus))
	for st := range s.ByStatus {
		statuses = append(statuses, st)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	parts := make([]string, len(statuses))
	for i, st := range statuses {
		parts[i] = fmt.Sprintf("%s=%d", st, s.ByStatus[st])
	}
	p.printf("Outcomes: %s\n", strings.Join(parts, " "))
	p.printf("Cost (reached): mean %.3f, min %g, max %g\n", s.MeanCost, s.MinCost, s.MaxCost)
	p.printf("Steps: mean %.2f\n", s.MeanSteps)
}

// Belief writes a single belief rendering to w.
func Belief(w io.Writer, m *belief.Model, b belief.Belief, colour bool) error {
	p := NewPrinter(w, colour)
	p.Belief(m, b)
	return p.Err()
}

// Plan writes the run header of sol to w.
func Plan(w io.Writer, sol *planner.Solution, colour bool) error {
	p := NewPrinter(w, colour)
	p.Plan(sol)
	return p.Err()
}

// Values writes the value table of sol to w.
func Values(w io.Writer, sol *planner.Solution, colour bool) error {
	p := NewPrinter(w, colour)
	p.Values(sol)
	return p.Err()
}

// Trial writes the trace of t to w.
func Trial(w io.Writer, m *belief.Model, t *simulate.Trial, colour bool) error {
	p := NewPrinter(w, colour)
	p.Trial(m, t)
	return p.Err()
}

// Summary writes s to w.
func Summary(w io.Writer, s simulate.Summary, colour bool) error {
	p := NewPrinter(w, colour)
	p.Summary(s)
	return p.Err()
}
