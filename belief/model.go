package belief

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/floodpath/core"
)

// Sentinel errors returned by Model.
var (
	// ErrNilGraph indicates NewModel received a nil graph.
	ErrNilGraph = errors.New("belief: graph is nil")

	// ErrVertexOutOfRange indicates start or target lies outside the graph.
	ErrVertexOutOfRange = errors.New("belief: vertex out of range")

	// ErrIllegalAction indicates an edge that cannot be attempted from the
	// belief: unknown ID, not incident to the position, or known flooded.
	// Reaching it means a caller broke the LegalActions contract.
	ErrIllegalAction = errors.New("belief: illegal action")

	// ErrInconsistentObservation indicates an observation that contradicts
	// what the model already knows (a deterministic or known-clear edge
	// reported as flooded).
	ErrInconsistentObservation = errors.New("belief: observation contradicts knowledge")

	// ErrBeliefShape indicates a belief whose knowledge vector length does
	// not match the model's uncertain-edge count.
	ErrBeliefShape = errors.New("belief: knowledge length mismatch")
)

// Outcome is one stochastic result of attempting an edge.
type Outcome struct {
	Probability float64
	Next        Belief
	Cost        float64
}

// Model is the belief-space MDP over a flood network. It is immutable after
// NewModel and safe for concurrent use.
type Model struct {
	n         int
	start     int
	target    int
	edges     []core.Edge
	incident  [][]int // vertex -> incident edge IDs, ascending
	uncertain []int   // uncertain index -> edge ID
	slot      []int   // edge ID -> uncertain index, -1 for deterministic edges
}

// NewModel snapshots g and fixes the uncertain-edge index (ascending edge ID).
// Later mutations of g do not affect the model.
func NewModel(g *core.Graph, start, target int) (*Model, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d n=%d", ErrVertexOutOfRange, start, n)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target=%d n=%d", ErrVertexOutOfRange, target, n)
	}

	edges := g.Edges()
	m := &Model{
		n:        n,
		start:    start,
		target:   target,
		edges:    edges,
		incident: make([][]int, n),
		slot:     make([]int, len(edges)),
	}
	for _, e := range edges {
		m.incident[e.U] = append(m.incident[e.U], e.ID)
		m.incident[e.V] = append(m.incident[e.V], e.ID)
		if e.Deterministic() {
			m.slot[e.ID] = -1
			continue
		}
		m.slot[e.ID] = len(m.uncertain)
		m.uncertain = append(m.uncertain, e.ID)
	}

	return m, nil
}

// Vertices returns the vertex count.
func (m *Model) Vertices() int { return m.n }

// StartVertex returns the start vertex.
func (m *Model) StartVertex() int { return m.start }

// Target returns the target vertex.
func (m *Model) Target() int { return m.target }

// Edges returns a copy of the edge catalog.
func (m *Model) Edges() []core.Edge { return append([]core.Edge(nil), m.edges...) }

// Edge returns the edge with the given ID.
func (m *Model) Edge(id int) (core.Edge, bool) {
	if id < 0 || id >= len(m.edges) {
		return core.Edge{}, false
	}

	return m.edges[id], true
}

// Uncertain returns the uncertain-edge index: position i holds the edge ID
// whose status is tracked by knowledge entry i.
func (m *Model) Uncertain() []int { return append([]int(nil), m.uncertain...) }

// UncertainIndex maps an edge ID to its knowledge slot.
// ok is false for deterministic or unknown edges.
func (m *Model) UncertainIndex(edgeID int) (int, bool) {
	if edgeID < 0 || edgeID >= len(m.slot) || m.slot[edgeID] < 0 {
		return 0, false
	}

	return m.slot[edgeID], true
}

// Start returns the initial belief: the start vertex with every entry Unknown.
func (m *Model) Start() Belief {
	return New(m.start, make([]Knowledge, len(m.uncertain)))
}

// IsTerminal reports whether b sits on the target, regardless of knowledge.
func (m *Model) IsTerminal(b Belief) bool { return b.pos == m.target }

// EdgeStatus returns what b knows about edge id. Deterministic edges are
// always Clear.
func (m *Model) EdgeStatus(b Belief, id int) Knowledge {
	if s, ok := m.UncertainIndex(id); ok {
		return b.Knowledge(s)
	}

	return Clear
}

// LegalActions returns the edges that may be attempted from b, in ascending
// edge ID order. An incident edge is legal unless it is known Flooded.
// This order is the fixed action order used for tie-breaking.
func (m *Model) LegalActions(b Belief) []int {
	if b.pos < 0 || b.pos >= m.n || b.Len() != len(m.uncertain) {
		return nil
	}
	var acts []int
	for _, id := range m.incident[b.pos] {
		if m.EdgeStatus(b, id) == Flooded {
			continue // known blocked
		}
		acts = append(acts, id)
	}

	return acts
}

// Observe applies the result of attempting edge id from b and returns the
// next belief. A flooded attempt leaves the agent in place and marks the
// edge Flooded; a clear attempt moves the agent across and, for an
// uncertain edge, marks it Clear. This is the only belief-update rule: both
// Transitions and the simulator go through it.
func (m *Model) Observe(b Belief, id int, flooded bool) (Belief, error) {
	e, err := m.attemptable(b, id)
	if err != nil {
		return Belief{}, err
	}
	s, uncertain := m.UncertainIndex(id)

	if flooded {
		if !uncertain || b.Knowledge(s) == Clear {
			return Belief{}, fmt.Errorf("%w: edge %d reported flooded", ErrInconsistentObservation, id)
		}
		return b.With(s, Flooded), nil
	}

	next, _ := e.Other(b.pos)
	nb := b.MovedTo(next)
	if uncertain {
		nb = nb.With(s, Clear)
	}

	return nb, nil
}

// Transitions returns every outcome of attempting edge id from b.
// Probabilities sum to 1. The weight is charged on every outcome, including
// a failed attempt that leaves the agent in place.
//
//   - deterministic or known Clear: one outcome, move, probability 1.
//   - Unknown with flood probability p: (p, stay + Flooded) then
//     (1-p, move + Clear); an outcome with zero probability is omitted.
//   - known Flooded, non-incident or unknown edge: ErrIllegalAction.
func (m *Model) Transitions(b Belief, id int) ([]Outcome, error) {
	e, err := m.attemptable(b, id)
	if err != nil {
		return nil, err
	}

	if m.EdgeStatus(b, id) == Clear {
		next, err := m.Observe(b, id, false)
		if err != nil {
			return nil, err
		}
		return []Outcome{{Probability: 1, Next: next, Cost: e.Weight}}, nil
	}

	out := make([]Outcome, 0, 2)
	if p := e.Probability; p > 0 {
		stay, err := m.Observe(b, id, true)
		if err != nil {
			return nil, err
		}
		out = append(out, Outcome{Probability: p, Next: stay, Cost: e.Weight})
	}
	if q := 1 - e.Probability; q > 0 {
		move, err := m.Observe(b, id, false)
		if err != nil {
			return nil, err
		}
		out = append(out, Outcome{Probability: q, Next: move, Cost: e.Weight})
	}

	return out, nil
}

// attemptable validates that edge id may be attempted from b.
func (m *Model) attemptable(b Belief, id int) (core.Edge, error) {
	if b.Len() != len(m.uncertain) {
		return core.Edge{}, fmt.Errorf("%w: got %d want %d", ErrBeliefShape, b.Len(), len(m.uncertain))
	}
	e, ok := m.Edge(id)
	if !ok {
		return core.Edge{}, fmt.Errorf("%w: edge %d does not exist", ErrIllegalAction, id)
	}
	if !e.Incident(b.pos) {
		return core.Edge{}, fmt.Errorf("%w: edge %d not incident to %d", ErrIllegalAction, id, b.pos)
	}
	if m.EdgeStatus(b, id) == Flooded {
		return core.Edge{}, fmt.Errorf("%w: edge %d known flooded", ErrIllegalAction, id)
	}

	return e, nil
}
