package belief

import (
	"errors"
	"fmt"
	"strings"
)

// Knowledge is what the agent currently knows about one uncertain edge.
// It is a closed enumeration; the zero value is Unknown.
type Knowledge uint8

const (
	// Unknown means the edge has never been attempted.
	Unknown Knowledge = iota
	// Flooded means an attempt failed; the edge stays impassable for the episode.
	Flooded
	// Clear means an attempt succeeded; the edge stays passable for the episode.
	Clear
)

// String returns UNKNOWN, FLOODED or CLEAR.
func (k Knowledge) String() string {
	switch k {
	case Unknown:
		return "UNKNOWN"
	case Flooded:
		return "FLOODED"
	case Clear:
		return "CLEAR"
	default:
		return fmt.Sprintf("Knowledge(%d)", uint8(k))
	}
}

// Known reports whether k carries information (Flooded or Clear).
func (k Knowledge) Known() bool { return k == Flooded || k == Clear }

// valid reports whether k is one of the three declared values.
func (k Knowledge) valid() bool { return k <= Clear }

// ErrInformationLoss is the panic value raised when a known entry would be
// overwritten by Unknown or by the opposite observation.
var ErrInformationLoss = errors.New("belief: known edge status cannot change")

// Belief is the agent's position together with its knowledge about every
// uncertain edge. A Belief is an immutable value: it is comparable, safe to
// use as a map key, and every update returns a new Belief.
type Belief struct {
	pos  int
	know string // one byte per uncertain edge, holding a Knowledge value
}

// New returns a Belief at pos with the given knowledge vector.
// It panics if a value in know is not a declared Knowledge.
func New(pos int, know []Knowledge) Belief {
	buf := make([]byte, len(know))
	for i, k := range know {
		if !k.valid() {
			panic(fmt.Sprintf("belief: invalid knowledge %d at %d", uint8(k), i))
		}
		buf[i] = byte(k)
	}

	return Belief{pos: pos, know: string(buf)}
}

// Position returns the vertex the agent occupies.
func (b Belief) Position() int { return b.pos }

// Len returns the knowledge vector length k.
func (b Belief) Len() int { return len(b.know) }

// Knowledge returns the entry for uncertain index i.
func (b Belief) Knowledge(i int) Knowledge { return Knowledge(b.know[i]) }

// Vector returns a copy of the knowledge vector.
func (b Belief) Vector() []Knowledge {
	out := make([]Knowledge, len(b.know))
	for i := 0; i < len(b.know); i++ {
		out[i] = Knowledge(b.know[i])
	}

	return out
}

// Known counts entries that are no longer Unknown.
func (b Belief) Known() int {
	n := 0
	for i := 0; i < len(b.know); i++ {
		if Knowledge(b.know[i]).Known() {
			n++
		}
	}

	return n
}

// MovedTo returns b with the position replaced by v.
func (b Belief) MovedTo(v int) Belief { return Belief{pos: v, know: b.know} }

// With returns b with entry i set to k. Setting an entry to its current
// value is a no-op. It panics with ErrInformationLoss when a known entry
// would change, since information is only ever gained within an episode.
func (b Belief) With(i int, k Knowledge) Belief {
	cur := Knowledge(b.know[i])
	if cur == k {
		return b
	}
	if cur.Known() || !k.valid() {
		panic(fmt.Errorf("%w: index %d %s -> %s", ErrInformationLoss, i, cur, k))
	}
	buf := []byte(b.know)
	buf[i] = byte(k)

	return Belief{pos: b.pos, know: string(buf)}
}

// Refines reports whether b keeps every known entry of prev.
// Both beliefs must have the same length.
func (b Belief) Refines(prev Belief) bool {
	if len(b.know) != len(prev.know) {
		return false
	}
	for i := 0; i < len(prev.know); i++ {
		if Knowledge(prev.know[i]).Known() && prev.know[i] != b.know[i] {
			return false
		}
	}

	return true
}

// String renders the belief compactly, e.g. "(3 U F C)".
func (b Belief) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	fmt.Fprintf(&sb, "%d", b.pos)
	for i := 0; i < len(b.know); i++ {
		sb.WriteByte(' ')
		sb.WriteByte(Knowledge(b.know[i]).String()[0])
	}
	sb.WriteByte(')')

	return sb.String()
}
