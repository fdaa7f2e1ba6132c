// Package sim replays extracted operations against canonical data structure
// models, producing an append-only list of immutable state snapshots. Every
// transition is total: an invalid operation leaves the state untouched and
// records a diagnostic instead of failing.
package sim

import (
	"errors"
	"fmt"

	"github.com/ivlev/note2video/internal/extract"
)

// ErrStructureMix reports an operation list spanning more than one structure
// kind. Extraction always emits homogeneous lists, so hitting this means an
// extractor defect; the run aborts before any rendering.
var ErrStructureMix = errors.New("operation list mixes structure kinds")

// State is an immutable value of one structure model. Apply never mutates
// its input; it clones and returns a new value.
type State interface {
	Kind() extract.Kind
	Clone() State
	// Summary renders the state compactly for transcripts, e.g. "[10 20]".
	Summary() string
}

// Snapshot records the structure state immediately after one operation, or
// the empty initial state when Op is nil.
type Snapshot struct {
	Index      int
	Op         *extract.Operation
	State      State
	Highlight  string
	Diagnostic string
}

// Simulator applies operations of a single structure kind.
type Simulator interface {
	Kind() extract.Kind
	Initial() State
	// Apply returns the successor state, the value or node just touched
	// (empty when nothing is highlighted) and a human-readable diagnostic.
	Apply(st State, op extract.Operation) (State, string, string)
}

// New returns the simulator for a structure kind.
func New(kind extract.Kind) (Simulator, error) {
	switch kind {
	case extract.KindStack:
		return stackSim{}, nil
	case extract.KindQueue:
		return queueSim{}, nil
	case extract.KindArray:
		return arraySim{}, nil
	case extract.KindList:
		return listSim{}, nil
	case extract.KindTree:
		return treeSim{}, nil
	case extract.KindGraph:
		return graphSim{}, nil
	case extract.KindHash:
		return hashSim{}, nil
	}
	return nil, fmt.Errorf("no simulator for kind %v", kind)
}

// Run replays ops from the empty initial state and returns one snapshot per
// operation plus the initial one. Replaying the same list always yields an
// identical snapshot sequence.
func Run(ops []extract.Operation) ([]Snapshot, error) {
	if len(ops) == 0 {
		return nil, errors.New("empty operation list")
	}
	kind := ops[0].Kind()
	for _, op := range ops[1:] {
		if op.Kind() != kind {
			return nil, fmt.Errorf("%w: %v and %v", ErrStructureMix, kind, op.Kind())
		}
	}

	s, err := New(kind)
	if err != nil {
		return nil, err
	}

	snaps := make([]Snapshot, 0, len(ops)+1)
	st := s.Initial()
	snaps = append(snaps, Snapshot{Index: 0, State: st, Diagnostic: "initial empty " + kind.String()})

	for i := range ops {
		op := ops[i]
		next, highlight, diag := s.Apply(st, op)
		snaps = append(snaps, Snapshot{
			Index:      i + 1,
			Op:         &op,
			State:      next,
			Highlight:  highlight,
			Diagnostic: diag,
		})
		st = next
	}
	return snaps, nil
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
