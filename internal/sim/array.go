package sim

import (
	"fmt"
	"strings"

	"github.com/ivlev/note2video/internal/extract"
)

// ArrayCapacity is the fixed cell count of the array model. Rendering draws
// every cell, so the model mirrors the on-screen layout exactly.
const ArrayCapacity = 10

// ArrayState holds array elements in index order, never longer than
// ArrayCapacity.
type ArrayState struct {
	Items []string
}

func (a *ArrayState) Kind() extract.Kind { return extract.KindArray }

func (a *ArrayState) Clone() State {
	return &ArrayState{Items: cloneStrings(a.Items)}
}

func (a *ArrayState) Summary() string {
	return "[" + strings.Join(a.Items, " ") + "]"
}

type arraySim struct{}

func (arraySim) Kind() extract.Kind { return extract.KindArray }

func (arraySim) Initial() State { return &ArrayState{} }

// clampIndex folds any requested index into the valid range for a slice of
// length n, so a wildly out-of-range note still animates something sensible.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func (arraySim) Apply(st State, op extract.Operation) (State, string, string) {
	cur := st.(*ArrayState)
	next := cur.Clone().(*ArrayState)

	switch op.Code {
	case extract.OpArrayAppend:
		if len(next.Items) >= ArrayCapacity {
			return next, "", fmt.Sprintf("append %s skipped, array full", op.Value)
		}
		next.Items = append(next.Items, op.Value)
		return next, op.Value, fmt.Sprintf("appended %s at index %d", op.Value, len(next.Items)-1)
	case extract.OpArrayInsert:
		if len(next.Items) >= ArrayCapacity {
			return next, "", fmt.Sprintf("insert %s skipped, array full", op.Value)
		}
		idx := clampIndex(op.Index, len(next.Items))
		next.Items = append(next.Items, "")
		copy(next.Items[idx+1:], next.Items[idx:])
		next.Items[idx] = op.Value
		diag := fmt.Sprintf("inserted %s at index %d", op.Value, idx)
		if idx != op.Index {
			diag += fmt.Sprintf(" (requested %d clamped)", op.Index)
		}
		return next, op.Value, diag
	case extract.OpArrayDelete:
		if len(next.Items) == 0 {
			return next, "", "delete on empty array ignored"
		}
		if op.Index < 0 || op.Index >= len(next.Items) {
			return next, "", fmt.Sprintf("delete at index %d out of range ignored", op.Index)
		}
		removed := next.Items[op.Index]
		next.Items = append(next.Items[:op.Index], next.Items[op.Index+1:]...)
		return next, removed, fmt.Sprintf("deleted %s from index %d", removed, op.Index)
	}
	return next, "", fmt.Sprintf("unsupported array operation %s ignored", op)
}
