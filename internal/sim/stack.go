package sim

import (
	"fmt"
	"strings"

	"github.com/ivlev/note2video/internal/extract"
)

// StackState holds stack items bottom to top.
type StackState struct {
	Items []string
}

func (s *StackState) Kind() extract.Kind { return extract.KindStack }

func (s *StackState) Clone() State {
	return &StackState{Items: cloneStrings(s.Items)}
}

func (s *StackState) Summary() string {
	return "[" + strings.Join(s.Items, " ") + "]"
}

type stackSim struct{}

func (stackSim) Kind() extract.Kind { return extract.KindStack }

func (stackSim) Initial() State { return &StackState{} }

func (stackSim) Apply(st State, op extract.Operation) (State, string, string) {
	cur := st.(*StackState)
	next := cur.Clone().(*StackState)

	switch op.Code {
	case extract.OpPush:
		next.Items = append(next.Items, op.Value)
		return next, op.Value, fmt.Sprintf("pushed %s, size %d", op.Value, len(next.Items))
	case extract.OpPop:
		if len(next.Items) == 0 {
			return next, "", "pop on empty stack ignored"
		}
		top := next.Items[len(next.Items)-1]
		next.Items = next.Items[:len(next.Items)-1]
		return next, top, fmt.Sprintf("popped %s, size %d", top, len(next.Items))
	}
	return next, "", fmt.Sprintf("unsupported stack operation %s ignored", op)
}
