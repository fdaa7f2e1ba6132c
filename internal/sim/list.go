package sim

import (
	"fmt"
	"strings"

	"github.com/ivlev/note2video/internal/extract"
)

// ListState holds singly linked list values head to tail.
type ListState struct {
	Items []string
}

func (l *ListState) Kind() extract.Kind { return extract.KindList }

func (l *ListState) Clone() State {
	return &ListState{Items: cloneStrings(l.Items)}
}

func (l *ListState) Summary() string {
	if len(l.Items) == 0 {
		return "HEAD -> NULL"
	}
	return "HEAD -> " + strings.Join(l.Items, " -> ") + " -> NULL"
}

type listSim struct{}

func (listSim) Kind() extract.Kind { return extract.KindList }

func (listSim) Initial() State { return &ListState{} }

func (listSim) Apply(st State, op extract.Operation) (State, string, string) {
	cur := st.(*ListState)
	next := cur.Clone().(*ListState)

	switch op.Code {
	case extract.OpListInsertHead:
		next.Items = append([]string{op.Value}, next.Items...)
		return next, op.Value, fmt.Sprintf("inserted %s at head, length %d", op.Value, len(next.Items))
	case extract.OpListAppendTail:
		next.Items = append(next.Items, op.Value)
		return next, op.Value, fmt.Sprintf("appended %s at tail, length %d", op.Value, len(next.Items))
	case extract.OpListDeleteHead:
		if len(next.Items) == 0 {
			return next, "", "delete on empty list ignored"
		}
		head := next.Items[0]
		next.Items = next.Items[1:]
		return next, head, fmt.Sprintf("deleted head %s, length %d", head, len(next.Items))
	}
	return next, "", fmt.Sprintf("unsupported list operation %s ignored", op)
}
