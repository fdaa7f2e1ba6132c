package sim

import (
	"fmt"
	"strings"

	"github.com/ivlev/note2video/internal/extract"
)

// QueueState holds queue items front to rear.
type QueueState struct {
	Items []string
}

func (q *QueueState) Kind() extract.Kind { return extract.KindQueue }

func (q *QueueState) Clone() State {
	return &QueueState{Items: cloneStrings(q.Items)}
}

func (q *QueueState) Summary() string {
	return "[" + strings.Join(q.Items, " ") + "]"
}

type queueSim struct{}

func (queueSim) Kind() extract.Kind { return extract.KindQueue }

func (queueSim) Initial() State { return &QueueState{} }

func (queueSim) Apply(st State, op extract.Operation) (State, string, string) {
	cur := st.(*QueueState)
	next := cur.Clone().(*QueueState)

	switch op.Code {
	case extract.OpEnqueue:
		next.Items = append(next.Items, op.Value)
		return next, op.Value, fmt.Sprintf("enqueued %s, size %d", op.Value, len(next.Items))
	case extract.OpDequeue:
		if len(next.Items) == 0 {
			return next, "", "dequeue on empty queue ignored"
		}
		front := next.Items[0]
		next.Items = next.Items[1:]
		return next, front, fmt.Sprintf("dequeued %s, size %d", front, len(next.Items))
	}
	return next, "", fmt.Sprintf("unsupported queue operation %s ignored", op)
}
