package extract

import "fmt"

// Kind identifies the data structure a run of operations belongs to.
type Kind int

const (
	KindStack Kind = iota
	KindQueue
	KindTree
	KindList
	KindGraph
	KindHash
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindStack:
		return "stack"
	case KindQueue:
		return "queue"
	case KindTree:
		return "binary search tree"
	case KindList:
		return "linked list"
	case KindGraph:
		return "graph"
	case KindHash:
		return "hash table"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// OpCode enumerates every supported structure operation. Simulators switch
// exhaustively over it; adding a code without handling it is a compile-time
// smell, not a runtime string mismatch.
type OpCode int

const (
	OpPush OpCode = iota
	OpPop
	OpEnqueue
	OpDequeue
	OpArrayInsert
	OpArrayAppend
	OpArrayDelete
	OpListInsertHead
	OpListAppendTail
	OpListDeleteHead
	OpTreeInsert
	OpGraphAddNode
	OpGraphAddEdge
	OpGraphTraverse
	OpHashInsert
	OpHashSearch
	OpHashDelete
)

// TraverseKind selects the traversal flavor of OpGraphTraverse.
type TraverseKind int

const (
	TraverseDFS TraverseKind = iota
	TraverseBFS
)

func (t TraverseKind) String() string {
	if t == TraverseBFS {
		return "BFS"
	}
	return "DFS"
}

// Operation is one extracted structure action. Only the fields relevant to
// Code are populated; Value/From/To never contain quotes or brackets (see
// sanitizeValue).
type Operation struct {
	Code      OpCode
	Value     string
	Index     int
	From      string
	To        string
	Weight    int
	Traversal TraverseKind
}

// Kind reports which structure an operation belongs to.
func (o Operation) Kind() Kind {
	switch o.Code {
	case OpPush, OpPop:
		return KindStack
	case OpEnqueue, OpDequeue:
		return KindQueue
	case OpArrayInsert, OpArrayAppend, OpArrayDelete:
		return KindArray
	case OpListInsertHead, OpListAppendTail, OpListDeleteHead:
		return KindList
	case OpTreeInsert:
		return KindTree
	case OpGraphAddNode, OpGraphAddEdge, OpGraphTraverse:
		return KindGraph
	case OpHashInsert, OpHashSearch, OpHashDelete:
		return KindHash
	}
	return KindStack
}

// String renders the operation in call syntax for frame headers and
// transcripts, e.g. "push(10)" or "addEdge(A, B)".
func (o Operation) String() string {
	switch o.Code {
	case OpPush:
		return fmt.Sprintf("push(%s)", o.Value)
	case OpPop:
		return "pop()"
	case OpEnqueue:
		return fmt.Sprintf("enqueue(%s)", o.Value)
	case OpDequeue:
		return "dequeue()"
	case OpArrayInsert:
		return fmt.Sprintf("insert(%s, %d)", o.Value, o.Index)
	case OpArrayAppend:
		return fmt.Sprintf("append(%s)", o.Value)
	case OpArrayDelete:
		return fmt.Sprintf("delete(%d)", o.Index)
	case OpListInsertHead:
		return fmt.Sprintf("insertHead(%s)", o.Value)
	case OpListAppendTail:
		return fmt.Sprintf("appendTail(%s)", o.Value)
	case OpListDeleteHead:
		return "deleteHead()"
	case OpTreeInsert:
		return fmt.Sprintf("insert(%s)", o.Value)
	case OpGraphAddNode:
		return fmt.Sprintf("addNode(%s)", o.Value)
	case OpGraphAddEdge:
		if o.Weight != 1 {
			return fmt.Sprintf("addEdge(%s, %s, %d)", o.From, o.To, o.Weight)
		}
		return fmt.Sprintf("addEdge(%s, %s)", o.From, o.To)
	case OpGraphTraverse:
		return fmt.Sprintf("%s(%s)", o.Traversal, o.Value)
	case OpHashInsert:
		return fmt.Sprintf("insert(%s)", o.Value)
	case OpHashSearch:
		return fmt.Sprintf("search(%s)", o.Value)
	case OpHashDelete:
		return fmt.Sprintf("delete(%s)", o.Value)
	}
	return "nop()"
}
