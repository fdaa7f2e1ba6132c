package extract

import "strings"

// SeedSequence returns the canonical demo sequence for a structure kind,
// used whenever extraction recognizes no operations at all. A video must
// always have at least one step, so the fallback is a deliberate, fixed
// policy rather than inferred intent.
func SeedSequence(kind Kind, text string) []Operation {
	switch kind {
	case KindStack:
		return []Operation{
			{Code: OpPush, Value: "10"},
			{Code: OpPush, Value: "20"},
			{Code: OpPop},
			{Code: OpPush, Value: "30"},
		}
	case KindQueue:
		return []Operation{
			{Code: OpEnqueue, Value: "A"},
			{Code: OpEnqueue, Value: "B"},
			{Code: OpDequeue},
			{Code: OpEnqueue, Value: "C"},
		}
	case KindTree:
		values := []string{"10", "5", "15", "3", "7", "12", "18"}
		if mentionsClassicBST(text) {
			values = []string{"50", "30", "70", "20", "40", "60", "80"}
		}
		ops := make([]Operation, 0, len(values))
		for _, v := range values {
			ops = append(ops, Operation{Code: OpTreeInsert, Value: v})
		}
		return ops
	case KindList:
		return []Operation{
			{Code: OpListInsertHead, Value: "10"},
			{Code: OpListAppendTail, Value: "20"},
			{Code: OpListInsertHead, Value: "5"},
			{Code: OpListDeleteHead},
		}
	case KindGraph:
		return []Operation{
			{Code: OpGraphAddNode, Value: "A"},
			{Code: OpGraphAddNode, Value: "B"},
			{Code: OpGraphAddNode, Value: "C"},
			{Code: OpGraphAddEdge, From: "A", To: "B", Weight: 1},
			{Code: OpGraphAddEdge, From: "B", To: "C", Weight: 1},
			{Code: OpGraphTraverse, Value: "A", Traversal: TraverseDFS},
		}
	case KindHash:
		return []Operation{
			{Code: OpHashInsert, Value: "John"},
			{Code: OpHashInsert, Value: "Jane"},
			{Code: OpHashSearch, Value: "John"},
			{Code: OpHashInsert, Value: "Bob"},
			{Code: OpHashDelete, Value: "Jane"},
		}
	case KindArray:
		return []Operation{
			{Code: OpArrayAppend, Value: "10"},
			{Code: OpArrayAppend, Value: "20"},
			{Code: OpArrayInsert, Value: "15", Index: 1},
			{Code: OpArrayDelete, Index: 0},
		}
	}
	return nil
}

// mentionsClassicBST detects notes built around the textbook 50/30/70 tree
// example so the seed matches what the reader saw on paper.
func mentionsClassicBST(text string) bool {
	for _, v := range []string{"50", "30", "70", "20", "40", "60", "80"} {
		if strings.Contains(text, v) {
			return true
		}
	}
	return false
}
