package sim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ivlev/note2video/internal/extract"
)

// TreeNode is one arena-allocated binary search tree node. Children are
// arena indices, -1 meaning none.
type TreeNode struct {
	Value string
	Left  int
	Right int
}

// TreeState is a binary search tree over an append-only node arena. Cloning
// copies the arena wholesale; indices stay valid across snapshots.
type TreeState struct {
	Nodes []TreeNode
	Root  int
}

func (t *TreeState) Kind() extract.Kind { return extract.KindTree }

func (t *TreeState) Clone() State {
	nodes := make([]TreeNode, len(t.Nodes))
	copy(nodes, t.Nodes)
	return &TreeState{Nodes: nodes, Root: t.Root}
}

func (t *TreeState) Summary() string {
	return "in-order: [" + strings.Join(t.InOrder(), " ") + "]"
}

// InOrder returns node values in sorted traversal order.
func (t *TreeState) InOrder() []string {
	var out []string
	var walk func(i int)
	walk = func(i int) {
		if i < 0 {
			return
		}
		walk(t.Nodes[i].Left)
		out = append(out, t.Nodes[i].Value)
		walk(t.Nodes[i].Right)
	}
	walk(t.Root)
	return out
}

// Height returns the node count on the longest root-to-leaf path; an empty
// tree has height 0.
func (t *TreeState) Height() int {
	var depth func(i int) int
	depth = func(i int) int {
		if i < 0 {
			return 0
		}
		l := depth(t.Nodes[i].Left)
		r := depth(t.Nodes[i].Right)
		if l > r {
			return l + 1
		}
		return r + 1
	}
	return depth(t.Root)
}

// RootValue returns the root node value, or "-" for an empty tree.
func (t *TreeState) RootValue() string {
	if t.Root < 0 {
		return "-"
	}
	return t.Nodes[t.Root].Value
}

// treeLess orders values numerically when both parse as integers, otherwise
// lexically, so mixed notes still place every node deterministically.
func treeLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}

type treeSim struct{}

func (treeSim) Kind() extract.Kind { return extract.KindTree }

func (treeSim) Initial() State { return &TreeState{Root: -1} }

func (treeSim) Apply(st State, op extract.Operation) (State, string, string) {
	cur := st.(*TreeState)
	next := cur.Clone().(*TreeState)

	if op.Code != extract.OpTreeInsert {
		return next, "", fmt.Sprintf("unsupported tree operation %s ignored", op)
	}

	next.Nodes = append(next.Nodes, TreeNode{Value: op.Value, Left: -1, Right: -1})
	idx := len(next.Nodes) - 1
	if next.Root < 0 {
		next.Root = idx
		return next, op.Value, fmt.Sprintf("inserted %s as root", op.Value)
	}

	// Duplicates descend right, matching the textbook convention where
	// equal keys chain down the right spine.
	cursor := next.Root
	for {
		if treeLess(op.Value, next.Nodes[cursor].Value) {
			if next.Nodes[cursor].Left < 0 {
				next.Nodes[cursor].Left = idx
				break
			}
			cursor = next.Nodes[cursor].Left
		} else {
			if next.Nodes[cursor].Right < 0 {
				next.Nodes[cursor].Right = idx
				break
			}
			cursor = next.Nodes[cursor].Right
		}
	}
	return next, op.Value, fmt.Sprintf("inserted %s under %s", op.Value, next.Nodes[cursor].Value)
}
