package sim

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/ivlev/note2video/internal/extract"
)

func TestStackLIFO(t *testing.T) {
	ops := []extract.Operation{
		{Code: extract.OpPush, Value: "10"},
		{Code: extract.OpPush, Value: "20"},
		{Code: extract.OpPop},
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(snaps) != 4 {
		t.Fatalf("expected 4 snapshots, got %d", len(snaps))
	}
	final := snaps[3].State.(*StackState)
	if !reflect.DeepEqual(final.Items, []string{"10"}) {
		t.Errorf("expected [10] after pop, got %v", final.Items)
	}
	if snaps[3].Highlight != "20" {
		t.Errorf("expected popped value 20 highlighted, got %q", snaps[3].Highlight)
	}
	// Earlier snapshots must be unaffected by later operations.
	mid := snaps[2].State.(*StackState)
	if !reflect.DeepEqual(mid.Items, []string{"10", "20"}) {
		t.Errorf("snapshot 2 mutated: %v", mid.Items)
	}
}

func TestStackPopEmpty(t *testing.T) {
	snaps, err := Run([]extract.Operation{{Code: extract.OpPop}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if snaps[1].Diagnostic != "pop on empty stack ignored" {
		t.Errorf("unexpected diagnostic: %q", snaps[1].Diagnostic)
	}
	if len(snaps[1].State.(*StackState).Items) != 0 {
		t.Error("empty pop must leave the stack empty")
	}
}

func TestQueueFIFO(t *testing.T) {
	ops := []extract.Operation{
		{Code: extract.OpEnqueue, Value: "A"},
		{Code: extract.OpEnqueue, Value: "B"},
		{Code: extract.OpDequeue},
		{Code: extract.OpEnqueue, Value: "C"},
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	final := snaps[len(snaps)-1].State.(*QueueState)
	if !reflect.DeepEqual(final.Items, []string{"B", "C"}) {
		t.Errorf("expected [B C], got %v", final.Items)
	}
	if snaps[3].Highlight != "A" {
		t.Errorf("dequeue must remove the front, got %q", snaps[3].Highlight)
	}
}

func TestTreeInOrderSorted(t *testing.T) {
	ops := make([]extract.Operation, 0, 5)
	for _, v := range []string{"50", "30", "70", "20", "40"} {
		ops = append(ops, extract.Operation{Code: extract.OpTreeInsert, Value: v})
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	tree := snaps[len(snaps)-1].State.(*TreeState)
	want := []string{"20", "30", "40", "50", "70"}
	if got := tree.InOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("in-order traversal = %v, want %v", got, want)
	}
	if tree.RootValue() != "50" {
		t.Errorf("root = %s, want 50", tree.RootValue())
	}
	if tree.Height() != 3 {
		t.Errorf("height = %d, want 3", tree.Height())
	}
}

func TestTreeDuplicateGoesRight(t *testing.T) {
	ops := []extract.Operation{
		{Code: extract.OpTreeInsert, Value: "10"},
		{Code: extract.OpTreeInsert, Value: "10"},
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	tree := snaps[len(snaps)-1].State.(*TreeState)
	root := tree.Nodes[tree.Root]
	if root.Right < 0 || tree.Nodes[root.Right].Value != "10" {
		t.Error("duplicate key must descend right")
	}
	if root.Left >= 0 {
		t.Error("duplicate key must not go left")
	}
}

func TestHashCollisionCount(t *testing.T) {
	// 15, 22, 8 and 29 are all ≡ 1 mod 7, so they chain in bucket 1 and
	// every insert after the first is a collision.
	ops := make([]extract.Operation, 0, 4)
	for _, v := range []string{"15", "22", "8", "29"} {
		ops = append(ops, extract.Operation{Code: extract.OpHashInsert, Value: v})
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	h := snaps[len(snaps)-1].State.(*HashState)
	if len(h.Buckets[1]) != 4 {
		t.Errorf("bucket 1 chain length = %d, want 4", len(h.Buckets[1]))
	}
	if h.Collisions != 3 {
		t.Errorf("collisions = %d, want 3", h.Collisions)
	}
	if lf := h.LoadFactor(); math.Abs(lf-4.0/7.0) > 1e-9 {
		t.Errorf("load factor = %f, want %f", lf, 4.0/7.0)
	}
}

func TestHashDuplicateInsertIgnored(t *testing.T) {
	ops := []extract.Operation{
		{Code: extract.OpHashInsert, Value: "John"},
		{Code: extract.OpHashInsert, Value: "John"},
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	h := snaps[len(snaps)-1].State.(*HashState)
	if h.Size() != 1 {
		t.Errorf("duplicate insert must not grow the table, size = %d", h.Size())
	}
	if h.Collisions != 0 {
		t.Errorf("duplicate insert must not count as collision, got %d", h.Collisions)
	}
}

func TestHashStableStringBucket(t *testing.T) {
	if BucketFor("John") != BucketFor("John") {
		t.Error("string keys must hash stably")
	}
	if b := BucketFor("15"); b != 1 {
		t.Errorf("BucketFor(15) = %d, want 1", b)
	}
	if b := BucketFor("-1"); b < 0 || b >= HashBuckets {
		t.Errorf("negative key bucket out of range: %d", b)
	}
}

func TestArrayInsertClamped(t *testing.T) {
	ops := []extract.Operation{
		{Code: extract.OpArrayAppend, Value: "10"},
		{Code: extract.OpArrayInsert, Value: "99", Index: 999},
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	a := snaps[len(snaps)-1].State.(*ArrayState)
	if !reflect.DeepEqual(a.Items, []string{"10", "99"}) {
		t.Errorf("expected clamped insert at end, got %v", a.Items)
	}
	t.Logf("clamp diagnostic: %s", snaps[2].Diagnostic)
}

func TestArrayDeleteOutOfRangeIgnored(t *testing.T) {
	ops := []extract.Operation{
		{Code: extract.OpArrayAppend, Value: "10"},
		{Code: extract.OpArrayAppend, Value: "20"},
		{Code: extract.OpArrayAppend, Value: "30"},
		{Code: extract.OpArrayDelete, Index: 999},
		{Code: extract.OpArrayDelete, Index: -1},
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []string{"10", "20", "30"}
	for _, idx := range []int{4, 5} {
		a := snaps[idx].State.(*ArrayState)
		if !reflect.DeepEqual(a.Items, want) {
			t.Errorf("snapshot %d: out-of-range delete changed the array: %v", idx, a.Items)
		}
		if snaps[idx].Highlight != "" {
			t.Errorf("snapshot %d: ignored delete must highlight nothing, got %q", idx, snaps[idx].Highlight)
		}
	}
	if snaps[4].Diagnostic != "delete at index 999 out of range ignored" {
		t.Errorf("unexpected diagnostic: %q", snaps[4].Diagnostic)
	}
}

func TestArrayCapacityLimit(t *testing.T) {
	ops := make([]extract.Operation, 0, ArrayCapacity+1)
	for i := 0; i <= ArrayCapacity; i++ {
		ops = append(ops, extract.Operation{Code: extract.OpArrayAppend, Value: "1"})
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	a := snaps[len(snaps)-1].State.(*ArrayState)
	if len(a.Items) != ArrayCapacity {
		t.Errorf("array grew past capacity: %d", len(a.Items))
	}
}

func TestListHeadTail(t *testing.T) {
	ops := []extract.Operation{
		{Code: extract.OpListInsertHead, Value: "10"},
		{Code: extract.OpListAppendTail, Value: "20"},
		{Code: extract.OpListInsertHead, Value: "5"},
		{Code: extract.OpListDeleteHead},
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	l := snaps[len(snaps)-1].State.(*ListState)
	if !reflect.DeepEqual(l.Items, []string{"10", "20"}) {
		t.Errorf("expected [10 20], got %v", l.Items)
	}
	if l.Summary() != "HEAD -> 10 -> 20 -> NULL" {
		t.Errorf("unexpected summary: %q", l.Summary())
	}
}

func TestGraphTraversalFirstHop(t *testing.T) {
	ops := []extract.Operation{
		{Code: extract.OpGraphAddNode, Value: "A"},
		{Code: extract.OpGraphAddNode, Value: "B"},
		{Code: extract.OpGraphAddNode, Value: "C"},
		{Code: extract.OpGraphAddEdge, From: "A", To: "B", Weight: 1},
		{Code: extract.OpGraphAddEdge, From: "A", To: "C", Weight: 1},
		{Code: extract.OpGraphTraverse, Value: "A", Traversal: extract.TraverseBFS},
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	g := snaps[len(snaps)-1].State.(*GraphState)
	if !reflect.DeepEqual(g.Visited, []string{"A", "B", "C"}) {
		t.Errorf("visited = %v, want [A B C]", g.Visited)
	}
	if g.EdgeCount != 2 {
		t.Errorf("edge count = %d, want 2", g.EdgeCount)
	}
}

func TestGraphEdgeImplicitVertices(t *testing.T) {
	ops := []extract.Operation{
		{Code: extract.OpGraphAddEdge, From: "X", To: "Y", Weight: 1},
		{Code: extract.OpGraphAddEdge, From: "X", To: "Y", Weight: 1},
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	g := snaps[len(snaps)-1].State.(*GraphState)
	if len(g.Vertices) != 2 {
		t.Errorf("expected 2 implicit vertices, got %d", len(g.Vertices))
	}
	if g.EdgeCount != 2 {
		t.Errorf("parallel edges must both count, got %d", g.EdgeCount)
	}
}

func TestGraphTraverseUnknownStart(t *testing.T) {
	ops := []extract.Operation{
		{Code: extract.OpGraphAddNode, Value: "A"},
		{Code: extract.OpGraphTraverse, Value: "Z", Traversal: extract.TraverseDFS},
	}
	snaps, err := Run(ops)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	g := snaps[len(snaps)-1].State.(*GraphState)
	if !reflect.DeepEqual(g.Visited, []string{"A"}) {
		t.Errorf("expected fallback to first vertex, visited = %v", g.Visited)
	}
}

func TestRunRejectsMixedKinds(t *testing.T) {
	ops := []extract.Operation{
		{Code: extract.OpPush, Value: "10"},
		{Code: extract.OpEnqueue, Value: "A"},
	}
	if _, err := Run(ops); !errors.Is(err, ErrStructureMix) {
		t.Errorf("expected ErrStructureMix, got %v", err)
	}
}

func TestRunDeterministic(t *testing.T) {
	for kind := extract.KindStack; kind <= extract.KindArray; kind++ {
		ops := extract.SeedSequence(kind, "")
		if len(ops) == 0 {
			t.Fatalf("empty seed for %v", kind)
		}
		a, err := Run(ops)
		if err != nil {
			t.Fatalf("Run(%v) failed: %v", kind, err)
		}
		b, err := Run(ops)
		if err != nil {
			t.Fatalf("second Run(%v) failed: %v", kind, err)
		}
		if len(a) != len(b) {
			t.Fatalf("%v: snapshot counts differ", kind)
		}
		for i := range a {
			if a[i].State.Summary() != b[i].State.Summary() {
				t.Errorf("%v snapshot %d differs: %q vs %q", kind, i, a[i].State.Summary(), b[i].State.Summary())
			}
		}
	}
}
