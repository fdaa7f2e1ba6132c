package sim

import (
	"fmt"
	"strings"

	"github.com/ivlev/note2video/internal/extract"
)

// GraphEdge is a directed edge to an arena vertex index.
type GraphEdge struct {
	To     int
	Weight int
}

// GraphVertex is one arena-allocated vertex with its outgoing adjacency
// list in insertion order.
type GraphVertex struct {
	ID  string
	Adj []GraphEdge
}

// GraphState is a directed graph over an append-only vertex arena. Visited
// lists the vertices touched by the most recent traversal, in visit order.
type GraphState struct {
	Vertices  []GraphVertex
	EdgeCount int
	Visited   []string
}

func (g *GraphState) Kind() extract.Kind { return extract.KindGraph }

func (g *GraphState) Clone() State {
	verts := make([]GraphVertex, len(g.Vertices))
	for i, v := range g.Vertices {
		adj := make([]GraphEdge, len(v.Adj))
		copy(adj, v.Adj)
		verts[i] = GraphVertex{ID: v.ID, Adj: adj}
	}
	return &GraphState{
		Vertices:  verts,
		EdgeCount: g.EdgeCount,
		Visited:   cloneStrings(g.Visited),
	}
}

func (g *GraphState) Summary() string {
	ids := make([]string, len(g.Vertices))
	for i, v := range g.Vertices {
		ids[i] = v.ID
	}
	return fmt.Sprintf("V={%s} |E|=%d", strings.Join(ids, " "), g.EdgeCount)
}

// Lookup returns the arena index of a vertex by ID, or -1.
func (g *GraphState) Lookup(id string) int {
	for i, v := range g.Vertices {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// AdjacencyLines renders one "A -> B C" line per vertex for the stats panel.
func (g *GraphState) AdjacencyLines() []string {
	lines := make([]string, 0, len(g.Vertices))
	for _, v := range g.Vertices {
		targets := make([]string, len(v.Adj))
		for i, e := range v.Adj {
			targets[i] = g.Vertices[e.To].ID
		}
		lines = append(lines, v.ID+" -> "+strings.Join(targets, " "))
	}
	return lines
}

type graphSim struct{}

func (graphSim) Kind() extract.Kind { return extract.KindGraph }

func (graphSim) Initial() State { return &GraphState{} }

func (graphSim) Apply(st State, op extract.Operation) (State, string, string) {
	cur := st.(*GraphState)
	next := cur.Clone().(*GraphState)

	switch op.Code {
	case extract.OpGraphAddNode:
		if next.Lookup(op.Value) >= 0 {
			return next, op.Value, fmt.Sprintf("vertex %s already present", op.Value)
		}
		next.Vertices = append(next.Vertices, GraphVertex{ID: op.Value})
		return next, op.Value, fmt.Sprintf("added vertex %s", op.Value)

	case extract.OpGraphAddEdge:
		from := next.ensureVertex(op.From)
		to := next.ensureVertex(op.To)
		// Edges are not deduplicated: a note naming the same edge twice
		// gets two parallel arrows.
		next.Vertices[from].Adj = append(next.Vertices[from].Adj, GraphEdge{To: to, Weight: op.Weight})
		next.EdgeCount++
		return next, op.To, fmt.Sprintf("added edge %s -> %s", op.From, op.To)

	case extract.OpGraphTraverse:
		if len(next.Vertices) == 0 {
			return next, "", "traversal on empty graph ignored"
		}
		start := next.Lookup(op.Value)
		diag := fmt.Sprintf("%s from %s", op.Traversal, op.Value)
		if start < 0 {
			start = 0
			diag = fmt.Sprintf("%s from %s (start %s not found)", op.Traversal, next.Vertices[0].ID, op.Value)
		}
		// The animation shows only the first hop: start plus up to two of
		// its adjacency neighbors, in list order.
		visited := []string{next.Vertices[start].ID}
		for i, e := range next.Vertices[start].Adj {
			if i == 2 {
				break
			}
			visited = append(visited, next.Vertices[e.To].ID)
		}
		next.Visited = visited
		return next, next.Vertices[start].ID, diag
	}
	return next, "", fmt.Sprintf("unsupported graph operation %s ignored", op)
}

// ensureVertex returns the index of id, implicitly adding the vertex when an
// edge names it before any addNode.
func (g *GraphState) ensureVertex(id string) int {
	if i := g.Lookup(id); i >= 0 {
		return i
	}
	g.Vertices = append(g.Vertices, GraphVertex{ID: id})
	return len(g.Vertices) - 1
}
