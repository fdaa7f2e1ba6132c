package render

import (
	"fmt"
	"image"
	"strings"

	"github.com/ivlev/note2video/internal/sim"
)

// drawStats draws the metrics panel in the top-right corner. Lines come
// straight from the state so the panel can never disagree with the drawing.
func (r *Renderer) drawStats(img *image.RGBA, st sim.State) {
	lines := statLines(st)
	if len(lines) == 0 {
		return
	}

	s := r.styles
	widest := 0
	for _, l := range lines {
		if w := textWidth(l); w > widest {
			widest = w
		}
	}
	const lineH = 18
	pad := 10
	x1 := r.width - 24
	x0 := x1 - widest - 2*pad
	y0 := 84
	y1 := y0 + len(lines)*lineH + 2*pad

	fillRect(img, image.Rect(x0, y0, x1, y1), s.Panel)
	strokeRect(img, image.Rect(x0, y0, x1, y1), s.Muted)
	for i, l := range lines {
		drawText(img, s.Face, x0+pad, y0+pad+(i+1)*lineH-5, l, s.Text)
	}
}

func statLines(st sim.State) []string {
	switch v := st.(type) {
	case *sim.StackState:
		return []string{fmt.Sprintf("size: %d", len(v.Items))}
	case *sim.QueueState:
		return []string{fmt.Sprintf("size: %d", len(v.Items))}
	case *sim.ArrayState:
		return []string{
			fmt.Sprintf("size: %d", len(v.Items)),
			fmt.Sprintf("capacity: %d", sim.ArrayCapacity),
		}
	case *sim.ListState:
		return []string{fmt.Sprintf("length: %d", len(v.Items))}
	case *sim.TreeState:
		inorder := strings.Join(v.InOrder(), " ")
		if len(inorder) > 28 {
			inorder = inorder[:28] + "..."
		}
		return []string{
			fmt.Sprintf("nodes: %d", len(v.Nodes)),
			fmt.Sprintf("height: %d", v.Height()),
			"root: " + v.RootValue(),
			"in-order: " + inorder,
		}
	case *sim.GraphState:
		lines := []string{
			fmt.Sprintf("vertices: %d", len(v.Vertices)),
			fmt.Sprintf("edges: %d", v.EdgeCount),
		}
		for i, adj := range v.AdjacencyLines() {
			if i == 4 {
				lines = append(lines, "...")
				break
			}
			lines = append(lines, adj)
		}
		if len(v.Visited) > 0 {
			lines = append(lines, "visited: "+strings.Join(v.Visited, " "))
		}
		return lines
	case *sim.HashState:
		chains := make([]string, sim.HashBuckets)
		for i := range v.Buckets {
			chains[i] = fmt.Sprintf("%d", len(v.Buckets[i]))
		}
		return []string{
			fmt.Sprintf("keys: %d", v.Size()),
			fmt.Sprintf("load factor: %.2f", v.LoadFactor()),
			fmt.Sprintf("collisions: %d", v.Collisions),
			"chains: " + strings.Join(chains, " "),
		}
	}
	return nil
}
