package render

import (
	"fmt"
	"image"
	"math"

	"github.com/ivlev/note2video/internal/sim"
)

// drawCell draws one value box, highlighted when it holds the value the
// last operation touched.
func (r *Renderer) drawCell(img *image.RGBA, rect image.Rectangle, label string, highlighted bool) {
	s := r.styles
	fill := s.BoxFill
	if highlighted {
		fill = s.Highlight
	}
	fillRect(img, rect, fill)
	strokeRect(img, rect, s.BoxStroke)
	tc := s.Text
	if highlighted {
		tc = s.Background
	}
	drawTextCentered(img, s.Face, (rect.Min.X+rect.Max.X)/2, (rect.Min.Y+rect.Max.Y)/2+4, label, tc)
}

// drawStack draws items bottom-up inside an open-topped container in the
// horizontal center of the frame.
func (r *Renderer) drawStack(img *image.RGBA, st *sim.StackState, highlight string) {
	s := r.styles
	left := int(0.40 * float64(r.width))
	right := int(0.60 * float64(r.width))
	bottom := int(0.80 * float64(r.height))
	top := int(0.18 * float64(r.height))
	boxH := 40

	drawLine(img, left, top, left, bottom, s.BoxStroke)
	drawLine(img, right, top, right, bottom, s.BoxStroke)
	drawLine(img, left, bottom, right, bottom, s.BoxStroke)

	for i, v := range st.Items {
		y := bottom - (i+1)*(boxH+4)
		if y < top {
			break
		}
		rect := image.Rect(left+4, y, right-4, y+boxH)
		last := i == len(st.Items)-1
		r.drawCell(img, rect, v, last && v == highlight)
		if last {
			drawText(img, s.Face, right+14, y+boxH/2+4, "<- TOP", s.Accent)
		}
	}
	if len(st.Items) == 0 {
		drawTextCentered(img, s.Face, (left+right)/2, (top+bottom)/2, "(empty)", s.Muted)
	}
}

// drawQueue draws items left to right with FRONT and REAR markers.
func (r *Renderer) drawQueue(img *image.RGBA, st *sim.QueueState, highlight string) {
	s := r.styles
	boxW, boxH := 70, 46
	y := r.height/2 - boxH/2
	total := len(st.Items) * (boxW + 6)
	x := r.width/2 - total/2

	if len(st.Items) == 0 {
		drawTextCentered(img, s.Face, r.width/2, r.height/2, "(empty queue)", s.Muted)
		return
	}
	for i, v := range st.Items {
		rect := image.Rect(x, y, x+boxW, y+boxH)
		edge := i == 0 || i == len(st.Items)-1
		r.drawCell(img, rect, v, edge && v == highlight)
		if i == 0 {
			drawTextCentered(img, s.Face, x+boxW/2, y+boxH+22, "FRONT", s.Accent)
		}
		if i == len(st.Items)-1 {
			drawTextCentered(img, s.Face, x+boxW/2, y-12, "REAR", s.Accent)
		}
		x += boxW + 6
	}
}

// drawArray draws all fixed capacity cells; unused cells stay empty with
// muted indices so growth is visible against a constant background.
func (r *Renderer) drawArray(img *image.RGBA, st *sim.ArrayState, highlight string) {
	s := r.styles
	cellW := int(0.06 * float64(r.width))
	boxH := 52
	y := int(0.45 * float64(r.height))
	x0 := r.width/2 - sim.ArrayCapacity*cellW/2

	for i := 0; i < sim.ArrayCapacity; i++ {
		rect := image.Rect(x0+i*cellW, y, x0+(i+1)*cellW, y+boxH)
		if i < len(st.Items) {
			r.drawCell(img, rect, st.Items[i], st.Items[i] == highlight)
		} else {
			strokeRect(img, rect, s.Muted)
		}
		drawTextCentered(img, s.Face, x0+i*cellW+cellW/2, y+boxH+20, fmt.Sprintf("%d", i), s.Muted)
	}
}

// drawList draws up to eight nodes as data+pointer boxes chained by arrows.
func (r *Renderer) drawList(img *image.RGBA, st *sim.ListState, highlight string) {
	s := r.styles
	const maxShown = 8
	items := st.Items
	truncated := false
	if len(items) > maxShown {
		items = items[:maxShown]
		truncated = true
	}

	dataW, ptrW, boxH := 56, 22, 46
	gap := 34
	y := r.height/2 - boxH/2
	total := len(items)*(dataW+ptrW+gap) + 60
	x := r.width/2 - total/2

	drawText(img, s.Face, x, y+boxH/2+4, "HEAD", s.Accent)
	x += 50
	drawArrow(img, x-8, y+boxH/2, x+gap-8, y+boxH/2, s.BoxStroke)
	x += gap

	for i, v := range items {
		data := image.Rect(x, y, x+dataW, y+boxH)
		ptr := image.Rect(x+dataW, y, x+dataW+ptrW, y+boxH)
		r.drawCell(img, data, v, v == highlight)
		fillRect(img, ptr, s.Panel)
		strokeRect(img, ptr, s.BoxStroke)
		x += dataW + ptrW
		drawArrow(img, x, y+boxH/2, x+gap-4, y+boxH/2, s.BoxStroke)
		x += gap
		if i == len(items)-1 {
			if truncated {
				drawText(img, s.Face, x, y+boxH/2+4, "...", s.Muted)
			} else {
				drawText(img, s.Face, x, y+boxH/2+4, "NULL", s.Muted)
			}
		}
	}
	if len(items) == 0 {
		drawText(img, s.Face, x, y+boxH/2+4, "NULL", s.Muted)
	}
}

// drawTree places nodes by recursive horizontal bisection: each subtree owns
// an x interval and every level steps down a fixed amount.
func (r *Renderer) drawTree(img *image.RGBA, st *sim.TreeState, highlight string) {
	s := r.styles
	if st.Root < 0 {
		drawTextCentered(img, s.Face, r.width/2, r.height/2, "(empty tree)", s.Muted)
		return
	}

	y0 := int(0.22 * float64(r.height))
	dy := int(0.13 * float64(r.height))
	const radius = 22

	var place func(idx int, xlo, xhi float64, depth int, px, py int)
	place = func(idx int, xlo, xhi float64, depth int, px, py int) {
		if idx < 0 {
			return
		}
		x := int((xlo + xhi) / 2 * float64(r.width))
		y := y0 + depth*dy
		if depth > 0 {
			drawLine(img, px, py+radius, x, y-radius, s.BoxStroke)
		}
		n := st.Nodes[idx]
		place(n.Left, xlo, (xlo+xhi)/2, depth+1, x, y)
		place(n.Right, (xlo+xhi)/2, xhi, depth+1, x, y)

		fill := s.BoxFill
		tc := s.Text
		if n.Value == highlight {
			fill = s.Highlight
			tc = s.Background
		}
		fillCircle(img, x, y, radius, fill)
		strokeCircle(img, x, y, radius, s.BoxStroke)
		drawTextCentered(img, s.Face, x, y+4, n.Value, tc)
	}
	place(st.Root, 0.1, 0.9, 0, 0, 0)
}

// drawGraph lays vertices on a circle for small graphs and on a grid past
// six vertices, then draws directed edges and marks traversal visits.
func (r *Renderer) drawGraph(img *image.RGBA, st *sim.GraphState, highlight string) {
	s := r.styles
	if len(st.Vertices) == 0 {
		drawTextCentered(img, s.Face, r.width/2, r.height/2, "(empty graph)", s.Muted)
		return
	}

	const radius = 24
	cx := int(0.42 * float64(r.width))
	cy := int(0.48 * float64(r.height))
	pos := make([]image.Point, len(st.Vertices))

	if len(st.Vertices) <= 6 {
		rad := 0.25 * float64(min(r.width, r.height))
		for i := range st.Vertices {
			a := 2*math.Pi*float64(i)/float64(len(st.Vertices)) - math.Pi/2
			pos[i] = image.Pt(cx+int(rad*math.Cos(a)), cy+int(rad*math.Sin(a)))
		}
	} else {
		cols := int(math.Ceil(math.Sqrt(float64(len(st.Vertices)))))
		cellW := int(0.6 * float64(r.width) / float64(cols))
		cellH := int(0.55 * float64(r.height) / float64(cols))
		for i := range st.Vertices {
			pos[i] = image.Pt(
				int(0.12*float64(r.width))+(i%cols)*cellW+cellW/2,
				int(0.2*float64(r.height))+(i/cols)*cellH+cellH/2,
			)
		}
	}

	visited := make(map[string]bool, len(st.Visited))
	for _, id := range st.Visited {
		visited[id] = true
	}

	for i, v := range st.Vertices {
		for _, e := range v.Adj {
			p0, p1 := pos[i], pos[e.To]
			a := math.Atan2(float64(p1.Y-p0.Y), float64(p1.X-p0.X))
			x0 := p0.X + int(float64(radius)*math.Cos(a))
			y0 := p0.Y + int(float64(radius)*math.Sin(a))
			x1 := p1.X - int(float64(radius+2)*math.Cos(a))
			y1 := p1.Y - int(float64(radius+2)*math.Sin(a))
			drawArrow(img, x0, y0, x1, y1, s.BoxStroke)
			if e.Weight != 1 {
				drawTextCentered(img, s.Face, (x0+x1)/2, (y0+y1)/2-6, fmt.Sprintf("%d", e.Weight), s.Muted)
			}
		}
	}

	for i, v := range st.Vertices {
		fill := s.BoxFill
		tc := s.Text
		switch {
		case v.ID == highlight:
			fill = s.Highlight
			tc = s.Background
		case visited[v.ID]:
			fill = s.Accent
			tc = s.Background
		}
		fillCircle(img, pos[i].X, pos[i].Y, radius, fill)
		strokeCircle(img, pos[i].X, pos[i].Y, radius, s.BoxStroke)
		drawTextCentered(img, s.Face, pos[i].X, pos[i].Y+4, v.ID, tc)
	}
}

// drawHash draws one row per bucket with its chain, plus the hash formula.
func (r *Renderer) drawHash(img *image.RGBA, st *sim.HashState, highlight string) {
	s := r.styles
	rowH := int(0.62 * float64(r.height) / float64(sim.HashBuckets))
	boxH := rowH - 10
	if boxH > 44 {
		boxH = 44
	}
	y := int(0.18 * float64(r.height))
	x0 := int(0.14 * float64(r.width))
	chainW := 76

	drawText(img, s.Face, x0, y-14, fmt.Sprintf("h(k) = k mod %d", sim.HashBuckets), s.Accent)

	for b := 0; b < sim.HashBuckets; b++ {
		rowY := y + b*rowH
		idx := image.Rect(x0, rowY, x0+40, rowY+boxH)
		fillRect(img, idx, s.Panel)
		strokeRect(img, idx, s.BoxStroke)
		drawTextCentered(img, s.Face, x0+20, rowY+boxH/2+4, fmt.Sprintf("%d", b), s.Muted)

		x := x0 + 52
		for _, k := range st.Buckets[b] {
			rect := image.Rect(x, rowY, x+chainW, rowY+boxH)
			r.drawCell(img, rect, k, k == highlight)
			x += chainW + 4
			drawArrow(img, x-4, rowY+boxH/2, x+10, rowY+boxH/2, s.BoxStroke)
			x += 14
		}
		drawText(img, s.Face, x, rowY+boxH/2+4, "/", s.Muted)
	}
}
