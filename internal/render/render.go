package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/ivlev/note2video/internal/extract"
	"github.com/ivlev/note2video/internal/sim"
	"github.com/ivlev/note2video/internal/system"
)

// ErrRenderFailure wraps every error returned by Render so callers can
// distinguish drawing problems from encoding problems.
var ErrRenderFailure = errors.New("frame render failed")

// FrameAnnotation carries per-frame text that is not part of the structure
// state: the operation about to run and the step counter footer.
type FrameAnnotation struct {
	// Pending, when set, announces the next operation on a frame showing
	// the state before it runs.
	Pending  *extract.Operation
	StepInfo string
}

// Renderer draws snapshots of one fixed frame geometry.
type Renderer struct {
	width  int
	height int
	styles *StyleCache
}

func NewRenderer(width, height int, styles *StyleCache) *Renderer {
	return &Renderer{width: width, height: height, styles: styles}
}

// Render draws one frame and returns an owned buffer. Buffers come from the
// shared image pool; the caller must hand the image to system.PutImage once
// it has been encoded.
func (r *Renderer) Render(snap sim.Snapshot, ann FrameAnnotation) (*image.RGBA, error) {
	if snap.State == nil {
		return nil, fmt.Errorf("%w: snapshot %d has no state", ErrRenderFailure, snap.Index)
	}

	img := system.GetImage(image.Rect(0, 0, r.width, r.height))
	fillRect(img, img.Rect, r.styles.Background)

	r.drawChrome(img, snap, ann)

	var err error
	switch st := snap.State.(type) {
	case *sim.StackState:
		r.drawStack(img, st, snap.Highlight)
	case *sim.QueueState:
		r.drawQueue(img, st, snap.Highlight)
	case *sim.ArrayState:
		r.drawArray(img, st, snap.Highlight)
	case *sim.ListState:
		r.drawList(img, st, snap.Highlight)
	case *sim.TreeState:
		r.drawTree(img, st, snap.Highlight)
	case *sim.GraphState:
		r.drawGraph(img, st, snap.Highlight)
	case *sim.HashState:
		r.drawHash(img, st, snap.Highlight)
	default:
		err = fmt.Errorf("%w: no layout for %v", ErrRenderFailure, snap.State.Kind())
	}
	if err != nil {
		system.PutImage(img)
		return nil, err
	}

	r.drawStats(img, snap.State)
	return img, nil
}

var titles = map[extract.Kind]string{
	extract.KindStack: "STACK VISUALIZATION",
	extract.KindQueue: "QUEUE VISUALIZATION",
	extract.KindTree:  "BINARY SEARCH TREE",
	extract.KindList:  "LINKED LIST",
	extract.KindGraph: "GRAPH VISUALIZATION",
	extract.KindHash:  "HASH TABLE",
	extract.KindArray: "ARRAY VISUALIZATION",
}

// drawChrome draws the title, the operation banner and the footer lines
// shared by every structure layout.
func (r *Renderer) drawChrome(img *image.RGBA, snap sim.Snapshot, ann FrameAnnotation) {
	s := r.styles
	cx := r.width / 2

	drawTextCentered(img, s.Face, cx, 34, titles[snap.State.Kind()], s.Text)
	drawLine(img, r.width/4, 44, 3*r.width/4, 44, s.Muted)

	switch {
	case ann.Pending != nil:
		drawTextCentered(img, s.Face, cx, 66, "next: "+ann.Pending.String(), s.Accent)
	case snap.Op != nil:
		drawTextCentered(img, s.Face, cx, 66, snap.Op.String(), s.Highlight)
	default:
		drawTextCentered(img, s.Face, cx, 66, "initial state", s.Muted)
	}

	if ann.StepInfo != "" {
		drawText(img, s.Face, 20, r.height-38, ann.StepInfo, s.Muted)
	}
	if snap.Diagnostic != "" {
		drawText(img, s.Face, 20, r.height-18, snap.Diagnostic, s.Muted)
	}
}
