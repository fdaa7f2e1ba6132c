package render

import (
	"bytes"
	"testing"

	"github.com/ivlev/note2video/internal/extract"
	"github.com/ivlev/note2video/internal/sim"
	"github.com/ivlev/note2video/internal/system"
)

func runSnapshots(t *testing.T, ops []extract.Operation) []sim.Snapshot {
	t.Helper()
	snaps, err := sim.Run(ops)
	if err != nil {
		t.Fatalf("sim.Run failed: %v", err)
	}
	return snaps
}

func TestRenderDeterministic(t *testing.T) {
	snaps := runSnapshots(t, extract.SeedSequence(extract.KindStack, ""))
	r := NewRenderer(640, 360, NewStyleCache())

	last := snaps[len(snaps)-1]
	a, err := r.Render(last, FrameAnnotation{StepInfo: "step 4 of 4"})
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	b, err := r.Render(last, FrameAnnotation{StepInfo: "step 4 of 4"})
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	defer system.PutImage(a)
	defer system.PutImage(b)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same snapshot rendered different pixels")
	}
}

func TestRenderAllKinds(t *testing.T) {
	r := NewRenderer(640, 360, NewStyleCache())
	for kind := extract.KindStack; kind <= extract.KindArray; kind++ {
		snaps := runSnapshots(t, extract.SeedSequence(kind, ""))
		for _, snap := range snaps {
			img, err := r.Render(snap, FrameAnnotation{})
			if err != nil {
				t.Fatalf("%v snapshot %d: %v", kind, snap.Index, err)
			}
			if img.Rect.Dx() != 640 || img.Rect.Dy() != 360 {
				t.Fatalf("%v: wrong frame size %v", kind, img.Rect)
			}
			system.PutImage(img)
		}
	}
}

func TestRenderDrawsSomething(t *testing.T) {
	r := NewRenderer(640, 360, NewStyleCache())
	snaps := runSnapshots(t, []extract.Operation{{Code: extract.OpPush, Value: "42"}})

	img, err := r.Render(snaps[1], FrameAnnotation{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	defer system.PutImage(img)

	bg := NewStyleCache().Background
	changed := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != bg.R || img.Pix[i+1] != bg.G || img.Pix[i+2] != bg.B {
			changed++
		}
	}
	if changed == 0 {
		t.Error("frame contains only background pixels")
	}
	t.Logf("non-background pixels: %d", changed)
}

func TestRenderNilState(t *testing.T) {
	r := NewRenderer(320, 180, NewStyleCache())
	if _, err := r.Render(sim.Snapshot{}, FrameAnnotation{}); err == nil {
		t.Error("expected error for snapshot without state")
	}
}

func TestStampQR(t *testing.T) {
	r := NewRenderer(640, 360, NewStyleCache())
	snaps := runSnapshots(t, extract.SeedSequence(extract.KindQueue, ""))

	img, err := r.Render(snaps[len(snaps)-1], FrameAnnotation{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	defer system.PutImage(img)

	before := make([]byte, len(img.Pix))
	copy(before, img.Pix)
	if err := StampQR(img, "https://example.com/notes"); err != nil {
		t.Fatalf("StampQR failed: %v", err)
	}
	if bytes.Equal(before, img.Pix) {
		t.Error("QR stamp changed no pixels")
	}
}
