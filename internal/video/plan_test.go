package video

import (
	"math"
	"testing"
)

func TestFrameRepeats(t *testing.T) {
	cases := []struct {
		hold float64
		fps  int
		want int
	}{
		{1.0, 30, 30},
		{1.5, 30, 45},
		{2.0, 30, 60},
		{3.0, 30, 90},
		{0.0, 30, 1},
		{0.01, 30, 1},
		{1.0, 24, 24},
	}
	for _, c := range cases {
		if got := FrameRepeats(c.hold, c.fps); got != c.want {
			t.Errorf("FrameRepeats(%v, %d) = %d, want %d", c.hold, c.fps, got, c.want)
		}
	}
}

func TestExpandPlanDuration(t *testing.T) {
	// Типичный шаг: 1.5с до операции + 2.0с после, четыре операции.
	holds := []float64{1.0, 2.0, 1.5, 2.0, 1.5, 2.0, 1.5, 2.0, 1.5, 5.0}
	repeats := ExpandPlan(holds, 30, 0)

	want := 0.0
	for _, h := range holds {
		want += h
	}
	got := PlannedDuration(repeats, 30)
	if math.Abs(got-want) > 0.5 {
		t.Errorf("planned duration = %v, want about %v", got, want)
	}
}

func TestExpandPlanExtendsForAudio(t *testing.T) {
	holds := []float64{1.0, 1.0}
	repeats := ExpandPlan(holds, 30, 10.0)

	if got := PlannedDuration(repeats, 30); got < 10.0 {
		t.Errorf("plan shorter than audio: %v", got)
	}
	if repeats[0] != 30 {
		t.Errorf("only the last frame may be extended, repeats[0] = %d", repeats[0])
	}
	if repeats[1] <= 30 {
		t.Errorf("last frame not extended: %d", repeats[1])
	}
}

func TestExpandPlanShortAudioKeepsVideo(t *testing.T) {
	holds := []float64{2.0, 2.0}
	repeats := ExpandPlan(holds, 30, 1.0)

	if got := PlannedDuration(repeats, 30); math.Abs(got-4.0) > 0.1 {
		t.Errorf("short audio must not trim the video, duration = %v", got)
	}
}

func TestExpandPlanEmpty(t *testing.T) {
	if repeats := ExpandPlan(nil, 30, 5.0); len(repeats) != 0 {
		t.Errorf("expected empty plan, got %v", repeats)
	}
}
