package video

import "math"

// FrameRepeats переводит длительность показа кадра в число повторов при
// заданном fps. Любой кадр показывается хотя бы один раз.
func FrameRepeats(hold float64, fps int) int {
	n := int(math.Round(hold * float64(fps)))
	if n < 1 {
		n = 1
	}
	return n
}

// ExpandPlan строит план повторов по одному элементу на кадр. Если звук
// длиннее видеоряда, последний кадр продлевается до конца дорожки; более
// короткий звук не обрезает видео.
func ExpandPlan(holds []float64, fps int, audioDuration float64) []int {
	repeats := make([]int, len(holds))
	total := 0
	for i, h := range holds {
		repeats[i] = FrameRepeats(h, fps)
		total += repeats[i]
	}
	if len(repeats) == 0 {
		return repeats
	}

	if need := int(math.Ceil(audioDuration * float64(fps))); need > total {
		repeats[len(repeats)-1] += need - total
	}
	return repeats
}

// PlannedDuration возвращает фактическую длительность плана в секундах.
func PlannedDuration(repeats []int, fps int) float64 {
	total := 0
	for _, n := range repeats {
		total += n
	}
	return float64(total) / float64(fps)
}
