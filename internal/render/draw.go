package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// drawLine rasterizes with integer Bresenham; frame geometry is coarse
// enough that anti-aliasing buys nothing.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawArrow draws a line with a solid head at (x1, y1).
func drawArrow(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	drawLine(img, x0, y0, x1, y1, c)
	angle := math.Atan2(float64(y1-y0), float64(x1-x0))
	const headLen = 9.0
	for _, da := range []float64{math.Pi / 7, -math.Pi / 7} {
		hx := x1 - int(headLen*math.Cos(angle+da))
		hy := y1 - int(headLen*math.Sin(angle+da))
		drawLine(img, x1, y1, hx, hy, c)
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}

func strokeCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	steps := 8 * r
	if steps < 32 {
		steps = 32
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		img.SetRGBA(cx+int(float64(r)*math.Cos(a)), cy+int(float64(r)*math.Sin(a)), c)
	}
}

// drawText renders s with its baseline at (x, y).
func drawText(img *image.RGBA, face font.Face, x, y int, s string, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{c},
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawTextCentered centers s horizontally around cx.
func drawTextCentered(img *image.RGBA, face font.Face, cx, y int, s string, c color.RGBA) {
	drawText(img, face, cx-textWidth(s)/2, y, s, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
