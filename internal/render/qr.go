package render

import (
	"fmt"
	"image"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"
)

// StampQR renders url as a QR code into the bottom-right corner of img,
// used on the closing frame to link the source note or course page.
func StampQR(img *image.RGBA, url string) error {
	const size = 120
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	code := q.Image(size)

	margin := 24
	target := image.Rect(
		img.Rect.Max.X-size-margin,
		img.Rect.Max.Y-size-margin,
		img.Rect.Max.X-margin,
		img.Rect.Max.Y-margin,
	)
	draw.Draw(img, target, code, code.Bounds().Min, draw.Src)
	return nil
}
