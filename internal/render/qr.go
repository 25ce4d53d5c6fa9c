package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	qrcode "github.com/skip2/go-qrcode"

	"banner-studio/internal/banner"
)

// drawQRBadge renders the menu-link QR code into the bottom-right corner.
// Callers skip this layer entirely when the URL is empty.
func drawQRBadge(dst *image.RGBA, url string, l banner.Layout, scale float64) error {
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("build qr code: %w", err)
	}

	size := int(math.Round(l.QRSize * scale))
	if size < 1 {
		return nil
	}
	img := q.Image(size)

	margin := int(math.Round(l.QRMargin * scale))
	canvas := int(math.Round(banner.CanvasSize * scale))
	x0 := canvas - margin - size
	y0 := canvas - margin - size

	target := image.Rect(x0, y0, x0+size, y0+size).Intersect(dst.Bounds())
	if target.Empty() {
		return nil
	}
	draw.Draw(dst, target, img, image.Pt(target.Min.X-x0, target.Min.Y-y0), draw.Over)
	return nil
}
