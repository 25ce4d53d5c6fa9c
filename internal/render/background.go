package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"

	"banner-studio/internal/banner"
)

// drawBackground draws the background photo with the user's pan/zoom
// transform applied, clipped to the canvas.
//
// The photo is displayed at a base width of banner.BaseImageWidth, centered
// on the canvas, then scaled by BgScale about the canvas center and
// translated by BgPosition. The translation is applied in design space, not
// scaled by the zoom, matching the on-screen drag behavior.
func drawBackground(dst *image.RGBA, st banner.State, scale float64) {
	src := st.Background.Image
	if src == nil {
		return
	}
	srcBounds := src.Bounds()
	if srcBounds.Dx() == 0 || srcBounds.Dy() == 0 {
		return
	}

	dispW := banner.BaseImageWidth * st.BgScale * scale
	dispH := dispW * float64(srcBounds.Dy()) / float64(srcBounds.Dx())
	if dispW < 1 || dispH < 1 {
		return
	}

	centerX := (banner.CanvasSize/2 + st.BgPosition.X) * scale
	centerY := (banner.CanvasSize/2 + st.BgPosition.Y) * scale

	w := int(math.Round(dispW))
	h := int(math.Round(dispH))
	resized := imaging.Resize(src, w, h, imaging.Lanczos)

	x0 := int(math.Round(centerX - dispW/2))
	y0 := int(math.Round(centerY - dispH/2))

	target := image.Rect(x0, y0, x0+w, y0+h).Intersect(dst.Bounds())
	if target.Empty() {
		return
	}
	srcPt := image.Pt(target.Min.X-x0, target.Min.Y-y0)
	draw.Draw(dst, target, resized, srcPt, draw.Over)
}
