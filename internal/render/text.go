package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"banner-studio/pkg/geometry"
)

// drawString draws text with its baseline at (x, y) in output pixels.
func drawString(dst *image.RGBA, face font.Face, text string, x, y float64, col color.RGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(text)
}

// drawStringCentered draws a single line centered inside the rectangle.
func drawStringCentered(dst *image.RGBA, face font.Face, text string, r geometry.Rect, col color.RGBA) {
	w := measureString(face, text)
	m := face.Metrics()
	asc := fromFixed(m.Ascent)
	desc := fromFixed(m.Descent)

	x := r.X + (r.Width-w)/2
	y := r.Y + (r.Height+asc-desc)/2
	drawString(dst, face, text, x, y, col)
}

// measureString returns the advance width of text in pixels.
func measureString(face font.Face, text string) float64 {
	return fromFixed(font.MeasureString(face, text))
}

// faceAscent returns the face's ascent in pixels.
func faceAscent(face font.Face) float64 {
	return fromFixed(face.Metrics().Ascent)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
