package render

import (
	"image"
	"image/color"
	"math"

	"banner-studio/pkg/colorutil"
	"banner-studio/pkg/geometry"
)

// cornerRadii holds per-corner radii for rounded rectangles, in output pixels.
type cornerRadii struct {
	TL, TR, BR, BL float64
}

func uniformRadii(r float64) cornerRadii {
	return cornerRadii{TL: r, TR: r, BR: r, BL: r}
}

// fillRoundedRect fills the rectangle, excluding the rounded corner cutouts.
// colorAt receives the horizontal position within the rect as t in [0, 1],
// which is how the banner's left-to-right gradients are expressed.
func fillRoundedRect(dst *image.RGBA, r geometry.Rect, radii cornerRadii, colorAt func(t float64) color.RGBA) {
	x0 := int(math.Floor(r.X))
	y0 := int(math.Floor(r.Y))
	x1 := int(math.Ceil(r.X + r.Width))
	y1 := int(math.Ceil(r.Y + r.Height))

	bounds := dst.Bounds()
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if x1 > bounds.Max.X {
		x1 = bounds.Max.X
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			if !insideRounded(r, radii, px, py) {
				continue
			}
			t := 0.0
			if r.Width > 0 {
				t = (px - r.X) / r.Width
			}
			dst.SetRGBA(x, y, colorAt(t))
		}
	}
}

// insideRounded reports whether the point lies inside the rounded rectangle.
func insideRounded(r geometry.Rect, radii cornerRadii, px, py float64) bool {
	if px < r.X || px > r.X+r.Width || py < r.Y || py > r.Y+r.Height {
		return false
	}
	corners := []struct {
		cx, cy, rad float64
		inX, inY    bool
	}{
		{r.X + radii.TL, r.Y + radii.TL, radii.TL, px < r.X+radii.TL, py < r.Y+radii.TL},
		{r.X + r.Width - radii.TR, r.Y + radii.TR, radii.TR, px > r.X+r.Width-radii.TR, py < r.Y+radii.TR},
		{r.X + r.Width - radii.BR, r.Y + r.Height - radii.BR, radii.BR, px > r.X+r.Width-radii.BR, py > r.Y+r.Height-radii.BR},
		{r.X + radii.BL, r.Y + r.Height - radii.BL, radii.BL, px < r.X+radii.BL, py > r.Y+r.Height-radii.BL},
	}
	for _, c := range corners {
		if c.rad <= 0 || !c.inX || !c.inY {
			continue
		}
		dx := px - c.cx
		dy := py - c.cy
		if dx*dx+dy*dy > c.rad*c.rad {
			return false
		}
	}
	return true
}

// solidFill adapts a plain color to the colorAt signature.
func solidFill(c color.RGBA) func(t float64) color.RGBA {
	return func(float64) color.RGBA { return c }
}

// gradientFill interpolates start to end left to right.
func gradientFill(start, end color.RGBA) func(t float64) color.RGBA {
	return func(t float64) color.RGBA { return colorutil.Lerp(start, end, t) }
}

// drawTopGradient blends a black fade over the top rows of the canvas:
// topAlpha at row 0, fully transparent at height.
func drawTopGradient(dst *image.RGBA, width, height int, topAlpha float64) {
	for y := 0; y < height; y++ {
		alpha := topAlpha * (1 - float64(y)/float64(height))
		if alpha <= 0 {
			continue
		}
		inv := 1 - alpha
		for x := 0; x < width; x++ {
			c := dst.RGBAAt(x, y)
			c.R = uint8(float64(c.R) * inv)
			c.G = uint8(float64(c.G) * inv)
			c.B = uint8(float64(c.B) * inv)
			dst.SetRGBA(x, y, c)
		}
	}
}

// drawStrike draws the diagonal strike-through line: a bar of the given
// thickness spanning the rect horizontally, rotated about the rect's center
// and clipped to clip.
func drawStrike(dst *image.RGBA, span geometry.Rect, clip geometry.Rect, angleDeg, thickness float64, col color.RGBA) {
	angle := angleDeg * math.Pi / 180
	sin, cos := math.Sin(-angle), math.Cos(-angle)
	c := span.Center()
	half := thickness / 2

	x0 := int(math.Floor(clip.X))
	y0 := int(math.Floor(clip.Y))
	x1 := int(math.Ceil(clip.X + clip.Width))
	y1 := int(math.Ceil(clip.Y + clip.Height))

	bounds := dst.Bounds()
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if x1 > bounds.Max.X {
		x1 = bounds.Max.X
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			// Rotate the pixel back into the bar's axis-aligned frame.
			dx := float64(x) + 0.5 - c.X
			dy := float64(y) + 0.5 - c.Y
			lx := dx*cos - dy*sin
			ly := dx*sin + dy*cos
			if math.Abs(ly) <= half && lx >= -span.Width/2 && lx <= span.Width/2 {
				dst.SetRGBA(x, y, col)
			}
		}
	}
}
