package render

import (
	"math"

	"banner-studio/internal/banner"
	"banner-studio/internal/transform"
)

// FitPadding is the total margin, in screen pixels, kept around the preview
// in each dimension when fitting the canvas into its container.
const FitPadding = 80

// FitScale computes the uniform preview scale that fits the design canvas
// into a container of the given size. The result is floored at a small
// positive value so it is always safe to divide by.
func FitScale(availW, availH float64) float64 {
	usable := math.Min(availW-FitPadding, availH-FitPadding)
	scale := usable / banner.CanvasSize
	if scale < transform.MinPreviewScale {
		return transform.MinPreviewScale
	}
	return scale
}
