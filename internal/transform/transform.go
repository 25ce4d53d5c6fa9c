// Package transform converts raw pointer gestures into banner state updates.
//
// Drag deltas arrive in screen pixels while the background position lives in
// the 1080x1080 design space, so every delta is divided by the current
// preview scale to keep drag speed visually 1:1 at any preview size. The
// preview scale is an explicit parameter here, never captured implicitly.
package transform

import (
	"banner-studio/internal/app"
	"banner-studio/internal/banner"
	"banner-studio/pkg/geometry"
)

// WheelFactor maps a wheel delta to a zoom delta.
const WheelFactor = 0.001

// MinPreviewScale floors the divisor used for drag conversion. During the
// first layout pass the preview scale can momentarily be zero.
const MinPreviewScale = 0.01

// Controller translates drag and wheel input into store updates.
type Controller struct {
	store *app.Store
}

// NewController creates a controller bound to the store.
func NewController(store *app.Store) *Controller {
	return &Controller{store: store}
}

// Drag applies an incremental pointer-move delta in screen pixels. The
// position is unbounded: the background may be dragged fully off-canvas.
func (c *Controller) Drag(dx, dy, previewScale float64) {
	if previewScale < MinPreviewScale {
		previewScale = MinPreviewScale
	}

	delta := geometry.Point2D{X: dx, Y: dy}.Scale(1 / previewScale)
	pos := c.store.State().BgPosition.Add(delta)
	c.store.Update(banner.Patch{BgPosition: &pos})
}

// Wheel applies one wheel tick. deltaY follows the wheel convention
// (positive = scroll down = zoom out). Ticks are independent; there is no
// momentum.
func (c *Controller) Wheel(deltaY float64) {
	c.SetScale(c.store.State().BgScale + -deltaY*WheelFactor)
}

// SetScale sets the background zoom directly (slider path). The wheel and
// the slider share the same authoritative bounds.
func (c *Controller) SetScale(scale float64) {
	scale = geometry.Clamp(scale, banner.MinBgScale, banner.MaxBgScale)
	c.store.Update(banner.Patch{BgScale: &scale})
}
