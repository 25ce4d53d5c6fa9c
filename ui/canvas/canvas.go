// Package canvas provides the live banner preview with pan and zoom.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"banner-studio/internal/app"
	"banner-studio/internal/render"
	"banner-studio/internal/transform"
)

// workspaceColor fills the area around the fitted preview.
var workspaceColor = color.RGBA{R: 0xF2, G: 0xF2, B: 0xF7, A: 0xFF}

// BannerCanvas shows the composed banner scaled to fit the widget, and
// forwards drag/wheel gestures to the transform controller. The preview and
// the export share one renderer, so what is shown is what is saved.
type BannerCanvas struct {
	widget.BaseWidget

	store    *app.Store
	ctrl     *transform.Controller
	renderer *render.Renderer
	raster   *fynecanvas.Raster

	mu           sync.RWMutex
	previewScale float64
}

// NewBannerCanvas creates the preview widget and subscribes it to state
// changes.
func NewBannerCanvas(store *app.Store, ctrl *transform.Controller, renderer *render.Renderer) *BannerCanvas {
	bc := &BannerCanvas{
		store:        store,
		ctrl:         ctrl,
		renderer:     renderer,
		previewScale: transform.MinPreviewScale,
	}
	bc.raster = fynecanvas.NewRaster(bc.draw)
	bc.ExtendBaseWidget(bc)

	store.On(app.EventStateChanged, func(interface{}) {
		bc.raster.Refresh()
	})
	return bc
}

// PreviewScale returns the scale currently mapping design space to screen.
func (bc *BannerCanvas) PreviewScale() float64 {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return bc.previewScale
}

// draw is the raster drawing function. It refits the canvas on every call,
// so container resizes are picked up without a separate listener.
func (bc *BannerCanvas) draw(w, h int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(workspaceColor), image.Point{}, draw.Src)
	if w <= 0 || h <= 0 {
		return out
	}

	scale := render.FitScale(float64(w), float64(h))
	bc.mu.Lock()
	bc.previewScale = scale
	bc.mu.Unlock()

	banner, err := bc.renderer.Render(bc.store.State(), scale)
	if err != nil {
		log.Printf("preview render failed: %v", err)
		return out
	}

	// Center the fitted canvas in the widget.
	bw := banner.Bounds().Dx()
	bh := banner.Bounds().Dy()
	x0 := (w - bw) / 2
	y0 := (h - bh) / 2
	target := image.Rect(x0, y0, x0+bw, y0+bh).Intersect(out.Bounds())
	draw.Draw(out, target, banner, image.Pt(target.Min.X-x0, target.Min.Y-y0), draw.Src)

	return out
}

// Dragged pans the background. Deltas arrive in screen pixels; the
// controller rescales them into design space.
func (bc *BannerCanvas) Dragged(ev *fyne.DragEvent) {
	bc.ctrl.Drag(float64(ev.Dragged.DX), float64(ev.Dragged.DY), bc.PreviewScale())
}

// DragEnd implements fyne.Draggable. Panning applies per-delta, so there is
// nothing to finalize.
func (bc *BannerCanvas) DragEnd() {}

// Scrolled zooms the background. Fyne reports DY positive for scroll-up;
// the controller expects the wheel convention (positive = scroll down).
func (bc *BannerCanvas) Scrolled(ev *fyne.ScrollEvent) {
	bc.ctrl.Wheel(float64(-ev.Scrolled.DY))
}

// Cursor gives the background its grab affordance.
func (bc *BannerCanvas) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// Refresh redraws the preview.
func (bc *BannerCanvas) Refresh() {
	bc.raster.Refresh()
	bc.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (bc *BannerCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &bannerCanvasRenderer{canvas: bc}
}

type bannerCanvasRenderer struct {
	canvas *BannerCanvas
}

func (r *bannerCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
}

func (r *bannerCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 320)
}

func (r *bannerCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *bannerCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *bannerCanvasRenderer) Destroy() {}
