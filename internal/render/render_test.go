package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"banner-studio/internal/banner"
	"banner-studio/pkg/geometry"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r := New(banner.DefaultLayout())
	if err := r.Ready(); err != nil {
		t.Fatalf("renderer not ready: %v", err)
	}
	return r
}

func TestFontSetServesBothWeights(t *testing.T) {
	fs := NewFontSet()
	for _, w := range []Weight{WeightRegular, WeightBold} {
		face, err := fs.Face(w, 40)
		if err != nil {
			t.Fatalf("Face(%v, 40): %v", w, err)
		}
		if face == nil {
			t.Fatalf("Face(%v, 40) returned nil", w)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	r := testRenderer(t)
	st := banner.DefaultState()

	for _, tt := range []struct {
		scale float64
		side  int
	}{
		{1.0, 1080},
		{banner.ExportScale, 2160},
		{0.5, 540},
	} {
		img, err := r.Render(st, tt.scale)
		if err != nil {
			t.Fatalf("Render(scale=%v): %v", tt.scale, err)
		}
		if img.Bounds().Dx() != tt.side || img.Bounds().Dy() != tt.side {
			t.Errorf("scale %v: got %v, want %dx%d", tt.scale, img.Bounds(), tt.side, tt.side)
		}
	}
}

func TestRenderRejectsNonPositiveScale(t *testing.T) {
	r := testRenderer(t)
	if _, err := r.Render(banner.DefaultState(), 0); err == nil {
		t.Error("Render(0) should fail")
	}
	if _, err := r.Render(banner.DefaultState(), -1); err == nil {
		t.Error("Render(-1) should fail")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r := testRenderer(t)
	st := banner.DefaultState()

	a, err := r.Render(st, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Render(st, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same state differ")
	}
}

func TestRenderWithoutBackgroundIsBlackAtCorners(t *testing.T) {
	r := testRenderer(t)
	st := banner.DefaultState()
	st.Background.Image = nil

	img, err := r.Render(st, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	// Bottom-left corner carries no layer; must be the opaque black base.
	if got := img.RGBAAt(2, 1077); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("corner pixel = %v, want opaque black", got)
	}
}

func TestBackgroundTransformPlacesImage(t *testing.T) {
	r := testRenderer(t)
	st := banner.DefaultState()

	// A solid red photo: wherever it lands it is recognizable.
	red := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for i := range red.Pix {
		switch i % 4 {
		case 0, 3:
			red.Pix[i] = 0xFF
		}
	}
	st.Background = banner.Background{Image: red, Source: "test"}
	st.BgScale = 1.0
	st.BgPosition = geometry.Point2D{}

	img, err := r.Render(st, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	// Square photo at base width 1600 centered on the canvas covers the
	// middle; sample below the header area to dodge the gradient and text.
	got := img.RGBAAt(540, 700)
	if got.R < 200 || got.G > 80 {
		t.Errorf("canvas center = %v, want red background", got)
	}

	// Dragged fully off-canvas, the same sample point is black again.
	st.BgPosition = geometry.Point2D{X: 5000, Y: 0}
	img2, err := r.Render(st, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if got := img2.RGBAAt(540, 700); got.R > 50 {
		t.Errorf("after off-canvas drag pixel = %v, want black", got)
	}
}

func TestDiscountChangeIsLocalToDiscountBlock(t *testing.T) {
	r := testRenderer(t)
	const scale = 0.5

	base := banner.DefaultState()
	base.Background.Image = nil

	before, err := r.Render(base, scale)
	if err != nil {
		t.Fatal(err)
	}

	changed := base
	changed.DiscountPercentage = "-50"
	after, err := r.Render(changed, scale)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(before.Pix, after.Pix) {
		t.Fatal("changing the discount number must change the render")
	}

	block := r.Layout().DiscountBlock.Scaled(scale)
	side := before.Bounds().Dx()
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if block.Contains(geometry.Point2D{X: float64(x) + 0.5, Y: float64(y) + 0.5}) {
				continue
			}
			if before.RGBAAt(x, y) != after.RGBAAt(x, y) {
				t.Fatalf("pixel (%d, %d) outside the discount block changed", x, y)
			}
		}
	}
}

func TestQRBadgeOnlyWhenURLSet(t *testing.T) {
	r := testRenderer(t)
	st := banner.DefaultState()
	st.Background.Image = nil

	plain, err := r.Render(st, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	st.MenuURL = "https://example.com/menu"
	withQR, err := r.Render(st, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(plain.Pix, withQR.Pix) {
		t.Error("setting the menu URL must add the QR badge")
	}

	// The quiet zone just inside the badge corner is white; the same spot
	// was black without the badge.
	l := r.Layout()
	x := int(0.5 * (banner.CanvasSize - l.QRMargin - l.QRSize + 8))
	if got := withQR.RGBAAt(x, x); got.R < 200 {
		t.Errorf("QR quiet-zone pixel = %v, want white", got)
	}
}
