package banner

import (
	"image/color"

	"banner-studio/pkg/colorutil"
	"banner-studio/pkg/geometry"
)

// Layout is the fixed design-space placement of every banner layer. One
// instance describes the whole composition; the renderer consumes it and
// contains no positioning constants of its own. Values are tuned for the
// default content and are not adjusted to fit replacement text.
type Layout struct {
	// Header row
	NamePos   geometry.Point2D // restaurant name, top-left anchor
	NameSize  float64
	DateRight float64 // right margin of the expiration date
	DateTop   float64
	DateSize  float64

	// Dark-to-transparent overlay at the top of the canvas
	GradientHeight float64
	GradientAlpha  float64 // opacity at the very top edge

	// Discount block; sub-layer positions are relative to the block origin
	DiscountBlock    geometry.Rect
	NumberSize       float64
	NumberLineHeight float64
	PercentPos       geometry.Point2D
	PercentSize      float64
	BadgePos         geometry.Point2D // bottom-anchored column origin
	BadgeTextSize    float64
	BadgeRadius      float64
	BadgeMinHeight   float64
	BadgePadX        float64
	BadgePadTop      float64
	BadgePadBottom   float64
	BadgeBottomInset float64 // gap between badge bottom and number baseline box

	// Price row
	PriceRowPos    geometry.Point2D
	DishTextSize   float64
	DishPadX       float64
	DishPadY       float64
	DishRadius     float64
	PriceGap       float64
	NewPriceSize   float64
	NewPriceHeight float64
	NewPricePadX   float64
	NewPriceRadius float64
	OldPriceSize   float64
	OldPriceHeight float64
	OldPricePadX   float64
	OldPriceRadius float64
	OldPriceLift   float64 // how far the old-price badge sits above the row baseline
	StrikeAngleDeg float64
	StrikeWidth    float64

	// Optional QR badge, bottom-right
	QRSize   float64
	QRMargin float64
}

// DefaultLayout returns the composition the banner was designed around.
func DefaultLayout() Layout {
	return Layout{
		NamePos:   geometry.Point2D{X: 70, Y: 50},
		NameSize:  80,
		DateRight: 50,
		DateTop:   68,
		DateSize:  40,

		GradientHeight: 400,
		GradientAlpha:  0.7,

		DiscountBlock:    geometry.NewRect(38, 166, 800, 400),
		NumberSize:       235.677,
		NumberLineHeight: 235.677,
		PercentPos:       geometry.Point2D{X: 360, Y: 0},
		PercentSize:      107.975,
		BadgePos:         geometry.Point2D{X: 395, Y: -10},
		BadgeTextSize:    41.52,
		BadgeRadius:      21.595,
		BadgeMinHeight:   99.67,
		BadgePadX:        22,
		BadgePadTop:      10,
		BadgePadBottom:   15,
		BadgeBottomInset: 24,

		PriceRowPos:    geometry.Point2D{X: 50, Y: 811},
		DishTextSize:   35,
		DishPadX:       20,
		DishPadY:       8,
		DishRadius:     25,
		PriceGap:       20,
		NewPriceSize:   99.5,
		NewPriceHeight: 148,
		NewPricePadX:   40,
		NewPriceRadius: 42,
		OldPriceSize:   66,
		OldPriceHeight: 104,
		OldPricePadX:   32,
		OldPriceRadius: 33,
		OldPriceLift:   16,
		StrikeAngleDeg: -9.77,
		StrikeWidth:    8,

		QRSize:   140,
		QRMargin: 40,
	}
}

// Banner palette. Gradients run start to end left to right.
var (
	AccentStart = color.RGBA{R: 0xFF, G: 0x50, B: 0x53, A: 0xFF}
	AccentEnd   = color.RGBA{R: 0xFF, G: 0x21, B: 0x25, A: 0xFF}
	DarkStart   = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
	DarkEnd     = colorutil.Black
	StrikeColor = color.RGBA{R: 0xFF, G: 0x23, B: 0x27, A: 0xFF}
	TextWhite   = colorutil.White
	TextBlack   = colorutil.Black
	CanvasBlack = colorutil.Black
)
