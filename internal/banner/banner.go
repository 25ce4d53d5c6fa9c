// Package banner defines the banner document model: the editable state,
// partial-update patches, and the fixed design-space layout.
package banner

import (
	"image"

	"banner-studio/pkg/geometry"
)

const (
	// CanvasSize is the side length of the square design canvas in pixels.
	// All layout coordinates are expressed in this space.
	CanvasSize = 1080

	// ExportScale is the pixel density multiplier applied when rasterizing
	// for export (2160x2160 output).
	ExportScale = 2.0

	// MinBgScale and MaxBgScale bound the background zoom factor. The same
	// bounds apply to the wheel and the slider path.
	MinBgScale = 0.1
	MaxBgScale = 5.0

	// BaseImageWidth is the display width of the background photo at zoom
	// 1.0, before the user's scale is applied. Height follows the photo's
	// aspect ratio.
	BaseImageWidth = 1600
)

// Background holds the banner's background photo and where it came from.
type Background struct {
	Image  image.Image // decoded pixels, nil until a photo is loaded
	Source string      // file path, remote URL, or data URI
}

// State is the complete editable banner document. Text fields are free-form
// strings with no validation; content that does not fit the fixed layout is
// the caller's concern.
type State struct {
	RestaurantName     string
	ExpirationDate     string
	DiscountPercentage string
	DiscountType       string // may contain newlines
	DishName           string
	PriceWithDiscount  string
	OriginalPrice      string
	MenuURL            string // empty = no QR badge

	Background Background
	BgScale    float64          // zoom factor, within [MinBgScale, MaxBgScale]
	BgPosition geometry.Point2D // pan offset in design-space pixels, unbounded
}

// DefaultState returns the document every session starts from.
func DefaultState() State {
	return State{
		RestaurantName:     "Afsona Aktobe",
		ExpirationDate:     "до 21 октября",
		DiscountPercentage: "-30",
		DiscountType:       "на все меню",
		DishName:           "Плов «Праздничный»",
		PriceWithDiscount:  "3.003₸",
		OriginalPrice:      "4.290₸",
		Background: Background{
			Source: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?q=80&w=2070&auto=format&fit=crop",
		},
		BgScale:    1.2,
		BgPosition: geometry.Point2D{},
	}
}

// Patch is a partial update to a State. Nil fields are left untouched by
// Apply; set fields replace the current value verbatim.
type Patch struct {
	RestaurantName     *string
	ExpirationDate     *string
	DiscountPercentage *string
	DiscountType       *string
	DishName           *string
	PriceWithDiscount  *string
	OriginalPrice      *string
	MenuURL            *string
	Background         *Background
	BgScale            *float64
	BgPosition         *geometry.Point2D
}

// Apply merges the patch into s and returns the result. s itself is not
// modified; unspecified fields carry over unchanged.
func (p Patch) Apply(s State) State {
	if p.RestaurantName != nil {
		s.RestaurantName = *p.RestaurantName
	}
	if p.ExpirationDate != nil {
		s.ExpirationDate = *p.ExpirationDate
	}
	if p.DiscountPercentage != nil {
		s.DiscountPercentage = *p.DiscountPercentage
	}
	if p.DiscountType != nil {
		s.DiscountType = *p.DiscountType
	}
	if p.DishName != nil {
		s.DishName = *p.DishName
	}
	if p.PriceWithDiscount != nil {
		s.PriceWithDiscount = *p.PriceWithDiscount
	}
	if p.OriginalPrice != nil {
		s.OriginalPrice = *p.OriginalPrice
	}
	if p.MenuURL != nil {
		s.MenuURL = *p.MenuURL
	}
	if p.Background != nil {
		s.Background = *p.Background
	}
	if p.BgScale != nil {
		s.BgScale = *p.BgScale
	}
	if p.BgPosition != nil {
		s.BgPosition = *p.BgPosition
	}
	return s
}
