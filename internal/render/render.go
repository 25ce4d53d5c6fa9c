// Package render composes a banner state into a bitmap. The same code path
// produces the interactive preview and the exported file; only the uniform
// scale differs, so the preview is faithful by construction.
package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"strings"

	"banner-studio/internal/banner"
	"banner-studio/pkg/geometry"
)

// badgeLineHeight is the line-height multiplier for the discount-type badge.
const badgeLineHeight = 1.05

// dishLineHeight approximates the default line box of the dish-name tag.
const dishLineHeight = 1.2

// Renderer is a pure projection of banner.State onto pixels. It holds only
// immutable layout configuration and a font cache; Render never mutates the
// state it is given.
type Renderer struct {
	layout banner.Layout
	fonts  *FontSet
}

// New creates a renderer for the given layout. Fonts are loaded lazily on
// first use; call Ready to force (and check) the load.
func New(layout banner.Layout) *Renderer {
	return &Renderer{
		layout: layout,
		fonts:  NewFontSet(),
	}
}

// Layout returns the layout the renderer composes with.
func (r *Renderer) Layout() banner.Layout {
	return r.layout
}

// Ready ensures the rasterization capability (the parsed typefaces) is
// available. It is safe to call repeatedly.
func (r *Renderer) Ready() error {
	return r.fonts.Ready()
}

// Render composes the banner at the given uniform scale: 1.0 yields the
// native 1080x1080 canvas, banner.ExportScale the 2160x2160 export.
func (r *Renderer) Render(st banner.State, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("render scale must be positive, got %v", scale)
	}
	if err := r.Ready(); err != nil {
		return nil, err
	}

	side := int(math.Round(banner.CanvasSize * scale))
	out := image.NewRGBA(image.Rect(0, 0, side, side))

	// Layer 0: opaque black base, then the transformed photo.
	draw.Draw(out, out.Bounds(), image.NewUniform(banner.CanvasBlack), image.Point{}, draw.Src)
	drawBackground(out, st, scale)

	// Decorative top gradient.
	gh := int(math.Round(r.layout.GradientHeight * scale))
	drawTopGradient(out, side, gh, r.layout.GradientAlpha)

	if err := r.drawHeader(out, st, scale); err != nil {
		return nil, err
	}
	if err := r.drawDiscountBlock(out, st, scale); err != nil {
		return nil, err
	}
	if err := r.drawPriceRow(out, st, scale); err != nil {
		return nil, err
	}

	if st.MenuURL != "" {
		if err := drawQRBadge(out, st.MenuURL, r.layout, scale); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// drawHeader draws the restaurant name (top-left) and the expiration date
// (right-aligned). Both are single-line; content is taken verbatim.
func (r *Renderer) drawHeader(out *image.RGBA, st banner.State, scale float64) error {
	l := r.layout

	nameFace, err := r.fonts.Face(WeightBold, l.NameSize*scale)
	if err != nil {
		return err
	}
	drawString(out, nameFace, st.RestaurantName,
		l.NamePos.X*scale,
		l.NamePos.Y*scale+faceAscent(nameFace),
		banner.TextWhite)

	dateFace, err := r.fonts.Face(WeightRegular, l.DateSize*scale)
	if err != nil {
		return err
	}
	dateX := (banner.CanvasSize-l.DateRight)*scale - measureString(dateFace, st.ExpirationDate)
	drawString(out, dateFace, st.ExpirationDate,
		dateX,
		l.DateTop*scale+faceAscent(dateFace),
		banner.TextWhite)

	return nil
}

// drawDiscountBlock draws the three stacked discount sub-layers in their
// stacking order: the "%" glyph lowest, the type badge in the middle, the
// discount number on top.
func (r *Renderer) drawDiscountBlock(out *image.RGBA, st banner.State, scale float64) error {
	l := r.layout
	bx := l.DiscountBlock.X * scale
	by := l.DiscountBlock.Y * scale

	// "%" glyph (lowest).
	pctFace, err := r.fonts.Face(WeightBold, l.PercentSize*scale)
	if err != nil {
		return err
	}
	drawString(out, pctFace, "%",
		bx+l.PercentPos.X*scale,
		by+l.PercentPos.Y*scale+faceAscent(pctFace),
		banner.TextWhite)

	// Discount-type badge (middle). Bottom-anchored inside a column as tall
	// as the number line, so it visually tucks behind the number.
	badgeFace, err := r.fonts.Face(WeightBold, l.BadgeTextSize*scale)
	if err != nil {
		return err
	}
	lines := strings.Split(st.DiscountType, "\n")
	lineH := l.BadgeTextSize * badgeLineHeight * scale
	textW := 0.0
	for _, line := range lines {
		if w := measureString(badgeFace, line); w > textW {
			textW = w
		}
	}
	badgeH := l.BadgePadTop*scale + lineH*float64(len(lines)) + l.BadgePadBottom*scale
	if min := l.BadgeMinHeight * scale; badgeH < min {
		badgeH = min
	}
	badgeW := textW + 2*l.BadgePadX*scale

	badgeBottom := by + (l.BadgePos.Y+l.NumberLineHeight-l.BadgeBottomInset)*scale
	badgeRect := geometry.NewRect(bx+l.BadgePos.X*scale, badgeBottom-badgeH, badgeW, badgeH)
	fillRoundedRect(out, badgeRect, uniformRadii(l.BadgeRadius*scale),
		gradientFill(banner.AccentStart, banner.AccentEnd))

	textTop := badgeRect.Y + (badgeH-lineH*float64(len(lines)))/2
	for i, line := range lines {
		drawString(out, badgeFace, line,
			badgeRect.X+l.BadgePadX*scale,
			textTop+lineH*float64(i)+faceAscent(badgeFace),
			banner.TextWhite)
	}

	// Discount number (highest).
	numFace, err := r.fonts.Face(WeightBold, l.NumberSize*scale)
	if err != nil {
		return err
	}
	drawString(out, numFace, st.DiscountPercentage,
		bx,
		by+faceAscent(numFace),
		banner.TextWhite)

	return nil
}

// drawPriceRow draws the dish-name tag with the two price badges beneath it,
// including the diagonal strike over the original price.
func (r *Renderer) drawPriceRow(out *image.RGBA, st banner.State, scale float64) error {
	l := r.layout
	rowX := l.PriceRowPos.X * scale
	rowY := l.PriceRowPos.Y * scale

	// Dish-name tag: white, square bottom-left corner.
	dishFace, err := r.fonts.Face(WeightBold, l.DishTextSize*scale)
	if err != nil {
		return err
	}
	tagW := measureString(dishFace, st.DishName) + 2*l.DishPadX*scale
	tagH := l.DishTextSize*dishLineHeight*scale + 2*l.DishPadY*scale
	tagRect := geometry.NewRect(rowX, rowY, tagW, tagH)
	rad := l.DishRadius * scale
	fillRoundedRect(out, tagRect, cornerRadii{TL: rad, TR: rad, BR: rad},
		solidFill(banner.TextWhite))
	drawStringCentered(out, dishFace, st.DishName, tagRect, banner.TextBlack)

	badgesTop := rowY + tagH

	// Discounted price: accent gradient, square top-left corner.
	newFace, err := r.fonts.Face(WeightBold, l.NewPriceSize*scale)
	if err != nil {
		return err
	}
	newH := l.NewPriceHeight * scale
	newW := measureString(newFace, st.PriceWithDiscount) + 2*l.NewPricePadX*scale
	newRect := geometry.NewRect(rowX, badgesTop, newW, newH)
	nr := l.NewPriceRadius * scale
	fillRoundedRect(out, newRect, cornerRadii{TR: nr, BR: nr, BL: nr},
		gradientFill(banner.AccentStart, banner.AccentEnd))
	drawStringCentered(out, newFace, st.PriceWithDiscount, newRect, banner.TextWhite)

	// Original price: dark gradient, lifted off the row baseline, struck out.
	oldFace, err := r.fonts.Face(WeightBold, l.OldPriceSize*scale)
	if err != nil {
		return err
	}
	oldH := l.OldPriceHeight * scale
	oldW := measureString(oldFace, st.OriginalPrice) + 2*l.OldPricePadX*scale
	oldRect := geometry.NewRect(
		newRect.X+newRect.Width+l.PriceGap*scale,
		badgesTop+newH-oldH-l.OldPriceLift*scale,
		oldW, oldH)
	fillRoundedRect(out, oldRect, uniformRadii(l.OldPriceRadius*scale),
		gradientFill(banner.DarkStart, banner.DarkEnd))
	drawStringCentered(out, oldFace, st.OriginalPrice, oldRect, banner.TextWhite)

	span := geometry.NewRect(oldRect.X+0.07*oldW, oldRect.Y+0.52*oldH, 0.86*oldW, 0)
	drawStrike(out, span, oldRect, l.StrikeAngleDeg, l.StrikeWidth*scale, banner.StrikeColor)

	return nil
}
