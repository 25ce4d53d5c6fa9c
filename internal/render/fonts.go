package render

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Weight selects one of the bundled typefaces.
type Weight int

const (
	WeightRegular Weight = iota
	WeightBold
)

type faceKey struct {
	weight Weight
	// size in 1/64 px so fractional design sizes map to distinct faces
	size26_6 fixed.Int26_6
}

// FontSet parses the bundled fonts on first use and caches faces per size.
// Parsing is the export pipeline's "capability ready" step: it can fail, and
// until it has succeeded no text can be rasterized.
type FontSet struct {
	mu      sync.Mutex
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

// NewFontSet returns an empty, not-yet-loaded font set.
func NewFontSet() *FontSet {
	return &FontSet{faces: make(map[faceKey]font.Face)}
}

// Ready parses the bundled typefaces if they have not been parsed yet.
func (fs *FontSet) Ready() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.readyLocked()
}

func (fs *FontSet) readyLocked() error {
	if fs.bold != nil {
		return nil
	}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("parse bold font: %w", err)
	}
	fs.regular = reg
	fs.bold = bold
	return nil
}

// Face returns a cached face for the weight at the given pixel size.
func (fs *FontSet) Face(weight Weight, sizePx float64) (font.Face, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.readyLocked(); err != nil {
		return nil, err
	}

	key := faceKey{weight: weight, size26_6: fixed.Int26_6(math.Round(sizePx * 64))}
	if face, ok := fs.faces[key]; ok {
		return face, nil
	}

	src := fs.regular
	if weight == WeightBold {
		src = fs.bold
	}

	// At 72 DPI one point equals one pixel, so Size is the pixel size.
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face at %.2fpx: %w", sizePx, err)
	}
	fs.faces[key] = face
	return face, nil
}
