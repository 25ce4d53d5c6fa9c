// Package export rasterizes the composed banner at 2x density and writes it
// out as a PNG file.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"banner-studio/internal/banner"
)

// Status is the export state machine's current phase. The machine cycles
// Idle -> Exporting -> Idle; success and failure both land back on Idle.
type Status int

const (
	StatusIdle Status = iota
	StatusExporting
)

// ErrExportInFlight is returned when an export is triggered while a previous
// one has not finished. An in-flight export cannot be cancelled.
var ErrExportInFlight = errors.New("export already in progress")

// DefaultBasename is used when the dish name sanitizes to nothing.
const DefaultBasename = "banner"

// settleDelay gives any pending state updates time to land before the
// snapshot is taken.
const settleDelay = 100 * time.Millisecond

// Rasterizer produces the bitmap to export. It is a small interface so tests
// can substitute a failing or recording implementation; the real one is
// *render.Renderer.
type Rasterizer interface {
	// Ready reports whether the rasterization capability is available,
	// initializing it on demand.
	Ready() error
	// Render composes the state at the given uniform scale.
	Render(st banner.State, scale float64) (*image.RGBA, error)
}

// Exporter runs the one-shot export pipeline. All failures are terminal for
// that attempt and return the machine to Idle; there is no retry.
type Exporter struct {
	mu       sync.Mutex
	status   Status
	raster   Rasterizer
	outDir   string
	settle   time.Duration
	onStatus func(Status)
}

// New creates an exporter writing into outDir.
func New(raster Rasterizer, outDir string) *Exporter {
	return &Exporter{
		raster: raster,
		outDir: outDir,
		settle: settleDelay,
	}
}

// Status returns the machine's current phase.
func (e *Exporter) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// OnStatus sets a callback invoked on every phase transition.
func (e *Exporter) OnStatus(callback func(Status)) {
	e.mu.Lock()
	e.onStatus = callback
	e.mu.Unlock()
}

// SetOutputDir changes where exported files are written.
func (e *Exporter) SetOutputDir(dir string) {
	e.mu.Lock()
	e.outDir = dir
	e.mu.Unlock()
}

// OutputDir returns the current export directory.
func (e *Exporter) OutputDir() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.outDir
}

// Export rasterizes the state at banner.ExportScale and writes the PNG.
// Returns the written file's path. A second trigger while one export is in
// flight fails immediately with ErrExportInFlight.
func (e *Exporter) Export(st banner.State) (string, error) {
	e.mu.Lock()
	if e.status == StatusExporting {
		e.mu.Unlock()
		return "", ErrExportInFlight
	}
	e.status = StatusExporting
	notify := e.onStatus
	settle := e.settle
	outDir := e.outDir
	e.mu.Unlock()

	if notify != nil {
		notify(StatusExporting)
	}
	defer func() {
		e.mu.Lock()
		e.status = StatusIdle
		notify := e.onStatus
		e.mu.Unlock()
		if notify != nil {
			notify(StatusIdle)
		}
	}()

	// Let any just-triggered state updates land first.
	time.Sleep(settle)

	if err := e.raster.Ready(); err != nil {
		return "", fmt.Errorf("rasterizer unavailable: %w", err)
	}
	img, err := e.raster.Render(st, banner.ExportScale)
	if err != nil {
		return "", fmt.Errorf("rasterize banner: %w", err)
	}

	path := filepath.Join(outDir, Filename(st.DishName))
	if err := writePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// nonWord matches every rune stripped from the dish name when deriving the
// export filename. Unicode letters and digits survive, so Cyrillic names
// stay readable.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Filename derives the export filename from the dish name.
func Filename(dishName string) string {
	base := nonWord.ReplaceAllString(dishName, "")
	if base == "" {
		base = DefaultBasename
	}
	return base + ".png"
}

// writePNG encodes the image to the given path.
func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("flush export file: %w", err)
	}
	return nil
}

// DefaultOutputDir returns the user's Downloads directory, falling back to
// the home directory and finally the working directory.
func DefaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	downloads := filepath.Join(home, "Downloads")
	if info, err := os.Stat(downloads); err == nil && info.IsDir() {
		return downloads
	}
	return home
}
