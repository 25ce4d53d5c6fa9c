// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"banner-studio/internal/app"
	"banner-studio/internal/banner"
	"banner-studio/internal/export"
	"banner-studio/internal/imageio"
	"banner-studio/internal/render"
	"banner-studio/internal/transform"
	"banner-studio/ui/canvas"
	"banner-studio/ui/panels"
	"banner-studio/ui/prefs"
)

const (
	prefKeyExportDir    = "exportDirectory"
	prefKeyWindowWidth  = "windowWidth"
	prefKeyWindowHeight = "windowHeight"
)

// MainWindow is the primary application window: form panel on the left,
// live preview in the center, status bar at the bottom.
type MainWindow struct {
	fyne.Window
	app      fyne.App
	store    *app.Store
	prefs    *prefs.Prefs
	exporter *export.Exporter

	canvas    *canvas.BannerCanvas
	form      *panels.FormPanel
	statusBar *widget.Label
}

// New creates a new main window wired to the store.
func New(fyneApp fyne.App, store *app.Store, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Banner Studio")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		store:  store,
		prefs:  p,
	}

	renderer := render.New(banner.DefaultLayout())
	ctrl := transform.NewController(store)

	outDir := p.String(prefKeyExportDir)
	if outDir == "" {
		outDir = export.DefaultOutputDir()
	}
	mw.exporter = export.New(renderer, outDir)

	mw.canvas = canvas.NewBannerCanvas(store, ctrl, renderer)
	mw.form = panels.NewFormPanel(store, ctrl, mw.exporter, p)
	mw.form.SetWindow(win)

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	win.Resize(fyne.NewSize(
		float32(p.FloatWithFallback(prefKeyWindowWidth, 1280)),
		float32(p.FloatWithFallback(prefKeyWindowHeight, 860)),
	))
	win.SetCloseIntercept(func() {
		mw.SavePreferences()
		win.Close()
	})

	mw.loadInitialBackground()

	return mw
}

// setupUI creates the main layout.
func (mw *MainWindow) setupUI() {
	mw.statusBar = widget.NewLabel("Ready")

	split := container.NewHSplit(
		mw.form.Container(),
		mw.canvas,
	)
	split.SetOffset(0.28) // Form takes just over a quarter of the width

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)
	mw.SetContent(content)
}

// setupMenus creates the File menu.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export PNG", func() {
			mw.exportFromMenu()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			mw.SavePreferences()
			mw.app.Quit()
		}),
	)
	mw.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// exportFromMenu runs the same export path as the panel button, so failures
// reach the user through the same error dialog.
func (mw *MainWindow) exportFromMenu() {
	mw.form.Export()
}

// setupEventHandlers keeps the status bar current.
func (mw *MainWindow) setupEventHandlers() {
	mw.store.On(app.EventExportStarted, func(interface{}) {
		mw.statusBar.SetText("Exporting…")
	})
	mw.store.On(app.EventBackgroundLoaded, func(data interface{}) {
		if src, ok := data.(string); ok {
			mw.statusBar.SetText(fmt.Sprintf("Background: %s", src))
		}
	})
	mw.store.On(app.EventExportFinished, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.statusBar.SetText(fmt.Sprintf("Exported %s", path))
		}
	})
}

// loadInitialBackground fetches the default (or restored) background photo
// without blocking startup. A failed load leaves the black canvas; the
// editor stays usable.
func (mw *MainWindow) loadInitialBackground() {
	src := mw.store.State().Background.Source
	if src == "" {
		return
	}
	go func() {
		bg, err := imageio.Resolve(src)
		if err != nil {
			log.Printf("initial background load failed: %v", err)
			return
		}
		// A photo chosen while this fetch was in flight must not be
		// overwritten by the stale result.
		if !mw.store.ApplyBackground(src, bg) {
			return
		}
		mw.store.Emit(app.EventBackgroundLoaded, bg.Source)
	}()
}

// SavePreferences persists window geometry and the export directory.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefKeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefKeyWindowHeight, float64(size.Height))
	mw.prefs.SetString(prefKeyExportDir, mw.exporter.OutputDir())
	if err := mw.prefs.Save(); err != nil {
		log.Printf("failed to save preferences: %v", err)
	}
}
