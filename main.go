// Package main provides the entry point for the Banner Studio application.
package main

import (
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"banner-studio/internal/app"
	"banner-studio/internal/banner"
	"banner-studio/internal/imageio"
	"banner-studio/internal/version"
	"banner-studio/ui/mainwindow"
	"banner-studio/ui/prefs"
)

const appTitle = "Banner Studio"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.New()

	store := app.NewStore()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, store, appPrefs)
	win.SetTitle(appTitle)

	// An optional argument overrides the default background photo.
	if len(os.Args) > 1 {
		path := os.Args[1]
		if bg, err := imageio.Load(path); err != nil {
			log.Printf("Failed to load background %s: %v", path, err)
		} else {
			store.Update(banner.Patch{Background: bg})
		}
	}

	win.ShowAndRun()
}
