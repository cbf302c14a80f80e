package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/rathdl/rath/internal/config"
	"github.com/rathdl/rath/internal/download"
	"github.com/rathdl/rath/internal/platform"
	"github.com/rathdl/rath/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.rathdl.rath"
	AppName = "RATH"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Info().Str("version", version).Msg("starting")

	store := config.NewStore(config.DefaultPath())
	cfg := store.Load()
	if err := platform.CreateDirectoryIfNotExists(cfg.Folder); err != nil {
		log.Warn().Err(err).Str("folder", cfg.Folder).Msg("ensure download folder")
	}

	rathApp := app.NewWithID(AppID)
	rathApp.Settings().SetTheme(ui.NewAccentTheme(cfg.AccentColor))

	window := rathApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	window.SetMaster()

	root := ui.NewRootUI(window, rathApp, store, log)
	controller := download.NewController(download.NewYTDLPFetcher(), root, log)
	root.SetSubmitter(controller)

	ui.ShowSplash(rathApp, func() {
		window.Show()
	})

	rathApp.Run()
}
