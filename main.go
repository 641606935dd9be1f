package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/go-kit/log/level"

	"github.com/ytget/webp-uploader/internal/config"
	"github.com/ytget/webp-uploader/internal/controller"
	"github.com/ytget/webp-uploader/internal/download"
	"github.com/ytget/webp-uploader/internal/i18n"
	"github.com/ytget/webp-uploader/internal/logging"
	"github.com/ytget/webp-uploader/internal/platform"
	"github.com/ytget/webp-uploader/internal/progress"
	"github.com/ytget/webp-uploader/internal/ui"
	"github.com/ytget/webp-uploader/internal/upload"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.webp-uploader"
	AppName = "WebP Uploader"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", config.EnvFile, err)
	}
	overrides := config.ReadOverrides()

	logger := logging.New(os.Stderr, overrides.LogLevel, "webp-uploader")
	level.Info(logger).Log("msg", "starting", "version", version)
	defer level.Info(logger).Log("msg", "stopped")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	overrides.Apply(settings)

	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}
	myApp.Settings().SetTheme(ui.NewCompactTheme(settings.GetTheme()))

	localization := i18n.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	// Initialize services
	serverURL := settings.GetServerURL()
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		level.Warn(logger).Log("msg", "failed to ensure downloads dir", "dir", downloadsDir, "err", err)
	}

	archives := download.NewService(serverURL, downloadsDir, logging.Component(logger, "download"))
	deps := controller.Deps{
		Uploader: upload.NewService(serverURL, archives, logging.Component(logger, "upload")),
		Progress: progress.NewService(serverURL, logging.Component(logger, "progress")),
		Archives: archives,
		Logger:   logging.Component(logger, "controller"),
	}

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, settings, localization, deps, logging.Component(logger, "ui"))
	myWindow.SetOnClosed(root.Shutdown)

	// Show and run
	myWindow.ShowAndRun()
}
