// Command webp-upload sends images to the conversion server from the terminal
// and saves the returned archive.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log/level"

	"github.com/ytget/webp-uploader/internal/config"
	"github.com/ytget/webp-uploader/internal/controller"
	"github.com/ytget/webp-uploader/internal/download"
	"github.com/ytget/webp-uploader/internal/estimate"
	"github.com/ytget/webp-uploader/internal/i18n"
	"github.com/ytget/webp-uploader/internal/logging"
	"github.com/ytget/webp-uploader/internal/model"
	"github.com/ytget/webp-uploader/internal/platform"
	"github.com/ytget/webp-uploader/internal/progress"
	"github.com/ytget/webp-uploader/internal/upload"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", config.EnvFile, err)
	}
	overrides := config.ReadOverrides()

	fs := flag.NewFlagSet("webp-upload", flag.ContinueOnError)
	quality := fs.Int("q", estimate.DefaultQuality, "WebP quality (50-100)")
	serverURL := fs.String("server", firstNonEmpty(overrides.ServerURL, config.DefaultServerURL), "conversion server base URL")
	outDir := fs.String("out", overrides.DownloadDir, "directory for the archive (default ~/Downloads)")
	lang := fs.String("lang", "en", "message language (en, ru, pt)")
	logLevel := fs.String("log", overrides.LogLevel, "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: webp-upload [flags] image...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	logger := logging.New(os.Stderr, *logLevel, "webp-upload")

	if *outDir == "" {
		dir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			level.Error(logger).Log("msg", "no download directory", "err", err)
			return 1
		}
		*outDir = dir
	}
	if err := platform.CreateDirectoryIfNotExists(*outDir); err != nil {
		level.Error(logger).Log("msg", "failed to create download directory", "dir", *outDir, "err", err)
		return 1
	}

	texts := i18n.NewLocalization()
	texts.SetLanguage(*lang)

	archives := download.NewService(*serverURL, *outDir, logging.Component(logger, "download"))
	view := newTextView(os.Stdout, texts)
	client := controller.NewClient(controller.Deps{
		Uploader: upload.NewService(*serverURL, archives, logging.Component(logger, "upload")),
		Progress: progress.NewService(*serverURL, logging.Component(logger, "progress")),
		Archives: archives,
		Quality:  &controller.MemoryQuality{Value: *quality},
		Texts:    texts,
		Logger:   logging.Component(logger, "controller"),
	}, view)

	files, errs := platform.CollectSelectedFiles(fs.Args())
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, err)
	}
	if len(files) == 0 {
		return 1
	}
	client.AddFiles(files...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := client.Upload(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			level.Debug(logger).Log("msg", "upload failed", "err", err)
		}
		return 1
	}
	if failed := countFailed(client.Results()); failed > 0 {
		return 3
	}
	return 0
}

func countFailed(lines []model.ResultLine) int {
	n := 0
	for _, line := range lines {
		if !line.OK {
			n++
		}
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
