package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ytget/yt-downloader/internal/config"
	"github.com/ytget/yt-downloader/internal/download"
	"github.com/ytget/yt-downloader/internal/platform"
	"github.com/ytget/yt-downloader/internal/ui"
)

const appID = "com.ytget.yt-downloader"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cliApp := cli.App{
		Name:      "yt-downloader",
		Usage:     "preview a video, pick a format and download it",
		Version:   version,
		ArgsUsage: "[URL]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error); overrides YTDL_LOG_LEVEL",
			},
			&cli.StringFlag{
				Name:  "download-dir",
				Usage: "directory to save downloads to; overrides the stored setting",
			},
			&cli.BoolFlag{
				Name:  "audio-only",
				Usage: "start in audio-only (MP3) mode",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	env, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	level := env.LogLevel
	if c.IsSet("log-level") {
		level = c.String("log-level")
	}
	logger, err := newLogger(level)
	if err != nil {
		return err
	}

	if missing := platform.MissingDependencies(env.YTDLPPath); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "Missing required tools: %s\n", strings.Join(missing, ", "))
		fmt.Fprintln(os.Stderr, platform.InstallHint)
		return cli.Exit("", 1)
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.Settings().SetTheme(ui.NewFormTheme())

	settings := config.NewSettings(fyneApp)
	settings.ApplyEnv(*env)
	if c.IsSet("download-dir") {
		settings.SetDownloadDirectory(c.String("download-dir"))
	}
	if c.IsSet("audio-only") {
		settings.SetAudioOnly(c.Bool("audio-only"))
	}

	service := download.NewService(
		download.NewYTDLP(env.YTDLPPath),
		platform.NewThumbnailLoader(env.ThumbnailTimeout),
		logger,
	)
	service.SetFetchTimeout(env.FetchTimeout)

	window := fyneApp.NewWindow("")
	if icon, err := ui.LoadLogoResource(); err == nil {
		window.SetIcon(icon)
	}

	root := ui.NewRootUI(window, fyneApp, service, logger)
	if url := c.Args().First(); url != "" {
		root.SetURL(url)
	}

	logger.WithFields(logrus.Fields{
		"version":      version,
		"download_dir": settings.GetDownloadDirectory(),
	}).Info("Starting yt-downloader")

	window.ShowAndRun()
	return nil
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(lvl)
	return logger, nil
}
