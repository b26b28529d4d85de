package cli

import (
	"github.com/devbush/clipcast/internal/adapters/ffmpeg"
	"github.com/devbush/clipcast/internal/adapters/podcast"
	"github.com/devbush/clipcast/internal/adapters/ytdlp"
	"github.com/devbush/clipcast/internal/application"
	"github.com/devbush/clipcast/internal/config"
	"github.com/devbush/clipcast/internal/ports"
)

// App holds all application dependencies
type App struct {
	Config     *config.Config
	Fetcher    *ytdlp.Fetcher
	Transcoder *ffmpeg.Transcoder
	Directory  *podcast.Directory
	Feed       *podcast.Feed
	Selector   ports.Selector

	Clips *application.ClipService
	Batch *application.BatchRunner
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	fetcher := ytdlp.NewFetcher(cfg.Paths.YtDlp)
	transcoder := ffmpeg.NewTranscoder(cfg.Paths.FFmpeg)
	clips := application.NewClipService(fetcher, transcoder)

	return &App{
		Config:     cfg,
		Fetcher:    fetcher,
		Transcoder: transcoder,
		Directory:  podcast.NewDirectory(),
		Feed:       podcast.NewFeed(),
		Selector:   NewSelector(),
		Clips:      clips,
		Batch:      application.NewBatchRunner(clips),
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
