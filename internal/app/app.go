package app

import (
	"context"
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/specialistvlad/wardleygo/internal/config"
	"github.com/specialistvlad/wardleygo/internal/converter"
	"github.com/specialistvlad/wardleygo/internal/ctxlog"
	"github.com/specialistvlad/wardleygo/internal/fsutil"
	"github.com/specialistvlad/wardleygo/internal/migrate"
	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/specialistvlad/wardleygo/internal/render"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *config.Config
	converter  *converter.Converter
	migrations *migrate.Migrations
	finder     *fsutil.Finder
	renderer   *render.Renderer
	cache      *lru.Cache[string, *model.WardleyMap]
}

// NewApp is the constructor for the main application. Results go to outW,
// logs to logW. It returns a fully initialized App with its own isolated
// logger.
func NewApp(outW, logW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.Log.Level, cfg.Log.Format, logW)
	logger.Debug("Logger configured successfully.")

	cache, err := lru.New[string, *model.WardleyMap](cfg.Watch.CacheSize)
	if err != nil {
		// Validate rejects non-positive sizes, so this is a programmer error.
		panic(err)
	}

	return &App{
		outW:       outW,
		logger:     logger,
		config:     cfg,
		converter:  converter.New(),
		migrations: migrate.New(),
		finder:     &fsutil.Finder{Patterns: cfg.Discovery.Patterns, Exclude: cfg.Discovery.Exclude},
		renderer:   render.New(cfg.Output.Color),
		cache:      cache,
	}
}

// Context returns ctx carrying the application's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
