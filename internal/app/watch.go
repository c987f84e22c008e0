package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/wardleygo/internal/links"
	"github.com/specialistvlad/wardleygo/internal/publish"
	"github.com/specialistvlad/wardleygo/internal/watch"
)

// WatchOptions override the publish settings for one watch run.
type WatchOptions struct {
	PublishURL string
	Namespace  string
}

// Watch re-checks every map below dir whenever it changes, until ctx is
// cancelled. When a publish URL is configured each clean revision is also
// pushed to the socket.io server.
func (a *App) Watch(ctx context.Context, dir string, opts WatchOptions) error {
	ctx = a.Context(ctx)

	w, err := watch.New(watch.Config{
		Root:     dir,
		Debounce: a.config.Watch.Debounce,
		Match:    a.finder.Match,
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	defer w.Close()

	publisher, err := a.connectPublisher(ctx, opts)
	if err != nil {
		return err
	}
	if publisher != nil {
		defer publisher.Close()
	}

	events, err := w.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	a.logger.Info("Watching for map changes.", "dir", dir)

	for event := range events {
		if event.Removed {
			a.logger.Info("Map removed.", "path", event.Path)
			continue
		}
		if err := a.refresh(ctx, event.Path, publisher); err != nil {
			a.logger.Error("Failed to process map.", "path", event.Path, "error", err)
		}
	}

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// refresh re-parses path, prints its diagnostics and publishes it when it
// parsed cleanly.
func (a *App) refresh(ctx context.Context, path string, publisher *publish.Publisher) error {
	doc, err := a.Load(ctx, path, false)
	if err != nil {
		return err
	}
	result := links.Build(doc.Map, links.Options{ShowLinkedEvolved: a.config.Links.ShowLinkedEvolved})

	if err := a.print(a.renderer.ParseErrors(path, doc.Map.Errors), a.renderer.Unresolved(path, result.Unresolved())); err != nil {
		return err
	}
	if doc.Map.HasErrors() {
		return nil
	}
	if err := a.print(a.renderer.OK(path, doc.Map)); err != nil {
		return err
	}

	if publisher == nil {
		return nil
	}
	return publisher.Publish(ctx, publish.NewSnapshot(path, doc.Map, result))
}

func (a *App) connectPublisher(ctx context.Context, opts WatchOptions) (*publish.Publisher, error) {
	cfg := a.config.Publish
	if opts.PublishURL != "" {
		cfg.URL = opts.PublishURL
	}
	if opts.Namespace != "" {
		cfg.Namespace = opts.Namespace
	}
	if cfg.URL == "" {
		return nil, nil
	}

	publisher, err := publish.Connect(ctx, publish.Options{
		URL:       cfg.URL,
		Path:      cfg.Path,
		Namespace: cfg.Namespace,
		Event:     cfg.Event,
		Insecure:  cfg.Insecure,
		Timeout:   cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect publisher: %w", err)
	}
	return publisher, nil
}
