package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/wardleygo/internal/ctxlog"
	"github.com/specialistvlad/wardleygo/internal/edit"
	"github.com/specialistvlad/wardleygo/internal/links"
	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/specialistvlad/wardleygo/internal/render"
)

// ErrCheckFailed is returned by Check when any file has parse errors.
var ErrCheckFailed = errors.New("map check failed")

// fileResult is one entry of a multi-file parse output.
type fileResult struct {
	Path string            `json:"path" yaml:"path"`
	Map  *model.WardleyMap `json:"map" yaml:"map"`
}

// Parse writes the parsed model of every file matched by args.
func (a *App) Parse(ctx context.Context, args []string, format string, migrate bool) error {
	ctx = a.Context(ctx)
	files, err := a.expand(args)
	if err != nil {
		return err
	}

	results := make([]fileResult, 0, len(files))
	for _, path := range files {
		doc, err := a.Load(ctx, path, migrate)
		if err != nil {
			return err
		}
		results = append(results, fileResult{Path: path, Map: doc.Map})
	}
	a.logger.Debug("Maps parsed.", "files", len(results))

	if len(results) == 1 {
		return render.Encode(a.outW, a.format(format), results[0].Map)
	}
	return render.Encode(a.outW, a.format(format), results)
}

// Links writes the link classification of one file.
func (a *App) Links(ctx context.Context, path, format string, showLinkedEvolved bool) error {
	ctx = a.Context(ctx)
	doc, err := a.Load(ctx, path, false)
	if err != nil {
		return err
	}
	result := links.Build(doc.Map, links.Options{ShowLinkedEvolved: showLinkedEvolved || a.config.Links.ShowLinkedEvolved})
	return render.Encode(a.outW, a.format(format), result)
}

// Migrate rewrites legacy syntax in every matched file. Without write it
// only reports what would change.
func (a *App) Migrate(ctx context.Context, args []string, write bool) error {
	ctx = a.Context(ctx)
	files, err := a.expand(args)
	if err != nil {
		return err
	}

	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read map %s: %w", path, err)
		}
		result := a.migrations.ApplyContext(ctx, string(raw))
		if err := a.print(a.renderer.ChangeSets(path, result.ChangeSets)); err != nil {
			return err
		}
		if !write || !result.Changed {
			continue
		}
		if err := writeFile(path, result.Result); err != nil {
			return err
		}
		a.logger.Info("Map migrated.", "path", path, "changes", len(result.ChangeSets))
	}
	return nil
}

// Check parses every matched file and reports errors and unresolved links.
// It returns ErrCheckFailed when any file has parse errors.
func (a *App) Check(ctx context.Context, args []string) error {
	ctx = a.Context(ctx)
	files, err := a.expand(args)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range files {
		doc, err := a.Load(ctx, path, false)
		if err != nil {
			return err
		}
		unresolved := links.Build(doc.Map, links.Options{ShowLinkedEvolved: a.config.Links.ShowLinkedEvolved}).Unresolved()

		if err := a.print(a.renderer.ParseErrors(path, doc.Map.Errors), a.renderer.Unresolved(path, unresolved)); err != nil {
			return err
		}
		if doc.Map.HasErrors() {
			failed++
			continue
		}
		if err := a.print(a.renderer.OK(path, doc.Map)); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files have errors", ErrCheckFailed, failed, len(files))
	}
	return nil
}

// Move rewrites the coordinates of one element in path. Without write the
// edited text is printed instead.
func (a *App) Move(ctx context.Context, path, kind, name string, coords []float64, write bool) error {
	ctx = a.Context(ctx)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read map %s: %w", path, err)
	}
	text, err := edit.Move(string(raw), kind, name, coords...)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Element moved.", "path", path, "kind", kind, "name", name)
	return a.emit(path, text, write)
}

// Delete removes one element and everything that references it from path.
func (a *App) Delete(ctx context.Context, path, name string, write bool) error {
	ctx = a.Context(ctx)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read map %s: %w", path, err)
	}
	text, removed := edit.Delete(string(raw), name)
	if removed == 0 {
		return fmt.Errorf("delete %s: %w", name, edit.ErrNotFound)
	}
	ctxlog.FromContext(ctx).Debug("Element deleted.", "path", path, "name", name, "lines", removed)
	return a.emit(path, text, write)
}

// Rename renames one element and every reference to it in path.
func (a *App) Rename(ctx context.Context, path, oldName, newName string, write bool) error {
	ctx = a.Context(ctx)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read map %s: %w", path, err)
	}
	text, changed := edit.Rename(string(raw), oldName, newName)
	if changed == 0 {
		return fmt.Errorf("rename %s: %w", oldName, edit.ErrNotFound)
	}
	ctxlog.FromContext(ctx).Debug("Element renamed.", "path", path, "from", oldName, "to", newName, "lines", changed)
	return a.emit(path, text, write)
}

// print writes parts to the output in order and returns the first write
// error.
func (a *App) print(parts ...string) error {
	for _, part := range parts {
		if part == "" {
			continue
		}
		if _, err := io.WriteString(a.outW, part); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func (a *App) emit(path, text string, write bool) error {
	if !write {
		return a.print(text)
	}
	if err := writeFile(path, text); err != nil {
		return err
	}
	a.logger.Info("Map updated.", "path", path)
	return nil
}

func (a *App) format(format string) string {
	if format == "" {
		return a.config.Output.Format
	}
	return format
}

// writeFile replaces path keeping its permissions.
func writeFile(path, text string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("failed to write map %s: %w", path, err)
	}
	return nil
}
