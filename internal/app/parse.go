package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/specialistvlad/wardleygo/internal/ctxlog"
	"github.com/specialistvlad/wardleygo/internal/model"
)

// Document is one map file as read from disk.
type Document struct {
	Path string
	Text string
	Map  *model.WardleyMap
}

// ParseText parses text, reusing the cached model of identical content. The
// returned map is shared and must not be modified.
func (a *App) ParseText(ctx context.Context, text string) *model.WardleyMap {
	logger := ctxlog.FromContext(ctx)
	sum := sha256.Sum256([]byte(text))
	key := hex.EncodeToString(sum[:])

	if m, ok := a.cache.Get(key); ok {
		logger.Debug("Parse cache hit.", "key", key[:12])
		return m
	}
	m := a.converter.Parse(ctx, text)
	a.cache.Add(key, m)
	return m
}

// Load reads and parses path. With migrate set, legacy syntax is rewritten
// in memory before parsing.
func (a *App) Load(ctx context.Context, path string, migrate bool) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", path, err)
	}
	text := string(raw)
	if migrate {
		text = a.migrations.ApplyContext(ctx, text).Result
	}
	return &Document{Path: path, Text: text, Map: a.ParseText(ctx, text)}, nil
}

// expand resolves path arguments through the finder.
func (a *App) expand(args []string) ([]string, error) {
	files, err := a.finder.Expand(args...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve map files: %w", err)
	}
	return files, nil
}
