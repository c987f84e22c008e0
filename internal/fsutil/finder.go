// Package fsutil expands command line path arguments into map files.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoFiles is returned when the arguments match no map file.
var ErrNoFiles = errors.New("no map files found")

// Finder discovers map files below directories. Patterns and Exclude are
// doublestar globs matched against slash-separated paths relative to the
// directory being searched.
type Finder struct {
	Patterns []string
	Exclude  []string
}

// FindMaps returns every file below root that matches one of the finder's
// patterns and none of its exclusions, in lexical order.
func (f *Finder) FindMaps(root string) ([]string, error) {
	var files []string
	err := doublestar.GlobWalk(os.DirFS(root), "**", func(path string, d fs.DirEntry) error {
		if d.IsDir() || !f.Match(path) {
			return nil
		}
		files = append(files, filepath.Join(root, filepath.FromSlash(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", root, err)
	}
	slices.Sort(files)
	return files, nil
}

// Expand resolves each argument: directories are searched with FindMaps,
// glob patterns are expanded relative to the working directory, plain files
// are taken as they are. The result is deduplicated and keeps argument
// order.
func (f *Finder) Expand(args ...string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(paths ...string) {
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			files, err := f.FindMaps(arg)
			if err != nil {
				return nil, err
			}
			add(files...)
		case err == nil:
			add(arg)
		case errors.Is(err, fs.ErrNotExist) && hasMeta(arg):
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("glob %s: %w", arg, err)
			}
			slices.Sort(matches)
			add(matches...)
		default:
			return nil, fmt.Errorf("failed to read %s: %w", arg, err)
		}
	}

	if len(out) == 0 {
		return nil, ErrNoFiles
	}
	return out, nil
}

// Match reports whether the slash-separated relative path is a map file
// under the finder's patterns.
func (f *Finder) Match(path string) bool {
	for _, pattern := range f.Exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return false
		}
	}
	for _, pattern := range f.Patterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

func hasMeta(path string) bool {
	for _, c := range path {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
