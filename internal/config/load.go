package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/wardleygo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot mirrors the blocks allowed at the top of a settings file. Every
// block and attribute is optional.
type fileRoot struct {
	Log       *logBlock       `hcl:"log,block"`
	Output    *outputBlock    `hcl:"output,block"`
	Links     *linksBlock     `hcl:"links,block"`
	Discovery *discoveryBlock `hcl:"discovery,block"`
	Watch     *watchBlock     `hcl:"watch,block"`
	Publish   *publishBlock   `hcl:"publish,block"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type outputBlock struct {
	Format *string `hcl:"format,optional"`
	Color  *bool   `hcl:"color,optional"`
}

type linksBlock struct {
	ShowLinkedEvolved *bool `hcl:"show_linked_evolved,optional"`
}

type discoveryBlock struct {
	Patterns []string `hcl:"patterns,optional"`
	Exclude  []string `hcl:"exclude,optional"`
}

type watchBlock struct {
	Debounce  *string `hcl:"debounce,optional"`
	CacheSize *int    `hcl:"cache_size,optional"`
}

type publishBlock struct {
	URL       *string `hcl:"url,optional"`
	Path      *string `hcl:"path,optional"`
	Namespace *string `hcl:"namespace,optional"`
	Event     *string `hcl:"event,optional"`
	Insecure  *bool   `hcl:"insecure,optional"`
	Timeout   *string `hcl:"timeout,optional"`
}

// Load reads the settings file at path on top of Default. When path is the
// default location and the file does not exist, the defaults are returned.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			logger.Debug("No settings file found, using defaults.", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, envContext(os.Environ()), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	if err := root.apply(cfg); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}

	logger.Debug("Settings file loaded.", "path", path)
	return cfg, nil
}

// envContext exposes environ as the `env` object.
func envContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}

func (r *fileRoot) apply(cfg *Config) error {
	if b := r.Log; b != nil {
		setString(&cfg.Log.Level, b.Level)
		setString(&cfg.Log.Format, b.Format)
	}
	if b := r.Output; b != nil {
		setString(&cfg.Output.Format, b.Format)
		setBool(&cfg.Output.Color, b.Color)
	}
	if b := r.Links; b != nil {
		setBool(&cfg.Links.ShowLinkedEvolved, b.ShowLinkedEvolved)
	}
	if b := r.Discovery; b != nil {
		if b.Patterns != nil {
			cfg.Discovery.Patterns = b.Patterns
		}
		if b.Exclude != nil {
			cfg.Discovery.Exclude = b.Exclude
		}
	}
	if b := r.Watch; b != nil {
		if err := setDuration(&cfg.Watch.Debounce, b.Debounce, "watch.debounce"); err != nil {
			return err
		}
		if b.CacheSize != nil {
			cfg.Watch.CacheSize = *b.CacheSize
		}
	}
	if b := r.Publish; b != nil {
		setString(&cfg.Publish.URL, b.URL)
		setString(&cfg.Publish.Path, b.Path)
		setString(&cfg.Publish.Namespace, b.Namespace)
		setString(&cfg.Publish.Event, b.Event)
		setBool(&cfg.Publish.Insecure, b.Insecure)
		if err := setDuration(&cfg.Publish.Timeout, b.Timeout, "publish.timeout"); err != nil {
			return err
		}
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string, name string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = d
	return nil
}
