package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// ErrExists is returned by Init when the target file is already present.
var ErrExists = errors.New("settings file already exists")

// Render returns cfg as an HCL settings file.
func Render(cfg *Config) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	log := root.AppendNewBlock("log", nil).Body()
	log.SetAttributeValue("level", cty.StringVal(cfg.Log.Level))
	log.SetAttributeValue("format", cty.StringVal(cfg.Log.Format))
	root.AppendNewline()

	output := root.AppendNewBlock("output", nil).Body()
	output.SetAttributeValue("format", cty.StringVal(cfg.Output.Format))
	output.SetAttributeValue("color", cty.BoolVal(cfg.Output.Color))
	root.AppendNewline()

	links := root.AppendNewBlock("links", nil).Body()
	links.SetAttributeValue("show_linked_evolved", cty.BoolVal(cfg.Links.ShowLinkedEvolved))
	root.AppendNewline()

	discovery := root.AppendNewBlock("discovery", nil).Body()
	discovery.SetAttributeValue("patterns", stringList(cfg.Discovery.Patterns))
	discovery.SetAttributeValue("exclude", stringList(cfg.Discovery.Exclude))
	root.AppendNewline()

	watch := root.AppendNewBlock("watch", nil).Body()
	watch.SetAttributeValue("debounce", cty.StringVal(cfg.Watch.Debounce.String()))
	watch.SetAttributeValue("cache_size", cty.NumberIntVal(int64(cfg.Watch.CacheSize)))
	root.AppendNewline()

	publish := root.AppendNewBlock("publish", nil).Body()
	publish.SetAttributeValue("url", cty.StringVal(cfg.Publish.URL))
	publish.SetAttributeValue("path", cty.StringVal(cfg.Publish.Path))
	publish.SetAttributeValue("namespace", cty.StringVal(cfg.Publish.Namespace))
	publish.SetAttributeValue("event", cty.StringVal(cfg.Publish.Event))
	publish.SetAttributeValue("insecure", cty.BoolVal(cfg.Publish.Insecure))
	publish.SetAttributeValue("timeout", cty.StringVal(cfg.Publish.Timeout.String()))

	return f.Bytes()
}

// Init writes the default settings to path. It refuses to overwrite.
func Init(path string) error {
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	if err := os.WriteFile(path, Render(Default()), 0o644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return nil
}

func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	items := make([]cty.Value, 0, len(values))
	for _, v := range values {
		items = append(items, cty.StringVal(v))
	}
	return cty.ListVal(items)
}
