package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings file")
}

func TestLoad_OverridesAndEnv(t *testing.T) {
	t.Setenv("WARDLEYGO_TEST_PUBLISH_URL", "http://localhost:3000")
	path := writeSettings(t, `
log {
  level = "debug"
}

links {
  show_linked_evolved = true
}

discovery {
  patterns = ["maps/**/*.owm"]
}

watch {
  debounce   = "1s"
  cache_size = 8
}

publish {
  url       = env.WARDLEYGO_TEST_PUBLISH_URL
  namespace = "/maps"
}
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset attributes keep their default")
	assert.True(t, cfg.Links.ShowLinkedEvolved)
	assert.Equal(t, []string{"maps/**/*.owm"}, cfg.Discovery.Patterns)
	assert.Equal(t, Default().Discovery.Exclude, cfg.Discovery.Exclude)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, 8, cfg.Watch.CacheSize)
	assert.Equal(t, "http://localhost:3000", cfg.Publish.URL)
	assert.Equal(t, "/maps", cfg.Publish.Namespace)
	assert.Equal(t, "map", cfg.Publish.Event)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "syntax", content: "log {\n level = \n", wantErr: "failed to parse"},
		{name: "unknown block", content: "server {}\n", wantErr: "failed to decode"},
		{name: "bad level", content: "log {\n level = \"loud\"\n}\n", wantErr: "invalid log level"},
		{name: "bad duration", content: "watch {\n debounce = \"soon\"\n}\n", wantErr: "watch.debounce"},
		{name: "bad cache size", content: "watch {\n cache_size = 0\n}\n", wantErr: "cache_size"},
		{name: "unknown env", content: "publish {\n url = env.WARDLEYGO_SURELY_UNSET_VARIABLE\n}\n", wantErr: "failed to decode"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(context.Background(), writeSettings(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestInit_WritesLoadableDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	require.NoError(t, Init(path))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	assert.ErrorIs(t, Init(path), ErrExists)
}

func TestRender_ContainsBlocks(t *testing.T) {
	out := string(Render(Default()))
	for _, block := range []string{"log {", "output {", "links {", "discovery {", "watch {", "publish {"} {
		assert.Contains(t, out, block)
	}
	assert.Contains(t, out, `"**/*.owm"`)
}
