package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/wardleygo/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an app with plain output and debug logging captured
// in separate buffers.
func SetupAppTest(t *testing.T, mutate ...func(*config.Config)) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	cfg := config.Default()
	cfg.Log.Level = "debug"
	cfg.Output.Color = false
	for _, fn := range mutate {
		fn(cfg)
	}

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	testApp := NewApp(out, logs, cfg)

	t.Cleanup(func() {
		if os.Getenv("WARDLEYGO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return testApp, out, logs
}

// WriteMap writes a map file below dir and returns its path.
func WriteMap(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
