package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("title "+p), 0o600))
	}
}

func newFinder() *Finder {
	return &Finder{
		Patterns: []string{"**/*.owm", "**/*.wm"},
		Exclude:  []string{"**/node_modules/**"},
	}
}

func TestFinder_FindMaps(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.owm", "nested/b.wm", "nested/deeper/c.owm", "notes.txt", "node_modules/pkg/d.owm")

	files, err := newFinder().FindMaps(root)
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a.owm"),
		filepath.Join(root, "nested", "b.wm"),
		filepath.Join(root, "nested", "deeper", "c.owm"),
	}
	assert.Equal(t, want, files)
}

func TestFinder_Expand(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.owm", "b.owm", "sub/c.owm", "plain.txt")

	testCases := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "plain file is taken as is",
			args: []string{filepath.Join(root, "plain.txt")},
			want: []string{filepath.Join(root, "plain.txt")},
		},
		{
			name: "directory",
			args: []string{filepath.Join(root, "sub")},
			want: []string{filepath.Join(root, "sub", "c.owm")},
		},
		{
			name: "glob",
			args: []string{filepath.Join(root, "*.owm")},
			want: []string{filepath.Join(root, "a.owm"), filepath.Join(root, "b.owm")},
		},
		{
			name: "duplicates removed",
			args: []string{filepath.Join(root, "a.owm"), filepath.Join(root, "*.owm")},
			want: []string{filepath.Join(root, "a.owm"), filepath.Join(root, "b.owm")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := newFinder().Expand(tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFinder_ExpandErrors(t *testing.T) {
	root := t.TempDir()

	_, err := newFinder().Expand(filepath.Join(root, "missing.owm"))
	assert.Error(t, err)

	_, err = newFinder().Expand(filepath.Join(root, "*.owm"))
	assert.ErrorIs(t, err, ErrNoFiles)
}
