package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_shouldWatch(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		exclude  []string
		path     string
		want     bool
	}{
		{
			name:     "match schema file",
			patterns: []string{"*.rgen.gql"},
			path:     "/project/schema.rgen.gql",
			want:     true,
		},
		{
			name:     "match nested schema with ** pattern",
			patterns: []string{"**/*.rgen.gql"},
			path:     "/project/api/v1/billing.rgen.gql",
			want:     true,
		},
		{
			name:     "plain gql does not match compound suffix",
			patterns: []string{"*.rgen.gql", "**/*.rgen.gql"},
			path:     "/project/schema.gql",
			want:     false,
		},
		{
			name:     "exclude backup file",
			patterns: []string{"*.yaml"},
			exclude:  []string{"*.bak.yaml"},
			path:     "/project/schema.bak.yaml",
			want:     false,
		},
		{
			name:     "no match",
			patterns: []string{"*.rgen.gql", "*.pb"},
			path:     "/project/readme.md",
			want:     false,
		},
		{
			name:     "exclude overrides pattern",
			patterns: []string{"*.json"},
			exclude:  []string{"rustgen.json"},
			path:     "/project/rustgen.json",
			want:     false,
		},
		{
			name:     "descriptor set",
			patterns: []string{"*.pb", "**/*.pb"},
			path:     "/project/proto/api.pb",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fw := &FileWatcher{
				patterns: tt.patterns,
				exclude:  tt.exclude,
			}

			assert.Equal(t, tt.want, fw.shouldWatch(tt.path))
		})
	}
}

func TestFileWatcher_IgnoredPaths(t *testing.T) {
	fw, err := NewFileWatcher([]string{"*.rs"}, nil, func(string, fsnotify.Op) {},
		WithIgnoredPaths("/project/src/generated.rs"))
	require.NoError(t, err)
	defer fw.Close()

	assert.False(t, fw.shouldWatch("/project/src/generated.rs"))
	assert.True(t, fw.shouldWatch("/project/src/lib.rs"))
}

type recorder struct {
	mu     sync.Mutex
	events map[string]int
}

func (r *recorder) onChange(path string, _ fsnotify.Op) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[filepath.Base(path)]++
}

func (r *recorder) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[name]
}

func TestFileWatcher_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tmpDir := t.TempDir()
	apiDir := filepath.Join(tmpDir, "api")
	require.NoError(t, os.MkdirAll(apiDir, 0755))

	rec := &recorder{events: make(map[string]int)}
	fw, err := NewFileWatcher(
		[]string{"*.rgen.gql", "**/*.rgen.gql"},
		[]string{"target", "*.tmp"},
		rec.onChange,
		WithDebounce(0),
	)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, fw.AddDirectory(tmpDir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go fw.Start(ctx)

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "schema.rgen.gql"), []byte("type A {}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.tmp"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(apiDir, "billing.rgen.gql"), []byte("type B {}"), 0644))

	targetDir := filepath.Join(tmpDir, "target")
	require.NoError(t, os.MkdirAll(targetDir, 0755))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(targetDir, "built.rgen.gql"), []byte("x"), 0644))

	assert.Eventually(t, func() bool {
		return rec.count("schema.rgen.gql") > 0 && rec.count("billing.rgen.gql") > 0
	}, 2*time.Second, 20*time.Millisecond)

	assert.Zero(t, rec.count("notes.tmp"))
	assert.Zero(t, rec.count("built.rgen.gql"))
}

func TestFileWatcher_Debounce(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tmpDir := t.TempDir()
	rec := &recorder{events: make(map[string]int)}
	fw, err := NewFileWatcher([]string{"*.yaml"}, nil, rec.onChange, WithDebounce(150*time.Millisecond))
	require.NoError(t, err)
	defer fw.Close()
	require.NoError(t, fw.AddDirectory(tmpDir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go fw.Start(ctx)
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(tmpDir, "schema.yaml")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("types: []\n"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return rec.count("schema.yaml") > 0 }, 2*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 1, rec.count("schema.yaml"))
}

func TestFileWatcher_StartStopsOnCancel(t *testing.T) {
	fw, err := NewFileWatcher([]string{"*.gql"}, nil, func(string, fsnotify.Op) {})
	require.NoError(t, err)
	defer fw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fw.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestFileWatcher_Close(t *testing.T) {
	fw, err := NewFileWatcher([]string{"*.gql"}, nil, func(string, fsnotify.Op) {})
	require.NoError(t, err)

	assert.NoError(t, fw.Close())
	assert.NoError(t, fw.Close())
}
