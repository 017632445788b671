package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/okra-platform/rustgen/internal/watch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCommand_Run(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dir, cfg := writeProject(t, "schema.rgen.gql", testSchema)
	outputPath := filepath.Join(dir, "src", "generated.rs")

	wc := NewWatchCommand(NewGenerateCommand(cfg, dir, zerolog.Nop()), watch.WithDebounce(20*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- wc.Run(ctx) }()

	select {
	case <-wc.ready:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not start")
	}

	code, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.NotContains(t, string(code), "Warehouse")

	updated := strings.Replace(testSchema, "type Product {", "type Warehouse {\n  code: String!\n}\n\ntype Product {", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.rgen.gql"), []byte(updated), 0644))

	assert.Eventually(t, func() bool {
		code, err := os.ReadFile(outputPath)
		return err == nil && strings.Contains(string(code), "pub struct Warehouse")
	}, 3*time.Second, 25*time.Millisecond)

	// a broken schema is logged and the last good output stays in place
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.rgen.gql"), []byte("type {"), 0644))
	time.Sleep(200 * time.Millisecond)
	code, err = os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(code), "pub struct Warehouse")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchCommand_Run_MissingDirectory(t *testing.T) {
	_, cfg := writeProject(t, "schema.rgen.gql", testSchema)
	missing := filepath.Join(t.TempDir(), "gone")

	err := NewWatchCommand(NewGenerateCommand(cfg, missing, zerolog.Nop())).Run(context.Background())
	assert.Error(t, err)
}
