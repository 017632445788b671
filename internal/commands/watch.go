package commands

import (
	"context"
	"errors"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/okra-platform/rustgen/internal/config"
	"github.com/okra-platform/rustgen/internal/watch"
)

// Watch generates once, then regenerates whenever a watched schema file
// changes. Generation errors are logged and do not stop the watcher.
func (c *Controller) Watch(ctx context.Context) error {
	cfg, projectDir, err := c.loadConfig()
	if err != nil {
		return err
	}

	return NewWatchCommand(NewGenerateCommand(cfg, projectDir, c.Logger)).Run(ctx)
}

// WatchCommand couples a generate command with a file watcher
type WatchCommand struct {
	generate *GenerateCommand
	opts     []watch.Option
	// ready is closed once the watcher is listening; used by tests
	ready chan struct{}
}

// NewWatchCommand creates a watch command around gc
func NewWatchCommand(gc *GenerateCommand, opts ...watch.Option) *WatchCommand {
	return &WatchCommand{generate: gc, opts: opts, ready: make(chan struct{})}
}

// Run blocks until ctx is cancelled
func (wc *WatchCommand) Run(ctx context.Context) error {
	gc := wc.generate
	logger := gc.logger

	var mu sync.Mutex
	regenerate := func(reason string) {
		mu.Lock()
		defer mu.Unlock()

		result, err := gc.Run(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error().Err(err).Str("trigger", reason).Msg("generation failed")
			}
			return
		}
		if result.Unchanged {
			logger.Debug().Str("trigger", reason).Msg("output is up to date")
			return
		}
		logger.Info().
			Str("trigger", reason).
			Str("output", result.OutputPath).
			Int("bytes", result.Bytes).
			Msg("regenerated rust module")
	}

	regenerate("startup")

	opts := append([]watch.Option{
		watch.WithLogger(logger),
		watch.WithIgnoredPaths(config.Resolve(gc.projectDir, gc.cfg.Output.Path)),
	}, wc.opts...)

	fw, err := watch.NewFileWatcher(gc.cfg.Watch.Patterns, gc.cfg.Watch.Exclude,
		func(path string, op fsnotify.Op) {
			logger.Debug().Str("path", path).Str("op", op.String()).Msg("file changed")
			regenerate(path)
		}, opts...)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.AddDirectory(gc.projectDir); err != nil {
		return err
	}

	logger.Info().
		Str("dir", gc.projectDir).
		Strs("patterns", gc.cfg.Watch.Patterns).
		Msg("watching for schema changes")
	close(wc.ready)

	err = fw.Start(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
