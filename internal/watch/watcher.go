package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to
// settle before reporting a change
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher watches schema files for changes based on patterns
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	patterns []string
	exclude  []string
	ignored  map[string]bool
	onChange func(path string, op fsnotify.Op)
	debounce time.Duration
	logger   zerolog.Logger

	closeOnce sync.Once
	closeErr  error
}

// Option configures a FileWatcher
type Option func(*FileWatcher)

// WithDebounce sets the settle window. Zero reports every event immediately.
func WithDebounce(d time.Duration) Option {
	return func(fw *FileWatcher) { fw.debounce = d }
}

// WithLogger sets the logger used for watcher errors
func WithLogger(logger zerolog.Logger) Option {
	return func(fw *FileWatcher) { fw.logger = logger }
}

// WithIgnoredPaths ignores events for exact file paths, such as the
// generated output file.
func WithIgnoredPaths(paths ...string) Option {
	return func(fw *FileWatcher) {
		for _, p := range paths {
			if abs, err := filepath.Abs(p); err == nil {
				p = abs
			}
			fw.ignored[filepath.Clean(p)] = true
		}
	}
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(patterns []string, exclude []string, onChange func(path string, op fsnotify.Op), opts ...Option) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  watcher,
		patterns: patterns,
		exclude:  exclude,
		ignored:  make(map[string]bool),
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(fw)
	}
	return fw, nil
}

// AddDirectory recursively adds a directory to the watcher
func (fw *FileWatcher) AddDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path != dir && fw.excluded(filepath.Base(path)) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if err := fw.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", path, err)
			}
			fw.logger.Debug().Str("dir", path).Msg("watching directory")
		}

		return nil
	})
}

// Start begins watching for file changes. It blocks until ctx is done or the
// watcher is closed.
func (fw *FileWatcher) Start(ctx context.Context) error {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]fsnotify.Op)
		order   []string
	)
	flush := func() {
		for _, path := range order {
			fw.onChange(path, pending[path])
		}
		clear(pending)
		order = order[:0]
		fire = nil
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-fire:
			flush()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !fw.excluded(filepath.Base(event.Name)) {
						if err := fw.AddDirectory(event.Name); err != nil {
							fw.logger.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
						}
					}
					continue
				}
			}

			if !fw.shouldWatch(event.Name) {
				continue
			}

			if fw.debounce <= 0 {
				fw.onChange(event.Name, event.Op)
				continue
			}

			if _, seen := pending[event.Name]; !seen {
				order = append(order, event.Name)
			}
			pending[event.Name] |= event.Op
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if err != nil {
				fw.logger.Error().Err(err).Msg("watcher error")
			}
		}
	}
}

func (fw *FileWatcher) excluded(base string) bool {
	for _, pattern := range fw.exclude {
		pattern = strings.TrimSuffix(pattern, "/")
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

// shouldWatch checks if a file should trigger a change event based on patterns
func (fw *FileWatcher) shouldWatch(path string) bool {
	if abs, err := filepath.Abs(path); err == nil && fw.ignored[filepath.Clean(abs)] {
		return false
	}

	base := filepath.Base(path)
	if fw.excluded(base) {
		return false
	}

	for _, pattern := range fw.patterns {
		if suffix, ok := strings.CutPrefix(pattern, "**/"); ok {
			if matched, _ := filepath.Match(suffix, base); matched {
				return true
			}
		} else if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}

// Close stops the watcher. It is safe to call more than once.
func (fw *FileWatcher) Close() error {
	fw.closeOnce.Do(func() {
		fw.closeErr = fw.watcher.Close()
	})
	return fw.closeErr
}
