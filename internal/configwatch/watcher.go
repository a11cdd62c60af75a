// Package configwatch reloads the CLI configuration when its file changes.
package configwatch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/frameblend/pkg/log"
)

// Config holds configuration options for the watcher.
type Config struct {
	// DebounceDelay is the delay to wait after a file change before firing.
	// Default: 100 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DebounceDelay: 100 * time.Millisecond}
}

// Watcher calls a function whenever one file is written or recreated.
// The parent directory is watched so editors that replace the file by
// rename are still observed.
type Watcher struct {
	mu sync.Mutex

	path          string
	debounceDelay time.Duration
	logger        log.Logger

	watcher  *fsnotify.Watcher
	debounce *time.Timer
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// New creates a watcher for path.
func New(path string, cfg Config, logger log.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:          filepath.Clean(path),
		debounceDelay: cfg.DebounceDelay,
		logger:        logger,
	}
}

// Start begins watching. The watch is registered before Start returns, so
// any later write is observed. onChange runs on a timer goroutine, at most
// once per debounce window.
func (w *Watcher) Start(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.watcher = fw
	w.cancel = cancel
	w.mu.Unlock()

	w.logger.Info("watching config file", log.String("path", w.path))

	w.wg.Add(1)
	go w.watchLoop(watchCtx, onChange)
	return nil
}

// Stop ends the watch and waits for the loop to exit.
// A pending debounced call is dropped.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	w.wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

func (w *Watcher) watchLoop(ctx context.Context, onChange func()) {
	defer w.wg.Done()
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceCall(ctx, onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) debounceCall(ctx context.Context, onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		w.logger.Debug("config file changed", log.String("path", w.path))
		onChange()
	})
}
