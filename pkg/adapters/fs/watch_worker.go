package fs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"
)

type watchWorker struct {
	*worker.BaseWorker
	src       *Source
	onChange  func(context.Context)
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(src *Source, onChange func(context.Context)) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("catalog-watcher"),
		src:        src,
		onChange:   onChange,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.addDirs(watcher); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(w.src.config.Debounce)
	w.src.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// addDirs watches the catalog directory tree, or the parent directory when
// the catalog is a single file.
func (w *watchWorker) addDirs(watcher *fsnotify.Watcher) error {
	info, err := os.Stat(w.src.Path)
	if err != nil {
		return fmt.Errorf("failed to stat catalog: %w", err)
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(w.src.Path))
	}
	return addTree(watcher, w.src.Path)
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && len(d.Name()) > 0 && d.Name()[0] == '.' {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// processFilesystemEvent filters an event and schedules a debounced reload.
// Returns true if the event was relevant.
func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) (processed bool) {
	logger := w.src.config.Logger
	logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addTree(w.watcher, event.Name); err != nil {
				w.handleWatcherError(fmt.Errorf("failed to watch %s: %w", event.Name, err))
			}
			return false
		}
	}

	if event.Op == fsnotify.Chmod || !w.src.matches(event.Name) {
		return false
	}

	w.debouncer.add(func() {
		if ctx.Err() != nil {
			return
		}
		w.onChange(ctx)
	})
	return true
}

// handleWatcherError processes errors from the fsnotify watcher.
func (w *watchWorker) handleWatcherError(err error) (shouldContinue bool) {
	w.src.config.Logger.Error("fsnotify error", "error", err)
	if w.src.config.ErrorHandler != nil {
		w.src.config.ErrorHandler(err)
	}
	return true
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.src.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", panicErr, "stack", string(debug.Stack()))
			} else {
				logger.Error("watcher panic", "error", panicErr)
			}
			err = panicErr
		}
	}()
	defer w.src.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// In-flight reloads must finish before the watcher is reported inactive.
	if !w.debouncer.stopAndWait(5 * time.Second) {
		logger.Warn("pending reload did not finish before shutdown")
	}
	return err
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleWatcherError(wErr)
		}
	}
}

// stopOnDone stops the worker once ctx is cancelled.
func (w *watchWorker) stopOnDone(ctx context.Context) {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return w.Stop(stopCtx)
	}, lifecycle.WithErrorHandler(func(err error) {
		w.src.config.Logger.Error("watcher stop failed", "error", err)
		if w.src.config.ErrorHandler != nil {
			w.src.config.ErrorHandler(err)
		}
	}))
}
