package source

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reloader is implemented by Dataset.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Watcher reloads a dataset when its file changes.
//
// The parent directory is watched rather than the file itself so that
// editors and deploy tools replacing the file by rename are noticed. Bursts
// of events are collapsed into one reload after the debounce window.
type Watcher struct {
	path     string
	target   Reloader
	debounce time.Duration
	watcher  *fsnotify.Watcher
	log      *slog.Logger

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for path. A nil logger uses slog.Default().
func NewWatcher(path string, target Reloader, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:     abs,
		target:   target,
		debounce: debounce,
		watcher:  fw,
		log:      logger,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the watch is registered; reloads run
// on a background goroutine until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.wg.Add(1)
	go w.loop(ctx)
	w.log.Info("watching dataset", slog.String("path", w.path), slog.Duration("debounce", w.debounce))
	return nil
}

// Stop ends the watch and waits for the background goroutine.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
	})
	w.wg.Wait()
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("dataset watcher error", slog.String("error", err.Error()))
		case <-timerC:
			timerC = nil
			w.log.Info("dataset changed, reloading", slog.String("path", w.path))
			// failures are logged by the dataset; the old network stays
			_ = w.target.Reload(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
