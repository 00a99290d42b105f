package runner

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const watchDebounce = 100 * time.Millisecond

// Watcher re-runs a session's checks whenever a watched file is written.
type Watcher struct {
	session *Session
	watcher *fsnotify.Watcher
	logger  *zap.Logger
	match   func(string) bool
}

// NewWatcher wraps session in a file watcher. match, when non-nil, filters
// which changed files get re-linted.
func NewWatcher(session *Session, logger *zap.Logger, match func(string) bool) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		session: session,
		watcher: fw,
		logger:  logger,
		match:   match,
	}, nil
}

// Add registers files or directory trees to watch.
func (w *Watcher) Add(paths ...string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			if err := w.watcher.Add(p); err != nil {
				return err
			}
			continue
		}
		err = filepath.Walk(p, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Run blocks, handling file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&fsnotify.Write == 0 {
		return
	}
	if w.match != nil && !w.match(event.Name) {
		return
	}

	// coalesce bursts of writes into one run
	time.Sleep(watchDebounce)

	warned, err := w.session.Run([]string{event.Name})
	if err != nil {
		w.logger.Error("watch run failed", zap.String("file", event.Name), zap.Error(err))
		return
	}
	if !warned {
		w.logger.Info("no warnings", zap.String("file", event.Name))
	}
}
