// Package watcher reloads menus when files in the menus directory change.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/osse101/chestmenus/internal/menuconfig"
	"github.com/osse101/chestmenus/internal/reload"
	"github.com/osse101/chestmenus/internal/worker"
)

// Reloader runs one reload pass.
type Reloader interface {
	Reload(ctx context.Context) (*reload.Report, error)
}

// Watcher debounces file system events under a directory and queues a
// reload on a single worker. At most one reload waits behind the running one.
type Watcher struct {
	dir      string
	delay    time.Duration
	reloader Reloader
	fs       *fsnotify.Watcher
	pool     *worker.Pool

	mu      sync.Mutex
	timer   *time.Timer
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New watches dir and every directory below it.
func New(dir string, delay time.Duration, reloader Reloader) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateWatcher, err)
	}

	w := &Watcher{
		dir:      dir,
		delay:    delay,
		reloader: reloader,
		fs:       fsw,
		pool:     worker.NewPool(1, 1),
		closeCh:  make(chan struct{}),
	}

	if err := w.watchTree(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Start begins processing events.
func (w *Watcher) Start() {
	w.pool.Start()
	w.wg.Add(1)
	go w.loop()
	slog.Info(LogMsgWatching, "dir", w.dir, "debounce", w.delay)
}

// Close stops watching and waits for a running reload to finish.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.fs.Close()
	w.wg.Wait()
	w.pool.Stop()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.closeCh:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			slog.Warn(LogMsgWatchError, "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watchTree(event.Name); err != nil {
				slog.Warn(LogMsgWatchError, "error", err)
			}
			w.schedule()
			return
		}
	}
	if isRelevant(event) {
		slog.Debug(LogMsgChangeDetected, "path", event.Name, "op", event.Op.String())
		w.schedule()
	}
}

// isRelevant reports whether an event can change the loaded menus.
func isRelevant(event fsnotify.Event) bool {
	if !menuconfig.IsMenuFile(event.Name) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// schedule (re)starts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.delay, w.enqueue)
		return
	}
	w.timer.Reset(w.delay)
}

func (w *Watcher) enqueue() {
	job := worker.JobFunc(func(ctx context.Context) error {
		_, err := w.reloader.Reload(ctx)
		return err
	})
	if !w.pool.TryEnqueue(job) {
		slog.Debug(LogMsgReloadPending)
	}
}

func (w *Watcher) watchTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fs.Add(path); err != nil {
			return fmt.Errorf(ErrMsgWatchDir, path, err)
		}
		return nil
	})
}
