package assets

import (
	"errors"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/hubastard/scenebox/engine/core"
)

var ErrWatcherClosed = errors.New("assets: watcher already closed")

// Watcher reports files that were written or created below watched directories.
// It runs its own goroutine but never touches the graphics context; the render
// loop drains it with Poll.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	ext      string

	mu      sync.Mutex
	pending map[string]struct{}
	closed  bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher watches dirs for files with extension ext (".shader"). An empty ext
// reports every file.
func NewWatcher(ext string, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsnotify: fw,
		ext:      ext,
		pending:  make(map[string]struct{}),
		done:     make(chan struct{}),
	}
	for _, d := range dirs {
		if err := fw.Add(d); err != nil {
			fw.Close()
			return nil, err
		}
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if w.ext != "" && filepath.Ext(e.Name) != w.ext {
				continue
			}
			w.mu.Lock()
			w.pending[filepath.Clean(e.Name)] = struct{}{}
			w.mu.Unlock()

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %v", err)

		case <-w.done:
			return
		}
	}
}

// Poll returns the files changed since the previous call, without blocking.
// Repeated events for one file collapse into one entry.
func (w *Watcher) Poll() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		return nil
	}
	out := make([]string, 0, len(w.pending))
	for p := range w.pending {
		out = append(out, p)
	}
	clear(w.pending)
	slices.Sort(out)
	return out
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	err := w.fsnotify.Close()
	w.wg.Wait()
	return err
}
