package parser

import (
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long a file must stay quiet before a change event
// is forwarded. Claude Code appends to session files line by line, so raw
// fsnotify events arrive in bursts.
const watchDebounce = 300 * time.Millisecond

// Watcher watches a project directory for session file changes and emits
// a coalesced notification per burst on Events.
type Watcher struct {
	Events chan struct{}

	fw     *fsnotify.Watcher
	mu     sync.Mutex
	timers map[string]*time.Timer
	done   chan struct{}
}

// NewWatcher starts watching dir for .jsonl changes.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		Events: make(chan struct{}, 1),
		fw:     fw,
		timers: make(map[string]*time.Timer),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".jsonl") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule(event.Name)
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// schedule restarts the per-file quiet timer; the notification fires only
// once the file has stopped changing for watchDebounce.
func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.timers[name]; exists {
		timer.Stop()
	}
	w.timers[name] = time.AfterFunc(watchDebounce, func() {
		w.mu.Lock()
		delete(w.timers, name)
		w.mu.Unlock()

		select {
		case w.Events <- struct{}{}:
		default:
		}
	})
}

// Close stops the watcher and all pending timers.
func (w *Watcher) Close() error {
	close(w.done)

	w.mu.Lock()
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = map[string]*time.Timer{}
	w.mu.Unlock()

	return w.fw.Close()
}
