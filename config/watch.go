package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long the tuning file must stay quiet before it is reloaded.
const settle = 100 * time.Millisecond

// Watcher reloads one tuning file from Dir whenever it changes and hands the
// decoded result to the simulation loop through Poll. Decoding happens on the
// watcher goroutine; applying the result is left to the caller.
type Watcher struct {
	fsw  *fsnotify.Watcher
	name string
	path string

	modTime time.Time

	updates chan Tuning
	errs    chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchTuning starts watching the on-disk copy of filename (DefaultTuningFile
// when empty). The directory holding it must exist.
func WatchTuning(filename string) (*Watcher, error) {
	if filename == "" {
		filename = DefaultTuningFile
	}
	name := cleanPath(filename)
	path := DiskPath(name)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", name, err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", name, err)
	}

	w := &Watcher{
		fsw:     fsw,
		name:    name,
		path:    filepath.Clean(path),
		updates: make(chan Tuning, 1),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	w.modTime, _ = ModTime(name)
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		<-w.done
	})
	return err
}

// Poll returns the latest reloaded tuning without blocking. Reloads that were
// never polled are superseded by newer ones.
func (w *Watcher) Poll() (Tuning, bool) {
	if w == nil {
		return Tuning{}, false
	}
	select {
	case t := <-w.updates:
		return t, true
	default:
		return Tuning{}, false
	}
}

// Err returns a pending watch or reload error without blocking.
func (w *Watcher) Err() error {
	if w == nil {
		return nil
	}
	select {
	case err := <-w.errs:
		return err
	default:
		return nil
	}
}

func (w *Watcher) run() {
	defer close(w.done)

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			// editors often write a file several times per save
			timer.Reset(settle)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(fmt.Errorf("config: watch %s: %w", w.name, err))
		case <-w.closeCh:
			return
		}
	}
}

// reload decodes the file if its modification time moved. A removed override
// falls back to the embedded copy.
func (w *Watcher) reload() {
	mod, ok := ModTime(w.name)
	if ok && mod.Equal(w.modTime) {
		return
	}
	w.modTime = mod

	t, err := LoadTuning(w.name)
	if err != nil {
		w.report(err)
		return
	}
	select {
	case <-w.updates:
	default:
	}
	w.updates <- t
}

func (w *Watcher) report(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
