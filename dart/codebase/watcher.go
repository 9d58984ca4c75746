package codebase

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/DanWlker/dart-json-serializable-helper/project"
)

// Event describes what the watcher did with one file.
type Event struct {
	Path    string
	Removed bool
	Written bool
	Err     error
}

type FileWatcher struct {
	codebase     *Codebase
	stopCh       chan struct{}
	doneCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time

	// Write makes the watcher save generated members back to disk.
	Write bool

	// OnEvent, if set, is called for every file that was rescanned.
	OnEvent func(Event)
}

func NewFileWatcher(c *Codebase) *FileWatcher {
	return &FileWatcher{
		codebase:     c,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
}

func (w *FileWatcher) SetPollInterval(d time.Duration) {
	w.pollInterval = d
}

func (w *FileWatcher) Start() {
	go w.run()
}

// Stop ends polling and waits for a scan in progress to finish.
func (w *FileWatcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *FileWatcher) run() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.Scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Scan()
		}
	}
}

// Scan rescans files modified since the last scan and forgets deleted ones.
func (w *FileWatcher) Scan() {
	currentFiles := make(map[string]bool)

	filepath.WalkDir(w.codebase.RootDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != w.codebase.RootDir() && (strings.HasPrefix(d.Name(), ".") || d.Name() == "build") {
				return filepath.SkipDir
			}
			return nil
		}
		if !project.IsDartSource(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			w.update(path)
		}
		return nil
	})

	for path := range w.modTimes {
		if !currentFiles[path] {
			delete(w.modTimes, path)
			w.codebase.RemoveFile(path)
			w.emit(Event{Path: path, Removed: true})
		}
	}
}

func (w *FileWatcher) update(path string) {
	ev := Event{Path: path}
	ev.Err = w.codebase.ScanFile(path)
	if ev.Err == nil && w.Write {
		ev.Written, ev.Err = w.codebase.WriteFile(path)
	}
	w.emit(ev)
}

func (w *FileWatcher) emit(ev Event) {
	if ev.Err != nil {
		logger().Warningf("%s: %s", ev.Path, ev.Err)
	}
	if w.OnEvent != nil {
		w.OnEvent(ev)
	}
}
