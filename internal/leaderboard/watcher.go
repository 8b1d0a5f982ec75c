package leaderboard

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher signals when a leaderboard file changes on disk, for example when
// another process saves a score.
type Watcher struct {
	fsw     *fsnotify.Watcher
	path    string
	changes chan struct{}
	logger  *log.Logger
}

// Watch starts watching the file at path. The parent directory is watched
// so the file may be created, replaced or removed after the watch starts.
func Watch(path string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("leaderboard: cannot create directory %s: %w", dir, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("leaderboard: cannot watch %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:     fsw,
		path:    abs,
		changes: make(chan struct{}, 1),
		logger:  logger,
	}
	go w.loop()
	return w, nil
}

// Changes delivers one value per burst of changes. It is closed after Close.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.changes)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			w.logger.Debug("leaderboard file changed", "path", w.path, "op", event.Op.String())
			// Coalesce: a pending signal already covers this change
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("leaderboard watcher error", "error", err)
		}
	}
}
