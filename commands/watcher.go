package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const eventChannelBuffer = 500

// fileWatcher watches a directory for dataset file changes and emits the
// paths of files whose content actually changed, debounced so a file being
// written in several syscalls triggers one event.
type fileWatcher struct {
	dir        string
	debounce   time.Duration
	extensions map[string]bool
	watcher    *fsnotify.Watcher
	logger     *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]bool

	hashMu sync.RWMutex
	hashes map[string]string

	events chan string
}

func newFileWatcher(dir string, debounce time.Duration, extensions []string, logger *slog.Logger) (*fileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	extSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extSet[strings.ToLower(ext)] = true
	}

	return &fileWatcher{
		dir:        dir,
		debounce:   debounce,
		extensions: extSet,
		watcher:    fsw,
		logger:     logger,
		pending:    make(map[string]bool),
		hashes:     make(map[string]string),
		events:     make(chan string, eventChannelBuffer),
	}, nil
}

// Events returns the channel of changed file paths.
func (w *fileWatcher) Events() <-chan string {
	return w.events
}

// Start begins watching. The events channel closes when ctx is cancelled or
// the watcher is stopped.
func (w *fileWatcher) Start(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("watching directory",
		"dir", w.dir,
		"debounce", w.debounce)
	return nil
}

// Stop stops the watcher.
func (w *fileWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *fileWatcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

func (w *fileWatcher) handleFSEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	if !w.extensions[ext] {
		return
	}

	w.pendingMu.Lock()
	w.pending[event.Name] = true
	w.pendingMu.Unlock()

	w.logger.Debug("dataset change detected", "path", event.Name, "op", event.Op.String())
}

// flushPending emits the accumulated paths whose content hash changed since
// the last emission.
func (w *fileWatcher) flushPending() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := make([]string, 0, len(w.pending))
	for path := range w.pending {
		toProcess = append(toProcess, path)
	}
	w.pending = make(map[string]bool)
	w.pendingMu.Unlock()

	for _, path := range toProcess {
		content, err := os.ReadFile(path)
		if err != nil {
			w.logger.Warn("failed to read changed file", "path", path, "error", err)
			continue
		}

		sum := sha256.Sum256(content)
		newHash := hex.EncodeToString(sum[:])

		w.hashMu.Lock()
		oldHash, hadHash := w.hashes[path]
		w.hashes[path] = newHash
		w.hashMu.Unlock()

		if hadHash && oldHash == newHash {
			continue
		}

		select {
		case w.events <- path:
		default:
			w.logger.Warn("event channel full, dropping event", "path", path)
		}
	}
}
