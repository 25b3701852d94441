package site

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for events to settle.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls OnChange once a burst of file changes under Roots has
// settled. Changes under Ignore (typically the output directory) are
// skipped, as are directories named in skipDirs.
type Watcher struct {
	Roots    []string
	Ignore   []string
	Debounce time.Duration
	OnChange func(ctx context.Context)
	Logger   *zap.Logger
}

var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Run watches until ctx is cancelled. Roots that are files are watched
// directly; directories are watched recursively, including ones created
// later.
func (w *Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	ignore := make([]string, 0, len(w.Ignore))
	for _, p := range w.Ignore {
		if abs, err := filepath.Abs(p); err == nil {
			ignore = append(ignore, abs)
		}
	}
	ignored := func(path string) bool {
		abs, err := filepath.Abs(path)
		if err != nil {
			return false
		}
		for _, p := range ignore {
			if abs == p || strings.HasPrefix(abs, p+string(filepath.Separator)) {
				return true
			}
		}
		return false
	}

	addTree := func(root string) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Debug("walk", zap.String("path", path), zap.Error(err))
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && (skipDirs[d.Name()] || ignored(path)) {
				return filepath.SkipDir
			}
			if err := fw.Add(path); err != nil {
				logger.Warn("failed to watch", zap.String("path", path), zap.Error(err))
			}
			return nil
		})
	}

	for _, root := range w.Roots {
		info, err := os.Stat(root)
		if err != nil {
			logger.Warn("not watching", zap.String("path", root), zap.Error(err))
			continue
		}
		if info.IsDir() {
			addTree(root)
		} else if err := fw.Add(root); err != nil {
			logger.Warn("failed to watch", zap.String("path", root), zap.Error(err))
		}
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if ignored(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					addTree(ev.Name)
				}
			}
			logger.Debug("change detected", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				if ctx.Err() == nil {
					w.OnChange(ctx)
				}
			})
			mu.Unlock()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}
