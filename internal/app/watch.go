package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vk/sumgridgo/internal/ctxlog"
)

// watchDebounce batches rapid file system events (editors often emit several
// per save) into a single reload.
const watchDebounce = 300 * time.Millisecond

// Watch runs the grid once, then keeps re-running it whenever the grid or
// module configuration changes on disk. It blocks until ctx is cancelled.
// A reload that fails to validate keeps the previous configuration active.
func (a *App) Watch(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range []string{appConfig.GridPath, appConfig.ModulesPath} {
		if root == "" {
			continue
		}
		if err := addRecursive(watcher, root); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
	}

	// Initial run before entering the event loop.
	if err := a.Run(ctx, appConfig); err != nil {
		logger.Error("Run failed.", "error", err)
	}
	logger.Info("👀 Watching for configuration changes...")

	// Reloads are serialized through this loop; the debounce timer only
	// signals, it never runs anything itself.
	reloadCh := make(chan struct{}, 1)
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch mode stopping.", "reason", ctx.Err())
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Configuration change detected.", "file", event.Name, "op", event.Op.String())

			// New directories need their own watch to catch files created
			// inside them later.
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if addErr := addRecursive(watcher, event.Name); addErr != nil {
						logger.Warn("Failed to watch new directory.", "path", event.Name, "error", addErr)
					}
				}
			}

			// Reset debounce timer.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case reloadCh <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error.", "error", err)

		case <-reloadCh:
			logger.Info("🔄 Configuration changed, reloading...")
			if err := a.load(ctx, appConfig); err != nil {
				logger.Error("Reload failed, keeping previous configuration.", "error", err)
				continue
			}
			if err := a.Run(ctx, appConfig); err != nil {
				logger.Error("Run failed.", "error", err)
			}
		}
	}
}

// addRecursive adds root and all directories below it to the watcher.
// A missing root is skipped so watch mode can start before every
// configured path exists.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return watcher.Add(root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
