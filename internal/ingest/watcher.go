// Package ingest discovers staged uploads on the filesystem. An upload
// is ready once its .info sidecar appears next to the payload file; the
// watcher emits sidecar paths and the intake loop turns them into
// queued triggers.
package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jcordova-gis/geoingest/constants"
)

type WatchConfig struct {
	Root        string        // staging directory to watch (recursive)
	InitialScan bool          // if true, walk the root and emit existing sidecars
	Debounce    time.Duration // coalesce rapid update/rename bursts
}

// StartWatcher emits the path of every .info sidecar that appears under
// the staging root. Channels close when ctx is cancelled.
func StartWatcher(ctx context.Context, logger *slog.Logger, cfg WatchConfig) (<-chan string, <-chan error, error) {
	if cfg.Root == "" {
		logger.Error("watcher start failed: no staging root provided")
		return nil, nil, errors.New("no staging root provided")
	}
	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("failed to create fsnotify watcher", "error", err)
		return nil, nil, err
	}

	addDir := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if cfg.InitialScan && isSidecar(path) {
				select {
				case evCh <- path:
				default:
				}
			}
			return nil
		})
	}
	if err := addDir(cfg.Root); err != nil {
		logger.Error("failed to add staging root", "root", cfg.Root, "error", err)
		_ = w.Close()
		return nil, nil, err
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() { _ = w.Close() }()

		// The debounce timer only signals this goroutine; all pending-map
		// access and evCh sends stay here so cancellation cannot race a
		// send on the closed channel.
		var timer *time.Timer
		fire := make(chan struct{}, 1)
		pending := map[string]struct{}{}

		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		sendPending := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-fire:
				sendPending()
			case e := <-w.Events:
				if e.Op&fsnotify.Create == fsnotify.Create {
					// New subdirectories need their own watch.
					tryAddDir(w, e.Name)
				}

				if isSidecar(e.Name) && (e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename)) != 0 {
					pending[e.Name] = struct{}{}
					if cfg.Debounce > 0 {
						if timer != nil {
							timer.Stop()
						}
						timer = time.AfterFunc(cfg.Debounce, func() {
							select {
							case fire <- struct{}{}:
							default:
							}
						})
					} else {
						sendPending()
					}
				}
			case err := <-w.Errors:
				logger.Error("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}

func isSidecar(path string) bool {
	return strings.EqualFold(filepath.Ext(path), constants.InfoSuffix)
}

func tryAddDir(w *fsnotify.Watcher, path string) {
	// Best-effort: Add fails for plain files, which is fine.
	_ = w.Add(path)
}
