package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/avesh-singh/neet-pg-checker/constants"
)

// WatchConfig controls directory watching for counselling documents.
type WatchConfig struct {
	Roots       []string      // directories to watch (recursive)
	InitialScan bool          // if true, walk roots and emit existing PDFs
	Debounce    time.Duration // coalesce rapid write/rename bursts
}

// StartWatcher emits the path of every PDF that appears or changes under
// the configured roots. Counselling boards republish the same allotment
// file several times around result day, so the ingest idempotency check
// is what keeps re-emits harmless.
func StartWatcher(ctx context.Context, cfg WatchConfig) (<-chan string, <-chan error, error) {
	if len(cfg.Roots) == 0 {
		return nil, nil, errors.New("no roots provided")
	}
	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	var initial []string
	addDir := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if IsHidden(path) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if cfg.InitialScan && AllowedExt(filepath.Ext(path)) {
				initial = append(initial, path)
			}
			return nil
		})
	}
	for _, r := range cfg.Roots {
		if err := addDir(r); err != nil {
			_ = w.Close()
			return nil, nil, err
		}
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() {
			if cerr := w.Close(); cerr != nil {
				slog.Warn("close watcher", "error", cerr)
			}
		}()

		// A full consumer must not lose paths, so emits block until the
		// consumer takes them or the watch is cancelled.
		emit := func(p string) bool {
			select {
			case evCh <- p:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for _, p := range initial {
			if !emit(p) {
				return
			}
		}

		// pending and the debounce timer belong to this goroutine only;
		// the timer callback just posts a flush tick back into the loop.
		var timer *time.Timer
		pending := map[string]struct{}{}
		flush := make(chan struct{}, 1)

		sendPending := func() bool {
			for p := range pending {
				if !emit(p) {
					return false
				}
				delete(pending, p)
			}
			return true
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-flush:
				if !sendPending() {
					return
				}
			case e := <-w.Events:
				if e.Op&fsnotify.Create == fsnotify.Create {
					// A new subdirectory needs watching too; Add on a
					// plain file fails and that is fine.
					_ = w.Add(e.Name)
				}
				if AllowedExt(filepath.Ext(e.Name)) && e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
					pending[e.Name] = struct{}{}
					if cfg.Debounce > 0 {
						if timer != nil {
							timer.Stop()
						}
						timer = time.AfterFunc(cfg.Debounce, func() {
							select {
							case flush <- struct{}{}:
							default:
							}
						})
					} else if !sendPending() {
						return
					}
				}
			case werr := <-w.Errors:
				slog.Error("watcher error", "error", werr)
				select {
				case errCh <- werr:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}

// WatchDirectory runs the service against a watched directory until ctx is
// cancelled, ingesting emitted documents on a worker pool so a burst of
// republished allotment files does not serialize behind one slow PDF.
func (s *Service) WatchDirectory(ctx context.Context, root string, layoutOverride constants.Layout, workers int) error {
	events, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{root},
		InitialScan: true,
		Debounce:    2 * time.Second,
	})
	if err != nil {
		return err
	}
	s.Logger.Info("watching for counselling documents", "root", root, "workers", workers)

	queue := NewQueue(s, s.Logger, WithWorkers(workers))
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		queue.Shutdown(drainCtx)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path, ok := <-events:
			if !ok {
				return nil
			}
			if qerr := queue.Enqueue(ctx, Job{Path: path, Layout: layoutOverride, SubmittedAt: time.Now()}); qerr != nil {
				s.Logger.Error("enqueue failed", "path", path, "error", qerr)
			}
		case werr, ok := <-errs:
			if ok && werr != nil {
				s.Logger.Error("watch error", "error", werr)
			}
		}
	}
}
