package diagdocs

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/diagdocgen/internal/logfields"
)

// DefaultDebounce coalesces bursts of filesystem events into one run.
const DefaultDebounce = 200 * time.Millisecond

// Watch reruns the generator whenever a note in the source directory changes,
// until ctx is cancelled. Every rerun is a full regeneration. Failed reruns
// are logged and the watch continues.
//
// onRun, if set, is called after each rerun with its outcome.
func (g *Generator) Watch(ctx context.Context, debounce time.Duration, onRun func(Result, error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(g.opts.SourceDir); err != nil {
		return fmt.Errorf("watch %s: %w", g.opts.SourceDir, err)
	}
	g.logger.Info("Watching for note changes", logfields.Source(g.opts.SourceDir))

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			g.logger.Debug("Note changed", logfields.Source(ev.Name), logfields.Event(ev.Op.String()))
			timer.Reset(debounce)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			g.logger.Warn("Watcher error", logfields.Error(werr))

		case <-timer.C:
			res, err := g.Run()
			if err != nil {
				g.logger.Error("Regeneration failed", logfields.Error(err))
			}
			if onRun != nil {
				onRun(res, err)
			}
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !IsNoteName(ev.Name) {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
