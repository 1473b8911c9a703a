package content

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce collapses editor save bursts into one refresh.
const DefaultDebounce = 300 * time.Millisecond

// Watch calls onChange after the document file inside dir is written, created,
// removed or renamed, at most once per debounce window. It blocks until ctx is
// done and returns nil then.
func Watch(ctx context.Context, dir string, debounce time.Duration, onChange func(), logger zerolog.Logger) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	log := logger.With().Str("module", "content").Str("component", "watcher").Logger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors often replace files by rename.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Info().Str("dir", dir).Msg("watching content directory")

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isDocumentFile(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("content change detected")
				timer.Reset(debounce)
				fire = timer.C
			}
		case <-fire:
			fire = nil
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}
