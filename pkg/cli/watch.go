package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/OlaoluwaM/scaffy/pkg/console"
	"github.com/OlaoluwaM/scaffy/pkg/constants"
	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// watchConfig calls onChange once immediately and again after every burst of
// writes to path, until ctx is done. Status lines go to w. The parent
// directory is watched so editors that replace the file by renaming keep
// being followed.
func watchConfig(ctx context.Context, w io.Writer, path string, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	watchLog.Printf("Watching %s in %s", filepath.Base(abs), dir)

	onChange()
	fmt.Fprintln(w, console.FormatInfoMessage(fmt.Sprintf("Watching %s for changes (press Ctrl+C to stop)", path)))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !isContentChange(event) {
				continue
			}
			watchLog.Printf("Config event: %s", event)
			if timer == nil {
				timer = time.NewTimer(constants.WatchDebounce)
			} else {
				timer.Reset(constants.WatchDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			watchLog.Printf("Watcher error: %v", err)
			fmt.Fprintln(w, console.FormatWarningMessage(fmt.Sprintf("File watcher error: %v", err)))
		}
	}
}

func isContentChange(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
