package out

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	completionout "sabibi/internal/modules/completion/port/out"
	"sabibi/internal/platform/logging"
)

// FileStoreWatcher signals when the file backing key is rewritten, e.g. by a
// `sabibi record` run in another terminal.
type FileStoreWatcher struct {
	dir    string
	key    string
	logger *slog.Logger
}

func NewFileStoreWatcher(dir, key string, logger *slog.Logger) completionout.ChangeNotifier {
	if logger == nil {
		logger = logging.Discard()
	}
	return &FileStoreWatcher{dir: dir, key: key, logger: logger}
}

// Watch watches the store directory rather than the file, since atomic
// writes replace the file and would drop a file-level watch.
func (w *FileStoreWatcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create store watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}

	changes := make(chan struct{}, 1)
	target := filepath.Base(KeyPath(w.dir, w.key))
	go func() {
		defer close(changes)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				w.logger.Debug("completion store changed", logging.Path(event.Name))
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.logger.Error("completion store watcher error", logging.Error(err))
			}
		}
	}()
	return changes, nil
}
