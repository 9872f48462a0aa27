package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	completionout "sabibi/internal/modules/completion/port/out"
	apperrors "sabibi/internal/platform/errors"
)

// FileKeyValueStore keeps each key in its own JSON file under dir.
type FileKeyValueStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileKeyValueStore(dir string) completionout.KeyValueStore {
	return &FileKeyValueStore{dir: dir}
}

// KeyPath returns the file backing key inside dir.
func KeyPath(dir, key string) string {
	return filepath.Join(dir, key+".json")
}

func (s *FileKeyValueStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := os.ReadFile(KeyPath(s.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return payload, true, nil
}

func (s *FileKeyValueStore) Set(_ context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, KeyPath(s.dir, key)); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: store key %q", apperrors.ErrInvalidInput, key)
	}
	return nil
}
