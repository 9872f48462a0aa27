package out

import (
	"context"
	"sync"

	completionout "sabibi/internal/modules/completion/port/out"
)

type MemoryKeyValueStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{values: map[string][]byte{}}
}

var _ completionout.KeyValueStore = (*MemoryKeyValueStore)(nil)

func (s *MemoryKeyValueStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *MemoryKeyValueStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}
