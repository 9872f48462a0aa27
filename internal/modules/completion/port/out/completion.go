package out

import "context"

// KeyValueStore is the persistence medium holding the completion collection
// under a single key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// ChangeNotifier reports that the stored collection was rewritten, possibly
// by another process.
type ChangeNotifier interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
}
