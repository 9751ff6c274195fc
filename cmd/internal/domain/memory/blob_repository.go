// Package memory holds blobs in process memory. Nothing survives a
// restart; it backs tests and the "memory" storage driver.
package memory

import "sync"

type DefaultBlobRepository struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewBlobRepository() *DefaultBlobRepository {
	return &DefaultBlobRepository{blobs: make(map[string][]byte)}
}

func (b *DefaultBlobRepository) Load(key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	value, ok := b.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (b *DefaultBlobRepository) Save(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blobs[key] = append([]byte(nil), value...)
	return nil
}
