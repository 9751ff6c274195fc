package service

import (
	"consultas/cmd/internal/domain/memory"
	"sync/atomic"
)

var _ BlobRepository = (*MockBlobRepository)(nil)

// MockBlobRepository delegates to an in-memory repository unless a Func
// override is set.
type MockBlobRepository struct {
	LoadFunc func(key string) ([]byte, error)
	SaveFunc func(key string, value []byte) error

	SaveFuncCallCount int32

	inner *memory.DefaultBlobRepository
}

func newMockBlobRepository() *MockBlobRepository {
	return &MockBlobRepository{inner: memory.NewBlobRepository()}
}

func (m *MockBlobRepository) Load(key string) ([]byte, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(key)
	}
	return m.inner.Load(key)
}

func (m *MockBlobRepository) Save(key string, value []byte) error {
	atomic.AddInt32(&m.SaveFuncCallCount, 1)
	if m.SaveFunc != nil {
		return m.SaveFunc(key, value)
	}
	return m.inner.Save(key, value)
}

func failSave(err error) func(string, []byte) error {
	return func(string, []byte) error { return err }
}
