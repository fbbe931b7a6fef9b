package store

import (
	"context"
	"maps"
	"sync"

	"github.com/alexanderramin/strata/internal/domain"
)

// MemoryBackend keeps collections in process memory.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[domain.Collection][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[domain.Collection][]byte)}
}

func (m *MemoryBackend) Get(_ context.Context, name domain.Collection) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[name]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), raw...), nil
}

func (m *MemoryBackend) Set(_ context.Context, name domain.Collection, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = append([]byte(nil), payload...)
	return nil
}

// MemoryUnitOfWork stages writes on a copy of the backend and publishes them
// only when fn returns nil.
type MemoryUnitOfWork struct {
	mu      sync.Mutex
	backend *MemoryBackend
}

func NewMemoryUnitOfWork(backend *MemoryBackend) *MemoryUnitOfWork {
	return &MemoryUnitOfWork{backend: backend}
}

func (u *MemoryUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, b Backend) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.backend.mu.RLock()
	staged := &MemoryBackend{data: maps.Clone(u.backend.data)}
	u.backend.mu.RUnlock()

	if err := fn(ctx, staged); err != nil {
		return err
	}

	u.backend.mu.Lock()
	u.backend.data = staged.data
	u.backend.mu.Unlock()
	return nil
}

func (u *MemoryUnitOfWork) WithinReadTx(ctx context.Context, fn func(ctx context.Context, b Backend) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, u.backend)
}
