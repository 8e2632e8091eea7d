package recordstore

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// MemoryMedium keeps tables in process memory. Units are serialized by a
// mutex and their writes are staged until fn succeeds.
type MemoryMedium struct {
	mu     sync.Mutex
	tables map[string][]byte
}

func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{tables: make(map[string][]byte)}
}

func (m *MemoryMedium) Atomically(ctx context.Context, fn func(ctx context.Context, s Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := &memorySession{base: m.tables, staged: make(map[string][]byte)}
	if err := fn(ctx, s); err != nil {
		return err
	}
	maps.Copy(m.tables, s.staged)
	return nil
}

func (m *MemoryMedium) Close() error { return nil }

// SetRaw stores a payload as is, bypassing the codec.
func (m *MemoryMedium) SetRaw(table string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table] = slices.Clone(payload)
}

func (m *MemoryMedium) Raw(table string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.tables[table]
	return slices.Clone(b), ok
}

type memorySession struct {
	base   map[string][]byte
	staged map[string][]byte
}

func (s *memorySession) Get(_ context.Context, table string) ([]byte, bool, error) {
	if b, ok := s.staged[table]; ok {
		return slices.Clone(b), true, nil
	}
	b, ok := s.base[table]
	return slices.Clone(b), ok, nil
}

func (s *memorySession) Put(_ context.Context, table string, payload []byte) error {
	s.staged[table] = slices.Clone(payload)
	return nil
}
