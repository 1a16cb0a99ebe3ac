package division

import (
	"context"
	"sync"
)

// Memory is an in-process registry backed by a plain map. It doubles as the
// synchronous lookup table handed to the identity-number parser, which must
// not block or fail on infrastructure.
type Memory struct {
	mu     sync.RWMutex
	byCode map[string]Division
}

// NewMemory builds a registry over the given divisions. Later entries with a
// duplicate code win, so callers can layer revision updates over a base table.
func NewMemory(divisions []Division) *Memory {
	m := &Memory{byCode: make(map[string]Division, len(divisions))}
	for _, d := range divisions {
		m.byCode[d.Code] = d
	}
	return m
}

// Get is the synchronous fast path used by the parser.
func (m *Memory) Get(code string) (Division, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.byCode[code]
	return d, ok
}

// Lookup implements Registry.
func (m *Memory) Lookup(_ context.Context, code string) (Division, bool, error) {
	d, ok := m.Get(code)
	return d, ok, nil
}

// Seed implements Seeder. Existing entries with the same code are replaced.
func (m *Memory) Seed(_ context.Context, divisions []Division) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range divisions {
		m.byCode[d.Code] = d
	}
	return nil
}

// Len reports the number of distinct codes in the registry.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byCode)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Memory
)

// Default returns the registry seeded from the embedded GB/T 2260 table.
func Default() *Memory {
	defaultOnce.Do(func() {
		defaultRegistry = NewMemory(embedded)
	})
	return defaultRegistry
}
