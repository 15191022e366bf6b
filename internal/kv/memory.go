package kv

import (
	"sync"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// Compile-time interface check: Memory must implement KeyValue.
var _ types.KeyValue = (*Memory)(nil)

// Memory is a map-backed KeyValue store for tests and ephemeral sessions.
// It mirrors browser localStorage semantics: keys enumerate in insertion
// order, and overwriting a key keeps its position.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	order  []string
	closed bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, types.ErrStoreClosed
	}

	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores value under key. An existing key keeps its insertion position.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return types.ErrStoreClosed
	}

	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = value
	return nil
}

// Delete removes key. Deleting an absent key succeeds.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return types.ErrStoreClosed
	}

	if _, ok := m.values[key]; !ok {
		return nil
	}
	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Keys returns a snapshot of all keys in insertion order.
func (m *Memory) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, types.ErrStoreClosed
	}

	keys := make([]string, len(m.order))
	copy(keys, m.order)
	return keys, nil
}

// Close marks the store closed. Idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
