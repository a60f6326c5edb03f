package storage

import (
	"strconv"
	"sync"
)

// Memory is an in-process key/value store. It backs high scores when no
// database is available, so they last for the lifetime of the process.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get reads a key. ok is false when the key is absent.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set writes a key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// SetIfHigher writes value when the key is absent, malformed or holds a
// lower number. Reports whether it wrote.
func (m *Memory) SetIfHigher(key string, value int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, err := strconv.Atoi(m.data[key]); err == nil && cur >= value {
		return false, nil
	}
	m.data[key] = strconv.Itoa(value)
	return true, nil
}
