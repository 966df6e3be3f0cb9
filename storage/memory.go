package storage

import (
	"encoding/json"
	"sync"
)

// MemoryCollections keeps collections as serialized documents in memory.
// Used by the ephemeral deployment variant and by tests. Documents round-trip
// through JSON so readers always get an independent snapshot, exactly like
// the file backend.
type MemoryCollections struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryCollections() *MemoryCollections {
	return &MemoryCollections{docs: map[string][]byte{}}
}

func (m *MemoryCollections) Read(name string, out interface{}) error {
	m.mu.RLock()
	data, ok := m.docs[name]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (m *MemoryCollections) Write(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.docs[name] = data
	m.mu.Unlock()
	return nil
}
