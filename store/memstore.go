package store

import (
	"encoding/json"
	"sync"
)

// MemStore keeps everything in memory. Used by tests.
type MemStore struct {
	notifier
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Load(key string, into any) (bool, error) {
	raw, ok := s.LoadRaw(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *MemStore) LoadRaw(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[key]
	return raw, ok
}

// SetRaw places raw bytes under key without marshalling, bypassing
// notification. Lets tests plant corrupt documents.
func (s *MemStore) SetRaw(key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
}

func (s *MemStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()

	s.notify(key)
	return nil
}

func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()

	s.notify(key)
	return nil
}
