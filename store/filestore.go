package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists each key as a JSON file under a data directory. This is
// the default backend; state survives a restart the same way the storefront
// state survives a reload.
type FileStore struct {
	notifier
	dir string
	mu  sync.RWMutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string, into any) (bool, error) {
	raw, ok := s.LoadRaw(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		// corrupt value, treated as absent
		return false, nil
	}
	return true, nil
}

func (s *FileStore) LoadRaw(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (s *FileStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	err = os.WriteFile(s.path(key), data, 0o644)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify(key)
	return nil
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	err := os.Remove(s.path(key))
	s.mu.Unlock()
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	s.notify(key)
	return nil
}
