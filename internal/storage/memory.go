package storage

import "sync"

// MemStore is an in-memory RecordStore for tests and ephemeral runs.
type MemStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string][]byte)}
}

func (s *MemStore) ReadRecord(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	data := make([]byte, len(v))
	copy(data, v)
	return data, nil
}

func (s *MemStore) WriteRecord(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.records[key] = cp
	return nil
}
