package kvstore

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory is an in-memory Store used in tests and throwaway runs.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, chave string, out interface{}) (bool, error) {
	m.mu.Lock()
	raw, ok := m.data[chave]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) Set(ctx context.Context, chave string, valor interface{}) error {
	raw, err := json.Marshal(valor)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[chave] = raw
	m.mu.Unlock()
	return nil
}
