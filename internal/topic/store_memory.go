package topic

import (
	"context"
	"sort"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	topics map[string]Topic
}

func NewInMemoryStore() Store {
	return &memoryStore{topics: map[string]Topic{}}
}

func (m *memoryStore) List(_ context.Context) ([]Topic, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Topic, 0, len(m.topics))
	for _, t := range m.topics {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Topic, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.topics[id]
	if !ok {
		return Topic{}, ErrNotFound
	}
	return t, nil
}

func (m *memoryStore) Put(_ context.Context, t Topic) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.Keywords = append([]string(nil), t.Keywords...)
	m.topics[t.ID] = t
	return nil
}
