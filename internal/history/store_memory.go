package history

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	entries []Entry // append order
}

func NewInMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) Append(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

func (m *memoryStore) List(_ context.Context, opts ListOpts) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Entry
	skipped := 0
	for _, e := range m.entries {
		if opts.Subject != "" && e.Subject != opts.Subject {
			continue
		}
		if opts.TopicID != "" && e.TopicID != opts.TopicID {
			continue
		}
		if skipped < opts.Offset {
			skipped++
			continue
		}
		out = append(out, e)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *memoryStore) Recent(_ context.Context, subject string, n int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Entry
	for i := len(m.entries) - 1; i >= 0 && (n <= 0 || len(out) < n); i-- {
		if m.entries[i].Subject == subject {
			out = append(out, m.entries[i])
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
