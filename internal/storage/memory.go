package storage

import (
	"fmt"
	"sync"

	"github.com/shhac/burrow/internal/domain"
)

// MemoryRepository implements Repository for the lifetime of the process.
type MemoryRepository struct {
	history []domain.HistoryEntry
	max     int
	mu      sync.RWMutex
}

// NewMemoryRepository creates an empty session history holding at most
// maxHistory entries.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		history: []domain.HistoryEntry{},
		max:     maxHistory,
	}
}

// AddHistoryEntry puts entry at the front, evicting the oldest entries past
// the limit.
func (m *MemoryRepository) AddHistoryEntry(entry domain.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append([]domain.HistoryEntry{entry}, m.history...)
	if len(m.history) > m.max {
		m.history = m.history[:m.max]
	}
	return nil
}

// GetHistory returns up to limit entries, newest first. A limit of zero or
// less returns everything.
func (m *MemoryRepository) GetHistory(limit int) ([]domain.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.history)
	if limit > 0 && limit < n {
		n = limit
	}

	// Return a copy to prevent external modification
	out := make([]domain.HistoryEntry, n)
	copy(out, m.history[:n])
	return out, nil
}

// GetHistoryEntry looks up a single entry by ID
func (m *MemoryRepository) GetHistoryEntry(id string) (*domain.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.history {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("history entry %q not found", id)
}

// DeleteHistoryEntry removes the entry with the given ID
func (m *MemoryRepository) DeleteHistoryEntry(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.history {
		if e.ID == id {
			m.history = append(m.history[:i], m.history[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("history entry %q not found", id)
}

// ClearHistory removes all entries
func (m *MemoryRepository) ClearHistory() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = []domain.HistoryEntry{}
	return nil
}
