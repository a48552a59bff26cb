package storage

import "github.com/shhac/burrow/internal/domain"

const maxHistory = 100

// Repository defines history operations for Burrow. Entries are returned
// newest first.
type Repository interface {
	AddHistoryEntry(entry domain.HistoryEntry) error
	GetHistory(limit int) ([]domain.HistoryEntry, error)
	GetHistoryEntry(id string) (*domain.HistoryEntry, error)
	DeleteHistoryEntry(id string) error
	ClearHistory() error
}
