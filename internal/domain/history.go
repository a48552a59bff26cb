package domain

import "time"

// HistoryEntry records one submission for the session history panel.
type HistoryEntry struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Draft     Draft         `json:"draft"`
	Status    int           `json:"status"`
	Elapsed   time.Duration `json:"elapsed"`
	Error     string        `json:"error,omitempty"` // transport error if no response arrived
}

// Outcome returns "success" for 2xx responses and "error" otherwise.
func (e HistoryEntry) Outcome() string {
	if e.Error == "" && e.Status >= 200 && e.Status < 300 {
		return "success"
	}
	return "error"
}

// NewHistoryEntry builds a history entry from a draft and its snapshot.
func NewHistoryEntry(d Draft, s *Snapshot) HistoryEntry {
	return HistoryEntry{
		ID:        s.ID,
		Timestamp: s.Timestamp,
		Draft:     d,
		Status:    s.Status,
		Elapsed:   s.Elapsed,
		Error:     s.Err,
	}
}
