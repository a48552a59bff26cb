package composer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shhac/burrow/internal/client"
	"github.com/shhac/burrow/internal/domain"
	"github.com/shhac/burrow/internal/storage"
)

// Sender performs the network exchange for a prepared request.
type Sender interface {
	Send(ctx context.Context, req client.Request) *domain.Snapshot
}

// Composer turns a draft from the request form into exactly one outbound
// request and records the outcome in the session history.
type Composer struct {
	mu      sync.RWMutex
	sender  Sender
	history storage.Repository
	logger  *slog.Logger
}

// New creates a Composer. history may be nil.
func New(sender Sender, history storage.Repository, logger *slog.Logger) *Composer {
	return &Composer{
		sender:  sender,
		history: history,
		logger:  logger,
	}
}

// SetSender swaps the sender used for subsequent submissions, e.g. after
// preferences change. Submissions already in flight keep the old one.
func (c *Composer) SetSender(s Sender) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sender = s
}

func (c *Composer) currentSender() Sender {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sender
}

// BuildRequest normalizes and validates the draft, then folds it into the
// outbound request. Rows with an empty key are dropped. No network I/O
// happens here, so a malformed body aborts before anything is sent.
func BuildRequest(d domain.Draft) (client.Request, error) {
	d = d.Normalize()
	if err := Validate(d); err != nil {
		return client.Request{}, err
	}

	body, err := ParseBody(d.Body)
	if err != nil {
		return client.Request{}, fmt.Errorf("parse body: %w", err)
	}

	return client.Request{
		Method:  d.Method,
		URL:     d.URL,
		Params:  d.Params.Map(),
		Headers: d.Headers.Map(),
		Body:    body,
	}, nil
}

// Submit sends the draft. It returns an error only when the draft is
// rejected before sending; every network outcome, including transport
// failures, comes back as a snapshot.
func (c *Composer) Submit(ctx context.Context, d domain.Draft) (*domain.Snapshot, error) {
	req, err := BuildRequest(d)
	if err != nil {
		c.logger.Info("submission rejected",
			slog.String("method", d.Method),
			slog.String("url", d.URL),
			slog.Any("error", err),
		)
		return nil, err
	}

	sender := c.currentSender()
	if sender == nil {
		return nil, fmt.Errorf("no sender configured")
	}

	snap := sender.Send(ctx, req)

	if c.history != nil {
		if err := c.history.AddHistoryEntry(domain.NewHistoryEntry(d.Normalize(), snap)); err != nil {
			c.logger.Warn("failed to record history", slog.Any("error", err))
		}
	}

	return snap, nil
}
