package history

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/burrow/internal/domain"
	"github.com/shhac/burrow/internal/logging"
	"github.com/shhac/burrow/internal/storage"
)

func seed(t *testing.T, repo storage.Repository) {
	t.Helper()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entries := []domain.HistoryEntry{
		{ID: "1", Timestamp: base, Draft: domain.Draft{Method: "GET", URL: "http://api.test/users"}, Status: 200, Elapsed: 12 * time.Millisecond},
		{ID: "2", Timestamp: base.Add(time.Second), Draft: domain.Draft{Method: "POST", URL: "http://api.test/orders"}, Status: 500},
		{ID: "3", Timestamp: base.Add(2 * time.Second), Draft: domain.Draft{Method: "GET", URL: "http://down.test"}, Error: "Connection Failed"},
	}
	for _, e := range entries {
		require.NoError(t, repo.AddHistoryEntry(e))
	}
}

func newPanel(t *testing.T) (*HistoryPanel, storage.Repository) {
	t.Helper()
	repo := storage.NewMemoryRepository()
	seed(t, repo)
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)
	return NewHistoryPanel(nil, repo, logging.NewNopLogger(), w), repo
}

func ids(entries []domain.HistoryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestHistoryPanel_NewestFirst(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _ := newPanel(t)
	assert.Equal(t, []string{"3", "2", "1"}, ids(p.VisibleEntries()))
	assert.Equal(t, "History (3)", p.statusLabel.Text)
}

func TestHistoryPanel_Filter(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _ := newPanel(t)

	p.SetFilter("orders")
	assert.Equal(t, []string{"2"}, ids(p.VisibleEntries()))
	assert.Equal(t, "History (1 of 3)", p.statusLabel.Text)

	p.SetFilter("GET")
	assert.Equal(t, []string{"3", "1"}, ids(p.VisibleEntries()))

	p.SetFilter("")
	assert.Len(t, p.VisibleEntries(), 3)
}

func TestFilterEntries_Status(t *testing.T) {
	entries := []domain.HistoryEntry{
		{ID: "ok", Status: 204},
		{ID: "bad", Status: 404},
		{ID: "down", Error: "Host Not Found"},
	}
	assert.Equal(t, []string{"ok"}, ids(filterEntries(entries, "", "success")))
	assert.Equal(t, []string{"bad", "down"}, ids(filterEntries(entries, "", "error")))
	assert.Equal(t, []string{"bad"}, ids(filterEntries(entries, "404", "")))
	assert.Equal(t, []string{"down"}, ids(filterEntries(entries, "host not", "")))
}

func TestHistoryPanel_DeleteAndClear(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, repo := newPanel(t)

	require.NoError(t, p.DeleteEntry("2"))
	assert.Equal(t, []string{"3", "1"}, ids(p.VisibleEntries()))

	require.NoError(t, p.ClearHistory())
	assert.Empty(t, p.VisibleEntries())
	entries, err := repo.GetHistory(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryPanel_SelectLoadsDraft(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _ := newPanel(t)

	var got domain.HistoryEntry
	p.SetOnSelect(func(e domain.HistoryEntry) { got = e })
	p.listWidget.Select(2)

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "http://api.test/users", got.Draft.URL)
}

func TestFormatOutcome(t *testing.T) {
	assert.Equal(t, "200 · 12 ms", formatOutcome(domain.HistoryEntry{Status: 200, Elapsed: 12 * time.Millisecond}))
	assert.Equal(t, "✗ Connection Failed", formatOutcome(domain.HistoryEntry{Error: "Connection Failed"}))
	assert.Equal(t, "✗ no response", formatOutcome(domain.HistoryEntry{}))
}

func TestShortURL(t *testing.T) {
	assert.Equal(t, "api.test/users", shortURL("https://api.test/users"))
	long := "http://example.com/" + strings.Repeat("a", 80)
	out := []rune(shortURL(long))
	assert.Len(t, out, urlLabelRunes)
	assert.Equal(t, '…', out[len(out)-1])
}
