package ui

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/burrow/internal/app"
	"github.com/shhac/burrow/internal/domain"
	"github.com/shhac/burrow/internal/logging"
	"github.com/shhac/burrow/internal/model"
)

func newTestWindow(t *testing.T) (*MainWindow, *app.App) {
	t.Helper()
	a, err := app.NewWithLogger(test.NewApp(), app.DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)
	mw := NewMainWindow(a.FyneApp(), a)
	t.Cleanup(func() {
		mw.Window().Close()
		a.FyneApp().Quit()
	})
	return mw, a
}

func statusOf(a *app.App) (string, string) {
	state, _ := a.State().Status.State.Get()
	msg, _ := a.State().Status.Message.Get()
	return state, msg
}

func TestMainWindow_MalformedBodyNeverSends(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	mw, a := newTestWindow(t)

	mw.handleSend(domain.Draft{Method: "POST", URL: srv.URL, Body: `{"a":`})

	state, msg := statusOf(a)
	assert.Equal(t, model.StatusError, state)
	assert.Equal(t, "JSON data is malformed", msg)
	assert.NotNil(t, mw.Window().Canvas().Overlays().Top(), "alert should be showing")

	sending, _ := a.State().Request.Sending.Get()
	assert.False(t, sending)
	assert.Equal(t, int32(0), hits.Load())

	entries, err := a.Storage().GetHistory(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMainWindow_SendShowsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"q":"` + r.URL.Query().Get("q") + `"}`))
	}))
	defer srv.Close()

	mw, a := newTestWindow(t)

	mw.handleSend(domain.Draft{
		Method: "GET",
		URL:    srv.URL,
		Params: domain.Pairs{{Key: "q", Value: "burrow"}, {Key: "", Value: "dropped"}},
	})

	assert.Eventually(t, func() bool {
		state, _ := statusOf(a)
		return state == model.StatusDone
	}, 5*time.Second, 10*time.Millisecond)

	_, msg := statusOf(a)
	assert.Contains(t, msg, "200 OK")

	visible, _ := a.State().Response.Visible.Get()
	assert.True(t, visible)
	snap := a.State().Response.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, map[string]any{"q": "burrow"}, snap.Data)

	assert.Eventually(t, func() bool {
		return len(mw.historyPanel.VisibleEntries()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestMainWindow_TransportFailureIsShownAsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	mw, a := newTestWindow(t)
	mw.handleSend(domain.Draft{Method: "GET", URL: url})

	assert.Eventually(t, func() bool {
		state, _ := statusOf(a)
		return state == model.StatusError
	}, 5*time.Second, 10*time.Millisecond)

	snap := a.State().Response.Snapshot()
	require.NotNil(t, snap)
	assert.True(t, snap.Failed())
	assert.Equal(t, 0, snap.Status)
}

func TestMainWindow_CancelWithoutRequest(t *testing.T) {
	mw, _ := newTestWindow(t)
	assert.False(t, mw.CancelRequest())
}

func TestMainWindow_ClearResponse(t *testing.T) {
	mw, a := newTestWindow(t)
	a.State().Response.Apply(&domain.Snapshot{Status: 200, StatusText: "OK"})
	a.State().Status.Set(model.StatusDone, "200 OK in 1 ms")

	mw.ClearResponse()

	visible, _ := a.State().Response.Visible.Get()
	assert.False(t, visible)
	state, _ := statusOf(a)
	assert.Equal(t, model.StatusIdle, state)
}
