package model

import (
	"sync"

	"fyne.io/fyne/v2/data/binding"

	"github.com/shhac/burrow/internal/domain"
	"github.com/shhac/burrow/internal/render"
)

// Status bar states
const (
	StatusIdle    = "idle"
	StatusSending = "sending"
	StatusDone    = "done"
	StatusError   = "error"
)

// Body view modes of the response panel
const (
	ViewPretty = "pretty"
	ViewRaw    = "raw"
)

// ApplicationState represents the centralized application state with Fyne data bindings.
// All UI components bind to these values for reactive updates.
type ApplicationState struct {
	Request  *RequestState
	Response *ResponseState
	Status   *StatusState

	// Session history shown in the history panel
	History binding.UntypedList // []domain.HistoryEntry
}

// NewApplicationState creates a new ApplicationState with initialized bindings.
func NewApplicationState() *ApplicationState {
	return &ApplicationState{
		Request:  NewRequestState(),
		Response: NewResponseState(),
		Status:   NewStatusState(),
		History:  binding.NewUntypedList(),
	}
}

// RequestState represents the state of the request panel.
type RequestState struct {
	Method  binding.String
	URL     binding.String
	Body    binding.String // raw JSON editor text
	Sending binding.Bool   // a submission is in flight
}

// NewRequestState creates a new RequestState with initialized bindings.
func NewRequestState() *RequestState {
	method := binding.NewString()
	_ = method.Set("GET")

	return &RequestState{
		Method:  method,
		URL:     binding.NewString(),
		Body:    binding.NewString(),
		Sending: binding.NewBool(),
	}
}

// ResponseState represents the state of the response panel.
type ResponseState struct {
	Visible  binding.Bool        // false until the first response arrives
	Status   binding.String      // e.g. "200 OK"
	Duration binding.String      // e.g. "123 ms"
	Size     binding.String      // e.g. "1.2 kB"
	Body     binding.String      // body text for the current view and filter
	Error    binding.String      // transport error, empty on success
	Filter   binding.String      // gjson path applied to the body
	View     binding.String      // ViewPretty or ViewRaw
	Headers  binding.UntypedList // []domain.KeyValue

	mu       sync.RWMutex
	snapshot *domain.Snapshot
}

// NewResponseState creates a new ResponseState with initialized bindings.
func NewResponseState() *ResponseState {
	view := binding.NewString()
	_ = view.Set(ViewPretty)

	return &ResponseState{
		Visible:  binding.NewBool(),
		Status:   binding.NewString(),
		Duration: binding.NewString(),
		Size:     binding.NewString(),
		Body:     binding.NewString(),
		Error:    binding.NewString(),
		Filter:   binding.NewString(),
		View:     view,
		Headers:  binding.NewUntypedList(),
	}
}

// Apply publishes a snapshot to every response binding and makes the
// response section visible.
func (r *ResponseState) Apply(s *domain.Snapshot) {
	r.mu.Lock()
	r.snapshot = s
	r.mu.Unlock()

	_ = r.Status.Set(render.StatusLine(s))
	_ = r.Duration.Set(render.FormatElapsed(s.Elapsed))
	_ = r.Size.Set(render.FormatSize(s.Size))
	_ = r.Error.Set(s.Err)

	headers := make([]any, 0, len(s.Headers))
	for _, kv := range s.Headers {
		headers = append(headers, kv)
	}
	_ = r.Headers.Set(headers)

	r.Refresh()
	_ = r.Visible.Set(true)
}

// Refresh recomputes the body text from the current snapshot, view mode
// and filter. It reports false when the filter matched nothing.
func (r *ResponseState) Refresh() bool {
	snap := r.Snapshot()
	if snap == nil {
		_ = r.Body.Set("")
		return true
	}

	filter, _ := r.Filter.Get()
	if filter != "" {
		out, ok := render.Filter(snap, filter)
		_ = r.Body.Set(out)
		return ok
	}

	view, _ := r.View.Get()
	if view == ViewRaw {
		_ = r.Body.Set(render.RawText(snap))
	} else {
		_ = r.Body.Set(render.BodyText(snap))
	}
	return true
}

// Snapshot returns the snapshot currently on display, or nil.
func (r *ResponseState) Snapshot() *domain.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// Clear hides the response section and empties every binding.
func (r *ResponseState) Clear() {
	r.mu.Lock()
	r.snapshot = nil
	r.mu.Unlock()
	_ = r.Visible.Set(false)
	_ = r.Status.Set("")
	_ = r.Duration.Set("")
	_ = r.Size.Set("")
	_ = r.Body.Set("")
	_ = r.Error.Set("")
	_ = r.Headers.Set([]any{})
}

// StatusState backs the status bar.
// States: "idle", "sending", "done", "error"
type StatusState struct {
	State   binding.String
	Message binding.String
}

// NewStatusState creates a new StatusState with initialized bindings.
func NewStatusState() *StatusState {
	state := binding.NewString()
	_ = state.Set(StatusIdle)

	return &StatusState{
		State:   state,
		Message: binding.NewString(),
	}
}

// Set updates state and message together
func (s *StatusState) Set(state, message string) {
	_ = s.State.Set(state)
	_ = s.Message.Set(message)
}
