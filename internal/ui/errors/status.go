package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/burrow/internal/model"
)

// StatusBar displays the state of the last submission with a shape-changing
// icon indicator. Each state uses a distinct icon shape for accessibility
// (not color-only):
//   - Idle: empty radio button (circle outline)
//   - Sending: view-refresh icon (circular arrows)
//   - Done: confirm icon (checkmark)
//   - Error: error icon (X shape)
type StatusBar struct {
	widget.BaseWidget

	state       *model.StatusState
	statusLabel *widget.Label
	indicator   *widget.Icon
}

// NewStatusBar creates a new status bar bound to the given status state.
func NewStatusBar(state *model.StatusState) *StatusBar {
	label := widget.NewLabel("Ready")
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:       state,
		statusLabel: label,
		indicator:   widget.NewIcon(theme.RadioButtonIcon()),
	}
	s.ExtendBaseWidget(s)

	state.State.AddListener(binding.NewDataListener(s.updateStatus))
	state.Message.AddListener(binding.NewDataListener(s.updateStatus))

	s.updateStatus()

	return s
}

// updateStatus refreshes the status bar based on current state.
func (s *StatusBar) updateStatus() {
	stateStr, _ := s.state.State.Get()
	message, _ := s.state.Message.Get()

	var (
		icon     fyne.Resource
		fallback string
	)
	switch stateStr {
	case model.StatusIdle:
		icon, fallback = theme.RadioButtonIcon(), "Ready"
	case model.StatusSending:
		icon, fallback = theme.ViewRefreshIcon(), "Sending..."
	case model.StatusDone:
		icon, fallback = theme.ConfirmIcon(), "Done"
	case model.StatusError:
		icon, fallback = theme.ErrorIcon(), "Request Failed"
	default:
		s.indicator.SetResource(theme.RadioButtonIcon())
		s.statusLabel.SetText("Unknown state")
		return
	}

	s.indicator.SetResource(icon)
	if message == "" {
		message = fallback
	}
	s.statusLabel.SetText(message)
}

// Text returns the label text, for tests.
func (s *StatusBar) Text() string {
	return s.statusLabel.Text
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(
		s.indicator,
		s.statusLabel,
	))
}

// SetState is a convenience method to update the status.
// State should be one of: "idle", "sending", "done", "error"
func (s *StatusBar) SetState(state string, message string) {
	s.state.Set(state, message)
	s.updateStatus()
}
