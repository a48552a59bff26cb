package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ViewToggle is a horizontal radio switch between named views of the same
// content, e.g. Pretty/Raw for a response body. Modes are reported in
// lower case.
type ViewToggle struct {
	widget.BaseWidget

	modeSelect *widget.RadioGroup
	options    []string

	onModeChange func(mode string)
}

// NewViewToggle creates a toggle with the given options; the first one is
// selected.
func NewViewToggle(options ...string) *ViewToggle {
	v := &ViewToggle{options: options}

	v.modeSelect = widget.NewRadioGroup(options, func(selected string) {
		if selected == "" {
			return
		}
		if v.onModeChange != nil {
			v.onModeChange(strings.ToLower(selected))
		}
	})
	v.modeSelect.Horizontal = true
	v.modeSelect.Required = true
	if len(options) > 0 {
		v.modeSelect.Selected = options[0]
	}

	v.ExtendBaseWidget(v)
	return v
}

// SetOnModeChange sets the callback invoked when the mode changes.
func (v *ViewToggle) SetOnModeChange(fn func(mode string)) {
	v.onModeChange = fn
}

// SetMode selects the option matching mode, ignoring case. Selecting the
// current mode does nothing.
func (v *ViewToggle) SetMode(mode string) {
	if v.GetMode() == strings.ToLower(mode) {
		return
	}
	for _, opt := range v.options {
		if strings.EqualFold(opt, mode) {
			v.modeSelect.SetSelected(opt)
			return
		}
	}
}

// GetMode returns the selected mode in lower case.
func (v *ViewToggle) GetMode() string {
	if v.modeSelect.Selected == "" && len(v.options) > 0 {
		return strings.ToLower(v.options[0])
	}
	return strings.ToLower(v.modeSelect.Selected)
}

// CreateRenderer implements fyne.Widget.
func (v *ViewToggle) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.modeSelect)
}
