package headers

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/burrow/internal/domain"
	"github.com/shhac/burrow/internal/ui/components"
)

// valueMaxRunes is where long header values are cut off; hover shows the rest.
const valueMaxRunes = 60

// Panel shows response headers as read-only label/value pairs, one row per
// header in the order they were received.
type Panel struct {
	widget.BaseWidget

	keys  binding.StringList
	vals  binding.StringList
	list  *widget.List
	title *widget.Label
}

// NewPanel creates an empty headers panel.
func NewPanel() *Panel {
	p := &Panel{
		keys:  binding.NewStringList(),
		vals:  binding.NewStringList(),
		title: widget.NewLabel("Headers"),
	}
	p.title.TextStyle = fyne.TextStyle{Bold: true}

	p.list = widget.NewList(
		func() int {
			return p.keys.Length()
		},
		func() fyne.CanvasObject {
			// Template row: key label and value label side by side
			key := widget.NewLabel("")
			key.TextStyle = fyne.TextStyle{Bold: true}
			key.Truncation = fyne.TextTruncateEllipsis
			return container.NewGridWithColumns(2, key, components.NewHintLabel("", valueMaxRunes))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			grid := obj.(*fyne.Container)
			keyLabel := grid.Objects[0].(*widget.Label)
			valLabel := grid.Objects[1].(*components.HintLabel)

			key, _ := p.keys.GetValue(id)
			val, _ := p.vals.GetValue(id)

			keyLabel.SetText(key)
			valLabel.SetText(val)
		},
	)

	p.ExtendBaseWidget(p)
	return p
}

// SetHeaders replaces the displayed headers.
func (p *Panel) SetHeaders(headers domain.Pairs) {
	keys := make([]string, 0, len(headers))
	vals := make([]string, 0, len(headers))
	for _, kv := range headers {
		keys = append(keys, kv.Key)
		vals = append(vals, kv.Value)
	}

	_ = p.keys.Set(keys)
	_ = p.vals.Set(vals)

	p.title.SetText(fmt.Sprintf("Headers (%d)", len(headers)))
	p.list.Refresh()
}

// Clear removes all headers.
func (p *Panel) Clear() {
	p.SetHeaders(nil)
	p.title.SetText("Headers")
}

// Len returns the number of displayed header rows.
func (p *Panel) Len() int {
	return p.keys.Length()
}

// Row returns the label and value of the header row at index.
func (p *Panel) Row(index int) (string, string) {
	key, _ := p.keys.GetValue(index)
	val, _ := p.vals.GetValue(index)
	return key, val
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(
		container.NewVBox(p.title, widget.NewSeparator()),
		nil, nil, nil,
		p.list,
	)
	return widget.NewSimpleRenderer(content)
}
