package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/burrow/internal/domain"
)

// kvRow is one editable key/value row and the container that shows it.
type kvRow struct {
	key   *widget.Entry
	value *widget.Entry
	obj   *fyne.Container
}

// KeyValueList is an editable list of key/value rows, each with its own
// remove button. It is used for both query parameters and headers.
type KeyValueList struct {
	widget.BaseWidget

	keyHint   string
	valueHint string
	rows      []*kvRow
	listBox   *fyne.Container
	addButton *widget.Button
	container *fyne.Container

	onChange func()
}

// NewKeyValueList creates a list holding one empty row. addLabel is the
// text of the add button; the hints are entry placeholders.
func NewKeyValueList(addLabel, keyHint, valueHint string) *KeyValueList {
	l := &KeyValueList{
		keyHint:   keyHint,
		valueHint: valueHint,
	}

	keyLabel := widget.NewLabel("Key")
	keyLabel.TextStyle.Bold = true
	valLabel := widget.NewLabel("Value")
	valLabel.TextStyle.Bold = true
	headerGrid := container.NewGridWithColumns(2, keyLabel, valLabel)
	// Pad right side to match the space occupied by the remove button in data rows
	headerRow := container.NewBorder(nil, nil, nil, layout.NewSpacer(), headerGrid)

	l.listBox = container.NewVBox()
	l.addButton = widget.NewButtonWithIcon(addLabel, theme.ContentAddIcon(), func() {
		l.AddRow()
	})

	l.container = container.NewBorder(
		headerRow,
		container.NewHBox(l.addButton),
		nil,
		nil,
		container.NewVScroll(l.listBox),
	)

	l.AddRow()

	l.ExtendBaseWidget(l)
	return l
}

// CreateRenderer implements fyne.Widget
func (l *KeyValueList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.container)
}

// SetOnChange registers a callback fired when rows are added, removed or
// edited.
func (l *KeyValueList) SetOnChange(fn func()) {
	l.onChange = fn
}

func (l *KeyValueList) changed() {
	if l.onChange != nil {
		l.onChange()
	}
}

// AddRow appends one empty row.
func (l *KeyValueList) AddRow() {
	l.appendRow(domain.KeyValue{})
	l.listBox.Refresh()
	l.changed()
}

func (l *KeyValueList) appendRow(kv domain.KeyValue) {
	r := &kvRow{
		key:   widget.NewEntry(),
		value: widget.NewEntry(),
	}
	r.key.SetPlaceHolder(l.keyHint)
	r.value.SetPlaceHolder(l.valueHint)
	r.key.SetText(kv.Key)
	r.value.SetText(kv.Value)
	r.key.OnChanged = func(string) { l.changed() }
	r.value.OnChanged = func(string) { l.changed() }

	// The row's index shifts as others are removed, so look it up on tap.
	removeBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		l.RemoveRow(l.indexOf(r))
	})

	grid := container.NewGridWithColumns(2, r.key, r.value)
	r.obj = container.NewBorder(nil, nil, nil, removeBtn, grid)

	l.rows = append(l.rows, r)
	l.listBox.Add(r.obj)
}

func (l *KeyValueList) indexOf(r *kvRow) int {
	for i, row := range l.rows {
		if row == r {
			return i
		}
	}
	return -1
}

// RemoveRow deletes the row at index. Out-of-range indexes are ignored.
func (l *KeyValueList) RemoveRow(index int) {
	if index < 0 || index >= len(l.rows) {
		return
	}

	l.listBox.Remove(l.rows[index].obj)
	l.rows = append(l.rows[:index], l.rows[index+1:]...)
	l.listBox.Refresh()
	l.changed()
}

// Len returns the number of rows, including ones with empty keys.
func (l *KeyValueList) Len() int {
	return len(l.rows)
}

// Pairs returns every row in display order. Empty keys are kept; callers
// drop them when building a request.
func (l *KeyValueList) Pairs() domain.Pairs {
	out := make(domain.Pairs, 0, len(l.rows))
	for _, r := range l.rows {
		out = append(out, domain.KeyValue{Key: r.key.Text, Value: r.value.Text})
	}
	return out
}

// SetPairs replaces all rows. An empty list leaves one blank row.
func (l *KeyValueList) SetPairs(pairs domain.Pairs) {
	l.rows = nil
	l.listBox.RemoveAll()
	for _, kv := range pairs {
		l.appendRow(kv)
	}
	if len(l.rows) == 0 {
		l.appendRow(domain.KeyValue{})
	}
	l.listBox.Refresh()
	l.changed()
}

// SetRow overwrites the key and value of an existing row.
func (l *KeyValueList) SetRow(index int, kv domain.KeyValue) {
	if index < 0 || index >= len(l.rows) {
		return
	}
	l.rows[index].key.SetText(kv.Key)
	l.rows[index].value.SetText(kv.Value)
}

// removeButton returns the remove button of the row at index, for tests.
func (l *KeyValueList) removeButton(index int) *widget.Button {
	return l.rows[index].obj.Objects[1].(*widget.Button)
}
