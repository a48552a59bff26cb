package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ReadOnlyEntry is a monospace multi-line Entry that looks enabled and
// supports selection and copy, but rejects every edit.
type ReadOnlyEntry struct {
	widget.Entry
}

// NewReadOnlyMultiLineEntry creates the raw body view.
func NewReadOnlyMultiLineEntry() *ReadOnlyEntry {
	e := &ReadOnlyEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapBreak
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	return e
}

// TypedRune drops all character input.
func (e *ReadOnlyEntry) TypedRune(_ rune) {}

// TypedKey passes navigation keys through and drops everything else.
func (e *ReadOnlyEntry) TypedKey(key *fyne.KeyEvent) {
	if navigationKeys[key.Name] {
		e.Entry.TypedKey(key)
	}
}

var navigationKeys = map[fyne.KeyName]bool{
	fyne.KeyLeft:     true,
	fyne.KeyRight:    true,
	fyne.KeyUp:       true,
	fyne.KeyDown:     true,
	fyne.KeyHome:     true,
	fyne.KeyEnd:      true,
	fyne.KeyPageUp:   true,
	fyne.KeyPageDown: true,
}

// TypedShortcut allows copy and select-all only.
func (e *ReadOnlyEntry) TypedShortcut(shortcut fyne.Shortcut) {
	switch shortcut.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(shortcut)
	}
}
