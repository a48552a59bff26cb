package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/shhac/burrow/internal/model"
	"github.com/shhac/burrow/internal/ui/request"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	add := func(key fyne.KeyName, mod fyne.KeyModifier, name string, fn func()) {
		canvas.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: mod}, func(fyne.Shortcut) {
			w.logger.Debug("keyboard shortcut: " + name)
			fn()
		})
	}

	// Super is Cmd on macOS, Win elsewhere
	add(fyne.KeyReturn, fyne.KeyModifierSuper, "send request", w.requestPanel.TriggerSend)
	add(fyne.KeyL, fyne.KeyModifierSuper, "clear response", w.ClearResponse)
	add(fyne.KeyK, fyne.KeyModifierSuper, "focus url", w.requestPanel.FocusURL)
	add(fyne.KeyB, fyne.KeyModifierSuper, "format body", func() {
		w.requestPanel.SelectTab(request.TabBody)
		w.requestPanel.FormatBody()
	})
	add(fyne.Key1, fyne.KeyModifierSuper, "pretty view", func() { w.responsePanel.SetView(model.ViewPretty) })
	add(fyne.Key2, fyne.KeyModifierSuper, "raw view", func() { w.responsePanel.SetView(model.ViewRaw) })
	add(fyne.KeyComma, fyne.KeyModifierSuper, "preferences", w.showPreferences)

	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			w.logger.Debug("keyboard shortcut: escape (cancel request)")
			w.CancelRequest()
		}
	})
}
