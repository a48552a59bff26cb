package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/burrow/internal/ui.Version=1.2.3"
var Version = "dev"

type shortcutHelp struct{ action, key string }

var shortcutReference = []shortcutHelp{
	{"Send Request", "⌘ Return"},
	{"Cancel Request", "Escape"},
	{"Clear Response", "⌘ L"},
	{"Focus URL", "⌘ K"},
	{"Format JSON Body", "⌘ B"},
	{"Pretty View", "⌘ 1"},
	{"Raw View", "⌘ 2"},
	{"Preferences", "⌘ ,"},
}

// ShowAboutDialog displays information about Burrow.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("Burrow", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Compose HTTP requests and inspect JSON responses"),
		widget.NewLabel("Version "+Version),
		widget.NewSeparator(),
		widget.NewLabel("Built with Fyne, resty and Go"),
	)
	dialog.ShowCustom("About Burrow", "Close", content, parent)
}

// ShowShortcutDialog displays a reference of all keyboard shortcuts.
func ShowShortcutDialog(parent fyne.Window) {
	grid := container.NewGridWithColumns(2)
	for _, s := range shortcutReference {
		grid.Add(widget.NewLabel(s.action))
		grid.Add(widget.NewLabelWithStyle(s.key, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	}

	dialog.ShowCustom("Keyboard Shortcuts", "Close", container.NewVScroll(grid), parent)
}
