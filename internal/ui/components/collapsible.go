package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NewSection wraps content in a single-item accordion, open or closed.
func NewSection(title string, content fyne.CanvasObject, open bool) *widget.Accordion {
	accordion := widget.NewAccordion(widget.NewAccordionItem(title, content))
	if open {
		accordion.Open(0)
	} else {
		accordion.Close(0)
	}
	return accordion
}
