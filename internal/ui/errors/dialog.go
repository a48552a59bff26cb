package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/burrow/internal/errors"
	"github.com/shhac/burrow/internal/ui/components"
)

// ShowError displays a simple error dialog with the error message.
func ShowError(err error, window fyne.Window) {
	if err == nil {
		return
	}

	dialog.ShowError(err, window)
}

// ShowSubmitError displays a dialog for a submission that was rejected
// before sending, with recovery suggestions and technical details. A
// malformed body shows the message "JSON data is malformed".
func ShowSubmitError(err error, window fyne.Window) dialog.Dialog {
	if err == nil {
		return nil
	}

	uiErr := apperrors.ClassifyError(err)

	// Build dialog content with word-wrapping labels to prevent horizontal expansion
	msgLabel := widget.NewLabel(uiErr.Message)
	msgLabel.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(msgLabel)

	if len(uiErr.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("You can:"))
		for _, suggestion := range uiErr.Recovery {
			lbl := widget.NewLabel("• " + suggestion)
			lbl.Wrapping = fyne.TextWrapWord
			content.Add(lbl)
		}
	}

	if uiErr.Details != "" && uiErr.Details != uiErr.Message {
		detailsLabel := widget.NewLabel(uiErr.Details)
		detailsLabel.Wrapping = fyne.TextWrapWord
		content.Add(components.NewSection("Technical Details", detailsLabel, false))
	}

	d := dialog.NewCustom(uiErr.Title, "OK", content, window)
	d.Resize(fyne.NewSize(420, 260))
	d.Show()
	return d
}
