package settings

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/burrow/internal/domain"
)

// TLSConfig is a widget for configuring certificate verification and
// client certificates for HTTPS requests
type TLSConfig struct {
	widget.BaseWidget

	skipVerify    *widget.Check
	certFile      *widget.Entry
	certFileBtn   *widget.Button
	clientCert    *widget.Entry
	clientCertBtn *widget.Button
	clientKey     *widget.Entry
	clientKeyBtn  *widget.Button

	container *fyne.Container
	window    fyne.Window // For file dialogs
}

// NewTLSConfig creates a new TLS configuration widget
func NewTLSConfig(window fyne.Window) *TLSConfig {
	t := &TLSConfig{
		window: window,
	}

	t.skipVerify = widget.NewCheck("Skip certificate verification (insecure)", func(bool) {
		t.updateFieldStates()
	})

	// CA Certificate
	t.certFile = widget.NewEntry()
	t.certFile.SetPlaceHolder("Path to CA certificate (optional)")
	t.certFileBtn = widget.NewButton("Browse", func() {
		t.showFileDialog("Select CA Certificate", t.certFile)
	})

	// Client Certificate (mTLS)
	t.clientCert = widget.NewEntry()
	t.clientCert.SetPlaceHolder("Path to client certificate (optional)")
	t.clientCertBtn = widget.NewButton("Browse", func() {
		t.showFileDialog("Select Client Certificate", t.clientCert)
	})

	// Client Key (mTLS)
	t.clientKey = widget.NewEntry()
	t.clientKey.SetPlaceHolder("Path to client key (optional)")
	t.clientKeyBtn = widget.NewButton("Browse", func() {
		t.showFileDialog("Select Client Key", t.clientKey)
	})

	t.buildLayout()
	t.updateFieldStates()

	t.ExtendBaseWidget(t)
	return t
}

func (t *TLSConfig) buildLayout() {
	caCertRow := container.NewBorder(nil, nil, nil, t.certFileBtn, t.certFile)
	clientCertRow := container.NewBorder(nil, nil, nil, t.clientCertBtn, t.clientCert)
	clientKeyRow := container.NewBorder(nil, nil, nil, t.clientKeyBtn, t.clientKey)

	t.container = container.NewVBox(
		t.skipVerify,
		widget.NewLabel("CA Certificate:"),
		caCertRow,
		widget.NewLabel("Client Certificate (mTLS):"),
		clientCertRow,
		widget.NewLabel("Client Key (mTLS):"),
		clientKeyRow,
	)
}

// showFileDialog opens a file picker dialog and sets the selected path to the entry
func (t *TLSConfig) showFileDialog(title string, entry *widget.Entry) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.window)
			return
		}
		if reader == nil {
			return // User cancelled
		}
		defer reader.Close()

		entry.SetText(reader.URI().Path())
	}, t.window)

	fd.SetFilter(storage.NewExtensionFileFilter([]string{".pem", ".crt", ".key", ".cert"}))
	fd.SetFileName(title)
	fd.Show()
}

// updateFieldStates disables the CA field while verification is skipped
func (t *TLSConfig) updateFieldStates() {
	if t.skipVerify.Checked {
		t.certFile.Disable()
		t.certFileBtn.Disable()
	} else {
		t.certFile.Enable()
		t.certFileBtn.Enable()
	}
}

// Apply copies the TLS fields of the widget into s
func (t *TLSConfig) Apply(s domain.ClientSettings) domain.ClientSettings {
	s.InsecureSkipVerify = t.skipVerify.Checked
	s.CACertFile = t.certFile.Text
	s.ClientCertFile = t.clientCert.Text
	s.ClientKeyFile = t.clientKey.Text
	return s
}

// SetConfig populates the widget from saved settings
func (t *TLSConfig) SetConfig(s domain.ClientSettings) {
	t.skipVerify.SetChecked(s.InsecureSkipVerify)
	t.certFile.SetText(s.CACertFile)
	t.clientCert.SetText(s.ClientCertFile)
	t.clientKey.SetText(s.ClientKeyFile)

	t.updateFieldStates()
}

// CreateRenderer implements the fyne.Widget interface
func (t *TLSConfig) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.container)
}
