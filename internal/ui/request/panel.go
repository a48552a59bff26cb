package request

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/burrow/internal/composer"
	"github.com/shhac/burrow/internal/domain"
	"github.com/shhac/burrow/internal/model"
	"github.com/shhac/burrow/internal/ui/components"
)

// Tab indexes of the request panel
const (
	TabParams = iota
	TabHeaders
	TabBody
)

// RequestPanel is the request form: method, URL, query parameter rows,
// header rows and a JSON body editor.
type RequestPanel struct {
	widget.BaseWidget

	state *model.RequestState

	methodSelect *widget.Select
	urlEntry     *widget.Entry
	sendBtn      *widget.Button

	params  *components.KeyValueList
	headers *components.KeyValueList

	bodyEditor *widget.Entry
	formatBtn  *widget.Button
	bodyHint   *widget.Label

	tabs *container.AppTabs

	logger *slog.Logger

	onSend func(draft domain.Draft)
}

// NewRequestPanel creates a new request panel
func NewRequestPanel(state *model.RequestState, logger *slog.Logger) *RequestPanel {
	p := &RequestPanel{
		state:  state,
		logger: logger,
	}

	p.methodSelect = widget.NewSelect(domain.Methods, func(method string) {
		_ = p.state.Method.Set(method)
	})
	method, _ := state.Method.Get()
	p.methodSelect.Selected = method

	p.urlEntry = widget.NewEntry()
	p.urlEntry.SetPlaceHolder("https://api.example.com/resource")
	p.urlEntry.Bind(state.URL)
	p.urlEntry.OnSubmitted = func(string) {
		p.handleSend()
	}

	p.sendBtn = widget.NewButtonWithIcon("Send", theme.MailSendIcon(), func() {
		p.handleSend()
	})
	p.sendBtn.Importance = widget.HighImportance

	p.params = components.NewKeyValueList("Add Param", "name", "value")
	p.headers = components.NewKeyValueList("Add Header", "Header-Name", "value")

	// Multiline JSON editor bound to state.Body
	p.bodyEditor = widget.NewMultiLineEntry()
	p.bodyEditor.SetPlaceHolder(`{"field": "value"}`)
	p.bodyEditor.TextStyle = fyne.TextStyle{Monospace: true}
	p.bodyEditor.Wrapping = fyne.TextWrapWord
	p.bodyEditor.Bind(state.Body)

	p.bodyHint = widget.NewLabel("")
	p.bodyHint.Importance = widget.WarningImportance

	p.formatBtn = widget.NewButtonWithIcon("Format", theme.DocumentIcon(), func() {
		p.FormatBody()
	})

	p.tabs = container.NewAppTabs(
		container.NewTabItem("Query Params", p.params),
		container.NewTabItem("Headers", p.headers),
		container.NewTabItem("JSON", container.NewBorder(
			nil,
			container.NewHBox(p.formatBtn, p.bodyHint),
			nil, nil,
			p.bodyEditor,
		)),
	)

	// Keep the method select in step with programmatic changes
	state.Method.AddListener(binding.NewDataListener(func() {
		method, _ := state.Method.Get()
		if method != "" && p.methodSelect.Selected != method {
			p.methodSelect.SetSelected(method)
		}
	}))

	// Disable Send while a request is in flight
	state.Sending.AddListener(binding.NewDataListener(func() {
		sending, _ := state.Sending.Get()
		if sending {
			p.sendBtn.Disable()
			p.sendBtn.SetText("Sending…")
		} else {
			p.sendBtn.Enable()
			p.sendBtn.SetText("Send")
		}
	}))

	p.ExtendBaseWidget(p)
	return p
}

// SetOnSend sets the callback for when Send is clicked
func (p *RequestPanel) SetOnSend(fn func(draft domain.Draft)) {
	p.onSend = fn
}

func (p *RequestPanel) handleSend() {
	if p.onSend == nil || p.sendBtn.Disabled() {
		return
	}
	p.bodyHint.SetText("")
	p.onSend(p.Draft())
}

// TriggerSend submits the form as if Send was clicked.
func (p *RequestPanel) TriggerSend() {
	p.handleSend()
}

// Draft reads the current form. Rows with empty keys are included; they
// are dropped when the request is built.
func (p *RequestPanel) Draft() domain.Draft {
	method, _ := p.state.Method.Get()
	url, _ := p.state.URL.Get()
	body, _ := p.state.Body.Get()

	return domain.Draft{
		Method:  method,
		URL:     url,
		Params:  p.params.Pairs(),
		Headers: p.headers.Pairs(),
		Body:    body,
	}
}

// LoadDraft replaces the form contents, e.g. when replaying history.
func (p *RequestPanel) LoadDraft(d domain.Draft) {
	if d.Method == "" {
		d.Method = "GET"
	}
	_ = p.state.Method.Set(d.Method)
	_ = p.state.URL.Set(d.URL)
	_ = p.state.Body.Set(d.Body)
	p.params.SetPairs(d.Params)
	p.headers.SetPairs(d.Headers)
	p.bodyHint.SetText("")

	p.logger.Debug("draft loaded into request panel",
		slog.String("method", d.Method),
		slog.String("url", d.URL))
}

// FormatBody pretty-prints the body editor. Malformed JSON is left as is
// and flagged under the editor.
func (p *RequestPanel) FormatBody() {
	body, _ := p.state.Body.Get()
	formatted, ok := composer.FormatBody(body)
	if !ok {
		if body != "" {
			p.bodyHint.SetText("JSON data is malformed")
		}
		return
	}
	p.bodyHint.SetText("")
	_ = p.state.Body.Set(formatted)
}

// SelectTab shows the tab at index (TabParams, TabHeaders or TabBody).
func (p *RequestPanel) SelectTab(index int) {
	p.tabs.SelectIndex(index)
}

// FocusURL moves keyboard focus to the URL entry.
func (p *RequestPanel) FocusURL() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(p.urlEntry); c != nil {
		c.Focus(p.urlEntry)
	}
}

// CreateRenderer implements fyne.Widget
func (p *RequestPanel) CreateRenderer() fyne.WidgetRenderer {
	topBar := container.NewBorder(nil, nil, p.methodSelect, p.sendBtn, p.urlEntry)

	content := container.NewBorder(
		container.NewVBox(topBar, widget.NewSeparator()),
		nil, nil, nil,
		p.tabs,
	)
	return widget.NewSimpleRenderer(content)
}
