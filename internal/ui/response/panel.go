package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/burrow/internal/domain"
	"github.com/shhac/burrow/internal/model"
	"github.com/shhac/burrow/internal/ui/components"
	"github.com/shhac/burrow/internal/ui/headers"
)

// ResponsePanel displays the last response with reactive binding to state.
// It stays hidden behind a placeholder until the first response arrives.
type ResponsePanel struct {
	widget.BaseWidget

	state   *model.ResponseState
	sending binding.Bool

	statusLabel *widget.Label
	timeLabel   *widget.Label
	sizeLabel   *widget.Label
	headers     *headers.Panel

	viewToggle    *components.ViewToggle
	filterEntry   *widget.Entry
	filterHint    *widget.Label
	rawDisplay    *ReadOnlyEntry
	prettyDisplay *widget.RichText
	prettyScroll  *container.Scroll
	bodyStack     *fyne.Container

	loadingBar *widget.ProgressBarInfinite

	// Container for switching between placeholder and response
	contentContainer *fyne.Container
	placeholder      fyne.CanvasObject
	responseContent  fyne.CanvasObject
}

// NewResponsePanel creates a new response panel bound to the application
// state. sending drives the loading bar.
func NewResponsePanel(state *model.ResponseState, sending binding.Bool) *ResponsePanel {
	p := &ResponsePanel{
		state:   state,
		sending: sending,
	}
	p.ExtendBaseWidget(p)
	p.initializeComponents()
	p.setupBindings()
	return p
}

func (p *ResponsePanel) initializeComponents() {
	p.statusLabel = widget.NewLabel("")
	p.statusLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.timeLabel = widget.NewLabel("")
	p.sizeLabel = widget.NewLabel("")

	p.headers = headers.NewPanel()

	p.rawDisplay = NewReadOnlyMultiLineEntry()

	p.prettyDisplay = widget.NewRichText()
	p.prettyDisplay.Wrapping = fyne.TextWrapWord

	p.prettyScroll = container.NewVScroll(p.prettyDisplay)
	p.bodyStack = container.NewStack(p.prettyScroll)

	p.viewToggle = components.NewViewToggle("Pretty", "Raw")
	p.viewToggle.SetOnModeChange(p.setView)

	p.filterEntry = widget.NewEntry()
	p.filterEntry.SetPlaceHolder("Filter, e.g. data.items.#.id")
	p.filterEntry.OnChanged = p.setFilter

	p.filterHint = widget.NewLabel("No match")
	p.filterHint.Importance = widget.WarningImportance
	p.filterHint.Hide()

	p.loadingBar = widget.NewProgressBarInfinite()
	p.loadingBar.Stop()
	p.loadingBar.Hide()

	summary := container.NewHBox(
		p.statusLabel,
		widget.NewSeparator(),
		p.timeLabel,
		widget.NewSeparator(),
		p.sizeLabel,
	)

	bodyToolbar := container.NewBorder(nil, nil, p.viewToggle, p.filterHint, p.filterEntry)
	body := container.NewBorder(bodyToolbar, nil, nil, nil, p.bodyStack)

	split := container.NewVSplit(
		components.NewSection("Response Headers", p.headers, true),
		body,
	)
	split.SetOffset(0.3)

	p.responseContent = container.NewBorder(
		container.NewVBox(widget.NewLabel("Response"), summary, widget.NewSeparator()),
		nil, nil, nil,
		split,
	)

	hint := widget.NewLabel("Send a request to see the response here.")
	hint.Importance = widget.LowImportance
	hint.Alignment = fyne.TextAlignCenter
	p.placeholder = container.NewCenter(hint)

	p.contentContainer = container.NewStack(p.placeholder)
}

func (p *ResponsePanel) setupBindings() {
	p.statusLabel.Bind(binding.NewSprintf("Status: %s", p.state.Status))
	p.timeLabel.Bind(binding.NewSprintf("Time: %s", p.state.Duration))
	p.sizeLabel.Bind(binding.NewSprintf("Size: %s", p.state.Size))

	p.rawDisplay.Bind(p.state.Body)

	p.state.Body.AddListener(binding.NewDataListener(func() {
		body, _ := p.state.Body.Get()
		p.prettyDisplay.Segments = p.bodySegments(body)
		p.prettyDisplay.Refresh()
	}))

	p.state.Headers.AddListener(binding.NewDataListener(func() {
		items, _ := p.state.Headers.Get()
		pairs := make(domain.Pairs, 0, len(items))
		for _, item := range items {
			if kv, ok := item.(domain.KeyValue); ok {
				pairs = append(pairs, kv)
			}
		}
		p.headers.SetHeaders(pairs)
	}))

	p.state.Visible.AddListener(binding.NewDataListener(func() {
		visible, _ := p.state.Visible.Get()
		if visible {
			p.showResponse()
		} else {
			p.showPlaceholder()
		}
	}))

	p.state.Status.AddListener(binding.NewDataListener(p.updateStatusImportance))

	if p.sending != nil {
		p.sending.AddListener(binding.NewDataListener(func() {
			loading, _ := p.sending.Get()
			if loading {
				p.loadingBar.Start()
				p.loadingBar.Show()
			} else {
				p.loadingBar.Stop()
				p.loadingBar.Hide()
			}
		}))
	}
}

// bodySegments colors JSON and leaves other text plain.
func (p *ResponsePanel) bodySegments(body string) []widget.RichTextSegment {
	snap := p.state.Snapshot()
	if snap == nil || snap.Failed() {
		return plainSegments(body)
	}
	// Filter output is always JSON
	if filter, _ := p.state.Filter.Get(); filter == "" {
		if _, isText := snap.Data.(string); isText {
			return plainSegments(body)
		}
	}
	return highlightJSON(body)
}

func (p *ResponsePanel) updateStatusImportance() {
	snap := p.state.Snapshot()
	switch {
	case snap == nil:
		p.statusLabel.Importance = widget.MediumImportance
	case snap.Failed() || snap.Status >= 400:
		p.statusLabel.Importance = widget.DangerImportance
	case snap.Status >= 300:
		p.statusLabel.Importance = widget.WarningImportance
	default:
		p.statusLabel.Importance = widget.SuccessImportance
	}
	p.statusLabel.Refresh()
}

func (p *ResponsePanel) setView(mode string) {
	_ = p.state.View.Set(mode)
	p.state.Refresh()

	if mode == model.ViewRaw {
		p.bodyStack.Objects = []fyne.CanvasObject{p.rawDisplay}
	} else {
		p.bodyStack.Objects = []fyne.CanvasObject{p.prettyScroll}
	}
	p.bodyStack.Refresh()
}

func (p *ResponsePanel) setFilter(path string) {
	_ = p.state.Filter.Set(path)
	if p.state.Refresh() {
		p.filterHint.Hide()
	} else {
		p.filterHint.Show()
	}
}

func (p *ResponsePanel) showResponse() {
	p.contentContainer.Objects = []fyne.CanvasObject{p.responseContent}
	p.contentContainer.Refresh()
}

func (p *ResponsePanel) showPlaceholder() {
	p.contentContainer.Objects = []fyne.CanvasObject{p.placeholder}
	p.contentContainer.Refresh()
}

// ShowingResponse reports whether the response section is visible.
func (p *ResponsePanel) ShowingResponse() bool {
	return len(p.contentContainer.Objects) == 1 && p.contentContainer.Objects[0] == p.responseContent
}

// SetView switches the body between "pretty" and "raw".
func (p *ResponsePanel) SetView(mode string) {
	p.viewToggle.SetMode(mode)
}

// ClearResponse hides the response section and resets the filter.
func (p *ResponsePanel) ClearResponse() {
	p.filterEntry.SetText("")
	p.state.Clear()
}

// CreateRenderer implements fyne.Widget.
func (p *ResponsePanel) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(
		nil,
		p.loadingBar,
		nil,
		nil,
		p.contentContainer,
	)

	return widget.NewSimpleRenderer(content)
}

// MinSize implements fyne.Widget.
func (p *ResponsePanel) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}
