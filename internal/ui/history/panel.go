package history

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/burrow/internal/domain"
	"github.com/shhac/burrow/internal/render"
	"github.com/shhac/burrow/internal/storage"
)

const (
	historyLimit  = 100
	urlLabelRunes = 48
)

// HistoryPanel lists the requests sent this session, newest first.
// Selecting a row loads its draft back into the form; Replay sends it again.
type HistoryPanel struct {
	widget.BaseWidget

	storage storage.Repository
	logger  *slog.Logger
	window  fyne.Window

	historyList binding.UntypedList
	listWidget  *widget.List
	clearButton *widget.Button
	statusLabel *widget.Label
	filterEntry *widget.Entry

	mu           sync.Mutex
	filterQuery  string
	statusFilter string // "", "success" or "error"
	allEntries   []domain.HistoryEntry

	onReplay func(entry domain.HistoryEntry)
	onSelect func(entry domain.HistoryEntry)

	content *fyne.Container
}

// NewHistoryPanel creates a history panel backed by repo. list receives
// the filtered entries and may be shared with application state.
func NewHistoryPanel(list binding.UntypedList, repo storage.Repository, logger *slog.Logger, window fyne.Window) *HistoryPanel {
	if list == nil {
		list = binding.NewUntypedList()
	}
	p := &HistoryPanel{
		storage:     repo,
		logger:      logger,
		window:      window,
		historyList: list,
	}

	p.ExtendBaseWidget(p)
	p.buildUI()
	p.Reload()

	return p
}

func (p *HistoryPanel) buildUI() {
	p.statusLabel = widget.NewLabel("History (0)")

	p.clearButton = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), p.handleClearAll)

	p.filterEntry = widget.NewEntry()
	p.filterEntry.SetPlaceHolder("Filter by method, URL or status...")
	p.filterEntry.OnChanged = func(query string) {
		p.mu.Lock()
		p.filterQuery = strings.ToLower(strings.TrimSpace(query))
		p.mu.Unlock()
		p.applyFilter()
	}

	statusSelect := widget.NewSelect([]string{"All", "Success", "Error"}, func(selected string) {
		p.mu.Lock()
		switch selected {
		case "Success":
			p.statusFilter = "success"
		case "Error":
			p.statusFilter = "error"
		default:
			p.statusFilter = ""
		}
		p.mu.Unlock()
		p.applyFilter()
	})
	statusSelect.SetSelected("All")

	p.listWidget = widget.NewListWithData(
		p.historyList,
		func() fyne.CanvasObject {
			methodLabel := widget.NewLabel("")
			methodLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
			urlLabel := widget.NewLabel("")
			urlLabel.Truncation = fyne.TextTruncateEllipsis
			outcomeLabel := widget.NewLabel("")
			timeLabel := widget.NewLabel("")
			timeLabel.Importance = widget.LowImportance
			replayButton := widget.NewButtonWithIcon("", theme.MediaReplayIcon(), nil)
			deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)

			return container.NewBorder(
				nil,
				nil,
				nil,
				container.NewHBox(replayButton, deleteButton),
				container.NewVBox(
					container.NewBorder(nil, nil, methodLabel, nil, urlLabel),
					container.NewHBox(outcomeLabel, timeLabel),
				),
			)
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			val, err := item.(binding.Untyped).Get()
			if err != nil {
				p.logger.Error("failed to get history entry", slog.Any("error", err))
				return
			}
			entry, ok := val.(domain.HistoryEntry)
			if !ok {
				p.logger.Error("invalid history entry type")
				return
			}

			border := obj.(*fyne.Container)
			centerBox := border.Objects[0].(*fyne.Container)
			rightBox := border.Objects[1].(*fyne.Container)
			topRow := centerBox.Objects[0].(*fyne.Container)
			bottomRow := centerBox.Objects[1].(*fyne.Container)

			urlLabel := topRow.Objects[0].(*widget.Label)
			methodLabel := topRow.Objects[1].(*widget.Label)
			outcomeLabel := bottomRow.Objects[0].(*widget.Label)
			timeLabel := bottomRow.Objects[1].(*widget.Label)
			replayButton := rightBox.Objects[0].(*widget.Button)
			deleteButton := rightBox.Objects[1].(*widget.Button)

			methodLabel.SetText(entry.Draft.Method)
			urlLabel.SetText(shortURL(entry.Draft.URL))
			outcomeLabel.SetText(formatOutcome(entry))
			if entry.Outcome() == "success" {
				outcomeLabel.Importance = widget.SuccessImportance
			} else {
				outcomeLabel.Importance = widget.DangerImportance
			}
			outcomeLabel.Refresh()
			timeLabel.SetText(entry.Timestamp.Format("15:04:05"))

			replayButton.OnTapped = func() {
				if p.onReplay != nil {
					p.onReplay(entry)
				}
			}

			entryID := entry.ID
			deleteButton.OnTapped = func() {
				if err := p.DeleteEntry(entryID); err != nil {
					p.logger.Error("failed to delete history entry", slog.Any("error", err))
				}
			}
		},
	)

	p.listWidget.OnSelected = func(id widget.ListItemID) {
		defer p.listWidget.UnselectAll()
		if p.onSelect == nil {
			return
		}
		entry, ok := p.entryAt(id)
		if ok {
			p.onSelect(entry)
		}
	}

	headerRow := container.NewBorder(nil, nil, p.statusLabel, p.clearButton, nil)
	filterRow := container.NewBorder(nil, nil, nil, statusSelect, p.filterEntry)

	p.content = container.NewBorder(
		container.NewVBox(headerRow, filterRow),
		nil,
		nil,
		nil,
		p.listWidget,
	)
}

// CreateRenderer implements the fyne.Widget interface
func (p *HistoryPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// Reload re-reads history from storage and applies the active filter.
// Must be called on the UI goroutine.
func (p *HistoryPanel) Reload() {
	entries, err := p.storage.GetHistory(historyLimit)
	if err != nil {
		p.logger.Error("failed to load history", slog.Any("error", err))
		p.statusLabel.SetText("History (error)")
		return
	}

	p.mu.Lock()
	p.allEntries = entries
	p.mu.Unlock()
	p.applyFilter()
	p.logger.Debug("history refreshed", slog.Int("count", len(entries)))
}

func (p *HistoryPanel) applyFilter() {
	p.mu.Lock()
	entries := make([]domain.HistoryEntry, len(p.allEntries))
	copy(entries, p.allEntries)
	query, status := p.filterQuery, p.statusFilter
	p.mu.Unlock()

	filtered := filterEntries(entries, query, status)

	items := make([]any, len(filtered))
	for i, entry := range filtered {
		items[i] = entry
	}
	if err := p.historyList.Set(items); err != nil {
		p.logger.Error("failed to set history list", slog.Any("error", err))
		return
	}

	if query != "" || status != "" {
		p.statusLabel.SetText(fmt.Sprintf("History (%d of %d)", len(filtered), len(entries)))
	} else {
		p.statusLabel.SetText(fmt.Sprintf("History (%d)", len(entries)))
	}
}

// filterEntries keeps entries whose outcome matches status (when set) and
// whose method, URL, status code or error contains query.
func filterEntries(entries []domain.HistoryEntry, query, status string) []domain.HistoryEntry {
	var out []domain.HistoryEntry
	for _, entry := range entries {
		if status != "" && entry.Outcome() != status {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(strings.Join([]string{
				entry.Draft.Method,
				entry.Draft.URL,
				fmt.Sprint(entry.Status),
				entry.Error,
			}, " "))
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		out = append(out, entry)
	}
	return out
}

func (p *HistoryPanel) entryAt(id widget.ListItemID) (domain.HistoryEntry, bool) {
	item, err := p.historyList.GetItem(id)
	if err != nil {
		p.logger.Error("failed to get history item", slog.Any("error", err))
		return domain.HistoryEntry{}, false
	}
	v, err := item.(binding.Untyped).Get()
	if err != nil {
		return domain.HistoryEntry{}, false
	}
	entry, ok := v.(domain.HistoryEntry)
	return entry, ok
}

// SetOnSelect sets the callback for loading an entry into the form without sending.
func (p *HistoryPanel) SetOnSelect(fn func(entry domain.HistoryEntry)) {
	p.onSelect = fn
}

// SetOnReplay sets the callback for sending an entry again.
func (p *HistoryPanel) SetOnReplay(fn func(entry domain.HistoryEntry)) {
	p.onReplay = fn
}

// SetFilter sets the text filter as if typed by the user.
func (p *HistoryPanel) SetFilter(query string) {
	p.filterEntry.SetText(query)
}

// VisibleEntries returns the entries currently shown.
func (p *HistoryPanel) VisibleEntries() []domain.HistoryEntry {
	items, _ := p.historyList.Get()
	out := make([]domain.HistoryEntry, 0, len(items))
	for _, it := range items {
		if e, ok := it.(domain.HistoryEntry); ok {
			out = append(out, e)
		}
	}
	return out
}

// DeleteEntry removes one entry and reloads the list.
func (p *HistoryPanel) DeleteEntry(id string) error {
	if err := p.storage.DeleteHistoryEntry(id); err != nil {
		return err
	}
	p.Reload()
	return nil
}

// ClearHistory removes every entry without asking.
func (p *HistoryPanel) ClearHistory() error {
	if err := p.storage.ClearHistory(); err != nil {
		return err
	}
	p.Reload()
	p.logger.Info("history cleared")
	return nil
}

func (p *HistoryPanel) handleClearAll() {
	dialog.ShowConfirm("Clear History",
		"Remove every request from this session's history?",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := p.ClearHistory(); err != nil {
				p.logger.Error("failed to clear history", slog.Any("error", err))
			}
		},
		p.window,
	)
}

// formatOutcome renders "200 OK · 12 ms" or the transport error title.
func formatOutcome(e domain.HistoryEntry) string {
	if e.Status == 0 {
		if e.Error != "" {
			return "✗ " + e.Error
		}
		return "✗ no response"
	}
	return fmt.Sprintf("%d · %s", e.Status, render.FormatElapsed(e.Elapsed))
}

// shortURL drops the scheme and shortens long URLs for the list row.
func shortURL(u string) string {
	u = strings.TrimPrefix(strings.TrimPrefix(u, "https://"), "http://")
	r := []rune(u)
	if len(r) > urlLabelRunes {
		return string(r[:urlLabelRunes-1]) + "…"
	}
	return u
}
