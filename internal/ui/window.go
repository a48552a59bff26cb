package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/shhac/burrow/internal/composer"
	"github.com/shhac/burrow/internal/domain"
	burrowerrors "github.com/shhac/burrow/internal/errors"
	"github.com/shhac/burrow/internal/model"
	"github.com/shhac/burrow/internal/render"
	"github.com/shhac/burrow/internal/storage"
	uierrors "github.com/shhac/burrow/internal/ui/errors"
	"github.com/shhac/burrow/internal/ui/history"
	"github.com/shhac/burrow/internal/ui/request"
	"github.com/shhac/burrow/internal/ui/response"
	"github.com/shhac/burrow/internal/ui/settings"
)

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	State() *model.ApplicationState
	Logger() *slog.Logger
	Composer() *composer.Composer
	Storage() storage.Repository
	ClientSettings() domain.ClientSettings
	ApplyClientSettings(s domain.ClientSettings) error
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	fyneApp fyne.App
	window  fyne.Window
	state   *model.ApplicationState
	logger  *slog.Logger
	app     AppController

	requestPanel  *request.RequestPanel
	responsePanel *response.ResponsePanel
	historyPanel  *history.HistoryPanel
	statusBar     *uierrors.StatusBar

	mu     sync.Mutex
	cancel context.CancelFunc // in-flight submission, nil when idle
}

// NewMainWindow creates the main window:
//   - Left side: session history
//   - Right side: request form (top), response (middle), status bar (bottom)
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("Burrow - HTTP Client")

	mw := &MainWindow{
		fyneApp: fyneApp,
		window:  window,
		state:   app.State(),
		logger:  app.Logger(),
		app:     app,
	}

	mw.requestPanel = request.NewRequestPanel(mw.state.Request, mw.logger)
	mw.responsePanel = response.NewResponsePanel(mw.state.Response, mw.state.Request.Sending)
	mw.historyPanel = history.NewHistoryPanel(mw.state.History, app.Storage(), mw.logger, window)
	mw.statusBar = uierrors.NewStatusBar(mw.state.Status)

	mw.wireCallbacks()
	mw.SetContent()
	mw.setupMainMenu()
	mw.setupKeyboardShortcuts()
	LoadThemePreference(fyneApp)

	window.Resize(fyne.NewSize(1200, 800))
	return mw
}

func (w *MainWindow) wireCallbacks() {
	w.requestPanel.SetOnSend(w.handleSend)

	w.historyPanel.SetOnSelect(func(entry domain.HistoryEntry) {
		w.requestPanel.LoadDraft(entry.Draft)
	})
	w.historyPanel.SetOnReplay(func(entry domain.HistoryEntry) {
		w.requestPanel.LoadDraft(entry.Draft)
		w.handleSend(entry.Draft)
	})
}

// handleSend submits a draft. A draft that fails validation or carries a
// malformed body is rejected here, before any network activity.
func (w *MainWindow) handleSend(draft domain.Draft) {
	if sending, _ := w.state.Request.Sending.Get(); sending {
		return
	}

	if _, err := composer.BuildRequest(draft); err != nil {
		w.logger.Info("request rejected", slog.Any("error", err))
		w.rejectDraft(err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()

	_ = w.state.Request.Sending.Set(true)
	w.state.Status.Set(model.StatusSending, fmt.Sprintf("%s %s", draft.Method, draft.Normalize().URL))

	go func() {
		snap, err := w.app.Composer().Submit(ctx, draft)
		fyne.Do(func() {
			w.finishSend(snap, err)
		})
	}()
}

func (w *MainWindow) rejectDraft(err error) {
	uiErr := burrowerrors.ClassifyError(err)
	w.state.Status.Set(model.StatusError, uiErr.Message)
	uierrors.ShowSubmitError(err, w.window)
}

// finishSend runs on the UI goroutine once a submission completes.
func (w *MainWindow) finishSend(snap *domain.Snapshot, err error) {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()
	_ = w.state.Request.Sending.Set(false)

	if err != nil {
		w.rejectDraft(err)
		return
	}

	w.state.Response.Apply(snap)
	w.historyPanel.Reload()

	if snap.Failed() {
		w.state.Status.Set(model.StatusError, snap.StatusText+": "+snap.Err)
		return
	}
	w.state.Status.Set(model.StatusDone,
		fmt.Sprintf("%s in %s", render.StatusLine(snap), render.FormatElapsed(snap.Elapsed)))
}

// CancelRequest aborts the in-flight submission, if any. The response
// panel then shows the cancellation as a failed request.
func (w *MainWindow) CancelRequest() bool {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		w.logger.Debug("no active request to cancel")
		return false
	}
	cancel()
	w.logger.Info("request cancelled by user")
	return true
}

// ClearResponse hides the response section and resets the status bar.
func (w *MainWindow) ClearResponse() {
	w.responsePanel.ClearResponse()
	w.state.Status.Set(model.StatusIdle, "")
}

func (w *MainWindow) showPreferences() {
	settings.ShowPreferencesDialog(w.fyneApp, w.window, w.app.ClientSettings(), settings.PreferencesCallbacks{
		OnThemeChange: func(mode string) {
			ApplyTheme(w.fyneApp, mode)
		},
		OnClientSettingsChange: func(s domain.ClientSettings) {
			if err := w.app.ApplyClientSettings(s); err != nil {
				w.logger.Warn("preferences rejected", slog.Any("error", err))
				uierrors.ShowError(err, w.window)
			}
		},
	})
}

func (w *MainWindow) setupMainMenu() {
	file := fyne.NewMenu("File",
		fyne.NewMenuItem("Send Request", w.requestPanel.TriggerSend),
		fyne.NewMenuItem("Clear Response", w.ClearResponse),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences...", w.showPreferences),
	)
	help := fyne.NewMenu("Help",
		fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
		fyne.NewMenuItem("About Burrow", func() { ShowAboutDialog(w.window) }),
	)
	w.window.SetMainMenu(fyne.NewMainMenu(file, help))
}

// SetContent builds and sets the main window layout.
//
//	┌─────────────────┬──────────────────────────────┐
//	│                 │      Request Panel           │
//	│  History        ├──────────────────────────────┤
//	│                 │      Response Panel          │
//	│                 ├──────────────────────────────┤
//	│                 │      Status Bar              │
//	└─────────────────┴──────────────────────────────┘
func (w *MainWindow) SetContent() {
	requestResponse := container.NewVSplit(w.requestPanel, w.responsePanel)
	requestResponse.SetOffset(0.4)

	rightPanel := container.NewBorder(nil, w.statusBar, nil, nil, requestResponse)

	mainSplit := container.NewHSplit(w.historyPanel, rightPanel)
	mainSplit.SetOffset(0.25)

	w.window.SetContent(mainSplit)
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
