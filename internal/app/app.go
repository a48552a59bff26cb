package app

import (
	"fmt"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/shhac/burrow/internal/client"
	"github.com/shhac/burrow/internal/composer"
	"github.com/shhac/burrow/internal/domain"
	"github.com/shhac/burrow/internal/logging"
	"github.com/shhac/burrow/internal/model"
	"github.com/shhac/burrow/internal/storage"
	uisettings "github.com/shhac/burrow/internal/ui/settings"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *Config
	logger   *slog.Logger
	storage  storage.Repository
	state    *model.ApplicationState
	composer *composer.Composer

	mu       sync.RWMutex
	settings domain.ClientSettings
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger(logging.Options{
		AppName: "burrow",
		Debug:   cfg.Debug,
		Path:    cfg.LogPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return NewWithLogger(fyneApp, cfg, logger)
}

// NewWithLogger is New with an existing logger, used by tests.
func NewWithLogger(fyneApp fyne.App, cfg *Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing Burrow application",
		slog.Bool("debug", cfg.Debug),
		slog.Duration("timeout", cfg.Request.Timeout),
	)

	settings := cfg.Request.ClientSettings()
	if fyneApp != nil {
		settings = uisettings.LoadClientSettings(fyneApp.Preferences(), settings)
	}

	sender, err := client.FromSettings(logger, settings)
	if err != nil {
		// Bad certificate paths in preferences should not stop the app
		logger.Warn("client settings rejected, using defaults", slog.Any("error", err))
		settings = cfg.Request.ClientSettings()
		settings.CACertFile, settings.ClientCertFile, settings.ClientKeyFile = "", "", ""
		sender = client.New(logger, client.WithUserAgent(settings.UserAgent))
	}

	repo := storage.NewMemoryRepository()

	a := &App{
		fyneApp:  fyneApp,
		config:   cfg,
		logger:   logger,
		storage:  repo,
		state:    model.NewApplicationState(),
		composer: composer.New(sender, repo, logger),
		settings: settings,
	}

	logger.Info("application initialized successfully")
	return a, nil
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// ApplyClientSettings rebuilds the HTTP client. Requests already in
// flight finish with the previous settings.
func (a *App) ApplyClientSettings(s domain.ClientSettings) error {
	sender, err := client.FromSettings(a.logger, s)
	if err != nil {
		return fmt.Errorf("apply client settings: %w", err)
	}

	a.mu.Lock()
	a.settings = s
	a.mu.Unlock()

	a.composer.SetSender(sender)
	a.logger.Info("client settings updated",
		slog.Duration("timeout", s.Timeout),
		slog.Bool("follow_redirects", s.FollowRedirects),
		slog.Bool("insecure", s.InsecureSkipVerify),
	)
	return nil
}

// ClientSettings returns the settings the current client was built from.
func (a *App) ClientSettings() domain.ClientSettings {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.settings
}

// Composer returns the request composer used by the request panel.
func (a *App) Composer() *composer.Composer {
	return a.composer
}

// State returns the application state for use by UI components.
func (a *App) State() *model.ApplicationState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Storage returns the history repository.
func (a *App) Storage() storage.Repository {
	return a.storage
}

// Config returns the loaded configuration.
func (a *App) Config() *Config {
	return a.config
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
