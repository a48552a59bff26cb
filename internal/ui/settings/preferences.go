package settings

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/burrow/internal/domain"
)

// Preference keys
const (
	PrefRequestTimeout  = "requestTimeout" // seconds, 0 for none
	PrefFollowRedirects = "followRedirects"
	PrefSkipVerify      = "skipVerify"
	PrefCACertFile      = "caCertFile"
	PrefClientCertFile  = "clientCertFile"
	PrefClientKeyFile   = "clientKeyFile"
	PrefTheme           = "appTheme"
)

// PreferencesCallbacks provides hooks for the preferences dialog to apply changes.
type PreferencesCallbacks struct {
	OnThemeChange          func(mode string) // Called with "system", "dark", or "light"
	OnClientSettingsChange func(domain.ClientSettings)
}

// LoadClientSettings overlays saved preferences on base. Keys that were
// never saved keep the value from base.
func LoadClientSettings(prefs fyne.Preferences, base domain.ClientSettings) domain.ClientSettings {
	s := base
	secs := prefs.FloatWithFallback(PrefRequestTimeout, base.Timeout.Seconds())
	if secs >= 0 {
		s.Timeout = time.Duration(secs * float64(time.Second))
	}
	s.FollowRedirects = prefs.BoolWithFallback(PrefFollowRedirects, base.FollowRedirects)
	s.InsecureSkipVerify = prefs.BoolWithFallback(PrefSkipVerify, base.InsecureSkipVerify)
	s.CACertFile = prefs.StringWithFallback(PrefCACertFile, base.CACertFile)
	s.ClientCertFile = prefs.StringWithFallback(PrefClientCertFile, base.ClientCertFile)
	s.ClientKeyFile = prefs.StringWithFallback(PrefClientKeyFile, base.ClientKeyFile)
	return s
}

// SaveClientSettings stores the user-editable client settings.
func SaveClientSettings(prefs fyne.Preferences, s domain.ClientSettings) {
	prefs.SetFloat(PrefRequestTimeout, s.Timeout.Seconds())
	prefs.SetBool(PrefFollowRedirects, s.FollowRedirects)
	prefs.SetBool(PrefSkipVerify, s.InsecureSkipVerify)
	prefs.SetString(PrefCACertFile, s.CACertFile)
	prefs.SetString(PrefClientCertFile, s.ClientCertFile)
	prefs.SetString(PrefClientKeyFile, s.ClientKeyFile)
}

// ParseTimeout reads the timeout entry. Blank means no timeout.
func ParseTimeout(text string) (time.Duration, bool) {
	if text == "" {
		return 0, true
	}
	val, err := strconv.ParseFloat(text, 64)
	if err != nil || val < 0 {
		return 0, false
	}
	return time.Duration(val * float64(time.Second)), true
}

// ShowPreferencesDialog displays the unified preferences dialog with
// General, TLS and Appearance tabs.
func ShowPreferencesDialog(a fyne.App, window fyne.Window, current domain.ClientSettings, callbacks PreferencesCallbacks) {
	prefs := a.Preferences()

	// --- General tab ---

	timeoutEntry := widget.NewEntry()
	timeoutEntry.SetPlaceHolder("0 = wait indefinitely")
	timeoutEntry.SetText(strconv.FormatFloat(current.Timeout.Seconds(), 'f', -1, 64))

	followCheck := widget.NewCheck("Follow redirects", nil)
	followCheck.SetChecked(current.FollowRedirects)

	generalTab := container.NewTabItem("General", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Request Timeout (seconds)", timeoutEntry),
		),
		followCheck,
	))

	// --- TLS tab ---

	tlsConfig := NewTLSConfig(window)
	tlsConfig.SetConfig(current)
	tlsTab := container.NewTabItem("TLS", tlsConfig)

	// --- Appearance tab ---

	themeSelector := widget.NewSelect(
		[]string{"System Default", "Light", "Dark"},
		nil,
	)

	savedTheme := prefs.StringWithFallback(PrefTheme, "system")
	switch savedTheme {
	case "dark":
		themeSelector.SetSelected("Dark")
	case "light":
		themeSelector.SetSelected("Light")
	default:
		themeSelector.SetSelected("System Default")
	}

	appearanceTab := container.NewTabItem("Appearance", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Theme", themeSelector),
		),
	))

	// --- Build dialog ---

	tabs := container.NewAppTabs(generalTab, tlsTab, appearanceTab)

	dlg := dialog.NewCustomConfirm("Preferences", "Save", "Cancel", tabs, func(save bool) {
		if !save {
			return
		}

		updated := current
		if timeout, ok := ParseTimeout(timeoutEntry.Text); ok {
			updated.Timeout = timeout
		}
		updated.FollowRedirects = followCheck.Checked
		updated = tlsConfig.Apply(updated)

		SaveClientSettings(prefs, updated)
		if callbacks.OnClientSettingsChange != nil {
			callbacks.OnClientSettingsChange(updated)
		}

		// Save and apply theme
		var mode string
		switch themeSelector.Selected {
		case "Dark":
			mode = "dark"
		case "Light":
			mode = "light"
		default:
			mode = "system"
		}
		prefs.SetString(PrefTheme, mode)
		if callbacks.OnThemeChange != nil {
			callbacks.OnThemeChange(mode)
		}
	}, window)

	dlg.Resize(fyne.NewSize(520, 420))
	dlg.Show()
}
