package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/rathdl/rath/internal/config"
)

// View identifies one of the top-level screens
type View string

const (
	ViewHome     View = "home"
	ViewSettings View = "settings"
)

// Submitter accepts download requests. Implemented by the session controller.
type Submitter interface {
	Submit(url string, cfg config.Config) error
	Active() bool
}

// RootUI owns the main window: the navigation bar, the single active view,
// and the notification panel. It is the sink set the session controller
// drives; every sink call is marshaled onto the UI thread with fyne.Do.
type RootUI struct {
	app    fyne.App
	window fyne.Window
	store  *config.Store
	cfg    config.Config
	submit Submitter
	log    zerolog.Logger

	current View
	home    *homeView
	setting *settingsView
	content *fyne.Container

	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationContainer *fyne.Container
}

// NewRootUI creates and lays out the main UI. The submitter is attached
// afterwards with SetSubmitter since the controller needs the sinks first.
func NewRootUI(window fyne.Window, app fyne.App, store *config.Store, log zerolog.Logger) *RootUI {
	ui := &RootUI{
		app:    app,
		window: window,
		store:  store,
		cfg:    store.Load(),
		log:    log,
	}

	ui.setupUI()
	return ui
}

// SetSubmitter attaches the download controller
func (ui *RootUI) SetSubmitter(s Submitter) {
	ui.submit = s
}

// Config returns a snapshot of the current settings record
func (ui *RootUI) Config() config.Config {
	return ui.cfg
}

// setupUI creates the navigation bar, both views, and the notification panel
func (ui *RootUI) setupUI() {
	ui.home = newHomeView(ui)
	ui.setting = newSettingsView(ui)

	homeBtn := widget.NewButtonWithIcon("Home", theme.HomeIcon(), func() {
		ui.ShowView(ViewHome)
	})
	settingsBtn := widget.NewButtonWithIcon("Settings", theme.SettingsIcon(), func() {
		ui.ShowView(ViewSettings)
	})
	homeBtn.Importance = widget.LowImportance
	settingsBtn.Importance = widget.LowImportance
	navBar := container.NewHBox(homeBtn, settingsBtn)

	// Transient notice panel under the navigation bar, hidden until needed
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, nil, ui.notificationSpinner, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.content = container.NewStack(ui.home.content, ui.setting.content)

	top := container.NewVBox(navBar, widget.NewSeparator(), ui.notificationContainer)
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.content))

	ui.ShowView(ViewHome)
}

// ShowView swaps the active view. Exactly one view is visible at a time.
func (ui *RootUI) ShowView(v View) {
	ui.current = v
	switch v {
	case ViewSettings:
		ui.setting.reload(ui.cfg)
		ui.home.content.Hide()
		ui.setting.content.Show()
	default:
		ui.home.refresh(ui.cfg)
		ui.setting.content.Hide()
		ui.home.content.Show()
	}
	ui.content.Refresh()
}

// applyConfig persists a changed record and propagates it to the views and
// the theme.
func (ui *RootUI) applyConfig(cfg config.Config) {
	ui.cfg = cfg
	if err := ui.store.Save(cfg); err != nil {
		ui.log.Error().Err(err).Str("path", ui.store.Path()).Msg("save settings")
		ui.showNotification("Could not save settings: "+err.Error(), widget.DangerImportance)
		return
	}

	ui.app.Settings().SetTheme(NewAccentTheme(cfg.AccentColor))
	ui.home.refresh(cfg)
}

// showNotification displays a message in the notice panel. Must be called on
// the UI thread.
func (ui *RootUI) showNotification(message string, importance widget.Importance) {
	ui.notificationLabel.SetText(message)
	ui.notificationLabel.Importance = importance
	ui.notificationLabel.Refresh()
	ui.notificationContainer.Show()
}

// hideNotification hides the notice panel. Must be called on the UI thread.
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}
