package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/rathdl/rath/internal/config"
	"github.com/rathdl/rath/internal/platform"
)

// settingsView is the settings screen: destination folder, quality presets,
// accent color, transcoder status, and the save action.
type settingsView struct {
	root *RootUI

	folderEntry  *widget.Entry
	videoSelect  *widget.Select
	audioSelect  *widget.Select
	accentSelect *widget.Select

	transcoderLabel *widget.Label

	content *fyne.Container
}

func newSettingsView(root *RootUI) *settingsView {
	s := &settingsView{root: root}

	s.folderEntry = widget.NewEntry()
	browseBtn := widget.NewButton("Browse", s.onBrowse)
	folderRow := container.NewBorder(nil, nil, nil, browseBtn, s.folderEntry)

	s.videoSelect = widget.NewSelect(videoQualityLabels(), nil)
	s.audioSelect = widget.NewSelect(audioQualityLabels(), nil)
	s.accentSelect = widget.NewSelect(config.AccentColorOptions(), nil)

	s.transcoderLabel = widget.NewLabel("")

	openFolderBtn := widget.NewButton("Open Downloads Folder", s.onOpenFolder)
	saveBtn := widget.NewButton("Save", s.onSave)
	saveBtn.Importance = widget.HighImportance

	s.content = container.NewVBox(
		widget.NewLabel("Download Folder:"),
		folderRow,
		widget.NewLabel("Video Quality:"),
		s.videoSelect,
		widget.NewLabel("Audio Quality:"),
		s.audioSelect,
		widget.NewLabel("Accent Color:"),
		s.accentSelect,
		widget.NewSeparator(),
		s.transcoderLabel,
		container.NewHBox(openFolderBtn, saveBtn),
	)

	s.reload(root.cfg)
	return s
}

// reload syncs the widgets with the settings record and re-probes ffmpeg
func (s *settingsView) reload(cfg config.Config) {
	s.folderEntry.SetText(cfg.Folder)
	s.videoSelect.SetSelected(cfg.VideoQuality.Label())
	s.audioSelect.SetSelected(cfg.AudioQuality.Label())
	s.accentSelect.SetSelected(cfg.AccentColor)

	if platform.TranscoderAvailable() {
		s.transcoderLabel.SetText(TextTranscoderFound)
		s.transcoderLabel.Importance = widget.SuccessImportance
	} else {
		s.transcoderLabel.SetText(TextTranscoderAbsent)
		s.transcoderLabel.Importance = widget.WarningImportance
	}
	s.transcoderLabel.Refresh()
}

// onBrowse opens the system folder picker
func (s *settingsView) onBrowse() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		s.folderEntry.SetText(uri.Path())
	}, s.root.window)
}

// onOpenFolder opens the configured download folder in the file manager
func (s *settingsView) onOpenFolder() {
	folder := s.folderEntry.Text
	if folder == "" {
		folder = s.root.cfg.Folder
	}
	if err := platform.OpenFolder(folder); err != nil {
		s.root.showNotification("Could not open folder: "+err.Error(), widget.DangerImportance)
	}
}

// onSave collects the widget state into a record and persists it
func (s *settingsView) onSave() {
	cfg := s.root.cfg

	if folder := s.folderEntry.Text; folder != "" {
		cfg.Folder = folder
	}
	for _, q := range config.VideoQualityOptions() {
		if q.Label() == s.videoSelect.Selected {
			cfg.VideoQuality = q
		}
	}
	for _, q := range config.AudioQualityOptions() {
		if q.Label() == s.audioSelect.Selected {
			cfg.AudioQuality = q
		}
	}
	if s.accentSelect.Selected != "" {
		cfg.AccentColor = s.accentSelect.Selected
	}

	s.root.applyConfig(cfg)
	s.root.showNotification(TextSettingsSaved, widget.SuccessImportance)
}

func videoQualityLabels() []string {
	opts := config.VideoQualityOptions()
	labels := make([]string, 0, len(opts))
	for _, q := range opts {
		labels = append(labels, q.Label())
	}
	return labels
}

func audioQualityLabels() []string {
	opts := config.AudioQualityOptions()
	labels := make([]string, 0, len(opts))
	for _, q := range opts {
		labels = append(labels, q.Label())
	}
	return labels
}
