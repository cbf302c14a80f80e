package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/rathdl/rath/internal/config"
	"github.com/rathdl/rath/internal/download"
	"github.com/rathdl/rath/internal/model"
)

// homeView is the download screen: URL input, format choice, destination
// line, the download button, and the progress area.
type homeView struct {
	root *RootUI

	urlEntry    *widget.Entry
	formatRadio *widget.RadioGroup
	destLabel   *widget.Label
	downloadBtn *widget.Button

	progressBar     *widget.ProgressBar
	progressSpinner *widget.ProgressBarInfinite
	statusLabel     *widget.Label
	progressGroup   *fyne.Container

	content *fyne.Container
}

func newHomeView(root *RootUI) *homeView {
	h := &homeView{root: root}

	h.urlEntry = widget.NewEntry()
	h.urlEntry.SetPlaceHolder(TextURLPlaceholder)
	h.urlEntry.Validator = validateURL
	h.urlEntry.OnSubmitted = func(string) {
		h.onDownload()
	}

	formatLabels := make([]string, 0, len(config.FormatOptions()))
	for _, f := range config.FormatOptions() {
		formatLabels = append(formatLabels, f.Label())
	}
	h.formatRadio = widget.NewRadioGroup(formatLabels, h.onFormatChanged)
	h.formatRadio.Horizontal = true

	h.destLabel = widget.NewLabel("")
	h.destLabel.Truncation = fyne.TextTruncateEllipsis

	h.downloadBtn = widget.NewButton(TextDownload, h.onDownload)
	h.downloadBtn.Importance = widget.HighImportance

	h.progressBar = widget.NewProgressBar()
	h.progressBar.Hide()
	h.progressSpinner = widget.NewProgressBarInfinite()
	h.progressSpinner.Stop()
	h.progressSpinner.Hide()
	h.statusLabel = widget.NewLabel("")
	h.statusLabel.Alignment = fyne.TextAlignCenter
	h.progressGroup = container.NewVBox(h.progressBar, h.progressSpinner, h.statusLabel)

	h.content = container.NewVBox(
		h.urlEntry,
		h.formatRadio,
		h.destLabel,
		h.downloadBtn,
		h.progressGroup,
	)

	h.refresh(root.cfg)
	return h
}

// refresh syncs the view with the settings record
func (h *homeView) refresh(cfg config.Config) {
	h.formatRadio.SetSelected(cfg.Format.Label())
	h.destLabel.SetText(TextSavingTo + cfg.Folder)
}

// onFormatChanged persists the video/audio toggle
func (h *homeView) onFormatChanged(selected string) {
	for _, f := range config.FormatOptions() {
		if f.Label() == selected && f != h.root.cfg.Format {
			cfg := h.root.cfg
			cfg.Format = f
			h.root.applyConfig(cfg)
			return
		}
	}
}

// onDownload submits the entered URL to the session controller
func (h *homeView) onDownload() {
	if h.root.submit == nil {
		return
	}

	input := strings.TrimSpace(h.urlEntry.Text)
	err := h.root.submit.Submit(input, h.root.cfg)
	switch {
	case errors.Is(err, download.ErrEmptyURL):
		h.urlEntry.SetValidationError(errors.New(TextEmptyURL))
	case errors.Is(err, download.ErrBusy):
		h.root.showNotification(TextBusy, widget.WarningImportance)
	case err == nil:
		h.urlEntry.SetValidationError(nil)
		h.root.hideNotification()
	}
}

// setBusy flips the download button between its idle and busy rendering
func (h *homeView) setBusy(busy bool) {
	if busy {
		h.downloadBtn.SetText(TextDownloading)
		h.downloadBtn.Importance = widget.MediumImportance
		h.downloadBtn.Disable()
	} else {
		h.downloadBtn.SetText(TextDownload)
		h.downloadBtn.Importance = widget.HighImportance
		h.downloadBtn.Enable()
	}
	h.downloadBtn.Refresh()
}

// showProgress renders one progress snapshot: a determinate bar when the
// total is known, an activity spinner otherwise.
func (h *homeView) showProgress(p model.Progress) {
	h.statusLabel.SetText(p.Message)

	if fraction, ok := p.Fraction(); ok {
		h.progressSpinner.Stop()
		h.progressSpinner.Hide()
		h.progressBar.SetValue(fraction)
		h.progressBar.Show()
		return
	}

	if p.State == model.StateFinished {
		h.progressSpinner.Stop()
		h.progressSpinner.Hide()
		h.progressBar.SetValue(1)
		h.progressBar.Show()
		return
	}

	h.progressBar.Hide()
	h.progressSpinner.Show()
	h.progressSpinner.Start()
}

// hideProgress clears the progress area after a terminal outcome
func (h *homeView) hideProgress() {
	h.progressSpinner.Stop()
	h.progressSpinner.Hide()
	h.progressBar.Hide()
	h.progressBar.SetValue(0)
	h.statusLabel.SetText("")
}

// validateURL accepts empty input (checked on submit) and otherwise requires
// an absolute http(s) URL.
func validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}
