package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/rathdl/rath/internal/model"
)

// The session controller calls these from its worker goroutine; fyne.Do
// marshals every mutation onto the UI thread.

// UpdateProgress relays a progress snapshot to the Home view
func (ui *RootUI) UpdateProgress(p model.Progress) {
	fyne.Do(func() {
		ui.home.showProgress(p)
	})
}

// HideProgress clears the Home view's progress indicators
func (ui *RootUI) HideProgress() {
	fyne.Do(func() {
		ui.home.hideProgress()
	})
}

// SetBusy flips the download button between idle and busy
func (ui *RootUI) SetBusy(busy bool) {
	fyne.Do(func() {
		ui.home.setBusy(busy)
	})
}

// Info shows a success notice and a system notification
func (ui *RootUI) Info(message string) {
	ui.app.SendNotification(&fyne.Notification{Title: "RATH", Content: message})
	fyne.Do(func() {
		ui.showNotification(message, widget.SuccessImportance)
	})
}

// Error shows a failure notice
func (ui *RootUI) Error(message string) {
	fyne.Do(func() {
		ui.showNotification(message, widget.DangerImportance)
	})
}
