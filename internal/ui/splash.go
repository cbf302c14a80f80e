package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ShowSplash displays a borderless splash screen for SplashDuration, then
// closes it and invokes done on the UI thread. Drivers without splash
// support (mobile, test) skip straight to done.
func ShowSplash(app fyne.App, done func()) {
	drv, ok := app.Driver().(desktop.Driver)
	if !ok {
		done()
		return
	}

	splash := drv.CreateSplashWindow()

	icon := canvas.NewImageFromResource(theme.DownloadIcon())
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(96, 96))

	label := widget.NewLabel("Loading RATH")
	label.Alignment = fyne.TextAlignCenter

	splash.SetContent(container.NewVBox(icon, label))
	splash.Resize(fyne.NewSize(SplashWidth, SplashHeight))
	splash.CenterOnScreen()
	splash.Show()

	time.AfterFunc(SplashDuration, func() {
		fyne.Do(func() {
			splash.Close()
			done()
		})
	})
}
