// Package ui renders the application windows: the splash screen, the Home
// download view, and the Settings view. RootUI implements the sink
// interfaces the download controller drives; all widget mutation happens on
// the UI thread via fyne.Do.
package ui
