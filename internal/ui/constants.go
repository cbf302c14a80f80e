package ui

import "time"

// Window geometry
const (
	WindowWidth  = 560
	WindowHeight = 460

	SplashWidth  = 320
	SplashHeight = 220
)

// SplashDuration is how long the splash screen stays up before the main view
const SplashDuration = 1500 * time.Millisecond

// Home view texts
const (
	TextDownload       = "Download"
	TextDownloading    = "Downloading…"
	TextURLPlaceholder = "Paste a video link"
	TextEmptyURL       = "Please enter a URL"
	TextBusy           = "A download is already in progress"
	TextSavingTo       = "Saving to: "
)

// Settings view texts
const (
	TextSettingsSaved    = "Settings saved."
	TextTranscoderFound  = "FFmpeg: found"
	TextTranscoderAbsent = "FFmpeg: not found (conversion features unavailable)"
)

const defaultAccentHex = "#FF6B35"
