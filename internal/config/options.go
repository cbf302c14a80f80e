package config

// FormatOptions returns the selectable output kinds in display order
func FormatOptions() []Format {
	return []Format{FormatVideo, FormatAudio}
}

// Label returns the display label for a format choice
func (f Format) Label() string {
	switch f {
	case FormatAudio:
		return "Audio (MP3/FLAC)"
	default:
		return "Video"
	}
}

// VideoQualityOptions returns the selectable video presets in display order
func VideoQualityOptions() []VideoQuality {
	return []VideoQuality{VideoBestMP4, Video720p, Video480p, Video360p}
}

// Label returns the display label for a video quality preset
func (q VideoQuality) Label() string {
	switch q {
	case Video720p:
		return "HD 720p"
	case Video480p:
		return "480p"
	case Video360p:
		return "360p"
	default:
		return "Best quality MP4"
	}
}

// AudioQualityOptions returns the selectable audio presets in display order
func AudioQualityOptions() []AudioQuality {
	return []AudioQuality{AudioMP3192, AudioMP3320, AudioFLAC}
}

// Label returns the display label for an audio quality preset
func (q AudioQuality) Label() string {
	switch q {
	case AudioMP3320:
		return "MP3 320kbps (high quality)"
	case AudioFLAC:
		return "FLAC (lossless)"
	default:
		return "MP3 192kbps (standard)"
	}
}

// AccentColorOptions returns the accent palette offered in Settings
func AccentColorOptions() []string {
	return []string{
		DefaultAccentColor, // orange
		"#1976D2",          // blue
		"#2EA043",          // green
		"#9C27B0",          // purple
		"#E53935",          // red
	}
}
