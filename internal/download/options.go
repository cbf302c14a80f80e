package download

import (
	"path/filepath"

	"github.com/rathdl/rath/internal/config"
)

// Format selector expressions in yt-dlp filter syntax: best available stream
// capped at a height, preferring mp4/webm containers.
const (
	selectorBestMP4   = "best[ext=mp4]/best[ext=webm]/best"
	selector720p      = "best[height<=720]/best[ext=mp4]/best"
	selector480p      = "best[height<=480]/best[ext=mp4]/best"
	selector360p      = "best[height<=360]/best[ext=mp4]/best"
	selectorBestAudio = "bestaudio/best"
)

// OutputFileTemplate names the destination file after the media title; one
// file per request.
const OutputFileTemplate = "%(title)s.%(ext)s"

// Audio codecs requested from the post-extraction step
const (
	AudioCodecMP3  = "mp3"
	AudioCodecFLAC = "flac"
)

// MergeFormatMP4 forces the final video container
const MergeFormatMP4 = "mp4"

// FetchOptions is the options bundle handed to the media fetch service.
type FetchOptions struct {
	OutputTemplate string
	FormatSelector string
	MergeFormat    string // forced output container; empty for audio
	ExtractAudio   bool
	AudioCodec     string // mp3 or flac when ExtractAudio is set
	AudioBitrate   string // kbps for mp3; empty for lossless
	TranscoderDir  string // ffmpeg location; empty means PATH
}

// BuildFetchOptions derives the options bundle from a configuration
// snapshot. Pure: no filesystem or environment access; the controller stamps
// TranscoderDir and creates the destination folder at submit time.
func BuildFetchOptions(cfg config.Config) FetchOptions {
	opts := FetchOptions{
		OutputTemplate: filepath.Join(cfg.Folder, OutputFileTemplate),
	}

	if cfg.Format == config.FormatAudio {
		opts.FormatSelector = selectorBestAudio
		opts.ExtractAudio = true
		switch cfg.AudioQuality {
		case config.AudioFLAC:
			opts.AudioCodec = AudioCodecFLAC
		case config.AudioMP3320:
			opts.AudioCodec = AudioCodecMP3
			opts.AudioBitrate = "320"
		default:
			opts.AudioCodec = AudioCodecMP3
			opts.AudioBitrate = "192"
		}
		return opts
	}

	switch cfg.VideoQuality {
	case config.Video720p:
		opts.FormatSelector = selector720p
	case config.Video480p:
		opts.FormatSelector = selector480p
	case config.Video360p:
		opts.FormatSelector = selector360p
	default:
		opts.FormatSelector = selectorBestMP4
	}
	opts.MergeFormat = MergeFormatMP4
	return opts
}
