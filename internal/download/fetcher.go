package download

import (
	"context"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/rathdl/rath/internal/model"
)

// progressInterval throttles yt-dlp progress callbacks
const progressInterval = 500 * time.Millisecond

// YTDLPFetcher adapts github.com/lrstanley/go-ytdlp to the Fetcher interface.
type YTDLPFetcher struct{}

// NewYTDLPFetcher creates the production fetcher
func NewYTDLPFetcher() *YTDLPFetcher {
	return &YTDLPFetcher{}
}

// Fetch runs a single yt-dlp download with the derived options, relaying
// structured progress events. Failures reported by yt-dlp come back wrapped
// in FetchError so the controller can classify them.
func (f *YTDLPFetcher) Fetch(ctx context.Context, url string, opts FetchOptions, progress func(model.Progress)) error {
	dl := ytdlp.New().
		Quiet().
		NoPlaylist().
		Output(opts.OutputTemplate).
		Format(opts.FormatSelector)

	if opts.MergeFormat != "" {
		dl = dl.MergeOutputFormat(opts.MergeFormat)
	}
	if opts.ExtractAudio {
		dl = dl.ExtractAudio().AudioFormat(opts.AudioCodec)
		if opts.AudioBitrate != "" {
			dl = dl.AudioQuality(opts.AudioBitrate + "K")
		}
	}
	if opts.TranscoderDir != "" {
		dl = dl.FFmpegLocation(opts.TranscoderDir)
	}

	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		progress(mapProgress(update))
	})

	if _, err := dl.Run(ctx, url); err != nil {
		return &FetchError{Err: err}
	}
	return nil
}

// mapProgress converts a yt-dlp progress event into the domain snapshot.
func mapProgress(update ytdlp.ProgressUpdate) model.Progress {
	p := model.Progress{
		State:      model.StateDownloading,
		BytesDone:  int64(update.DownloadedBytes),
		BytesTotal: int64(update.TotalBytes),
	}
	if update.Status == ytdlp.ProgressStatusFinished {
		p.State = model.StateFinished
	}
	return p
}
