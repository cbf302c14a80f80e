package download

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rathdl/rath/internal/config"
	"github.com/rathdl/rath/internal/model"
	"github.com/rathdl/rath/internal/platform"
)

// Session status texts
const (
	MsgConnecting   = "Connecting…"
	MsgFetchingMeta = "Fetching metadata…"
	MsgFinished     = "Download finished ✓"
)

// Transient notices for terminal outcomes
const (
	NoticeFinished     = "Download completed."
	NoticeToolMissing  = "ERROR: FFmpeg is missing (post-processing)."
	NoticeDownloadFail = "ERROR: Download failed, check the link."
	NoticeUnexpected   = "ERROR: An unexpected error occurred."
)

// Controller owns the download session lifecycle: the single-permit guard,
// option derivation, the background worker, and delivery of exactly one
// terminal outcome per accepted request.
type Controller struct {
	active  atomic.Bool
	fetcher Fetcher
	ui      UI
	log     zerolog.Logger
}

// NewController creates a session controller driving the given sinks
func NewController(fetcher Fetcher, ui UI, log zerolog.Logger) *Controller {
	return &Controller{
		fetcher: fetcher,
		ui:      ui,
		log:     log,
	}
}

// Active reports whether a session currently holds the guard
func (c *Controller) Active() bool {
	return c.active.Load()
}

// Submit starts a download session for url using a snapshot of cfg. It
// returns ErrEmptyURL for blank input and ErrBusy while a session is active;
// nil means the request was accepted and its outcome will arrive through the
// UI sinks. An accepted request runs to completion; there is no cancellation.
func (c *Controller) Submit(url string, cfg config.Config) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyURL
	}

	// Single-permit guard: first submitter wins, concurrent submits are
	// dropped, never queued.
	if !c.active.CompareAndSwap(false, true) {
		c.log.Debug().Str("url", url).Msg("submit rejected, session active")
		return ErrBusy
	}

	id := uuid.NewString()
	c.log.Info().
		Str("session", id).
		Str("url", url).
		Str("format", string(cfg.Format)).
		Msg("download accepted")

	c.ui.SetBusy(true)
	c.ui.UpdateProgress(model.Progress{State: model.StateConnecting, Message: MsgConnecting})

	go c.run(id, url, cfg)
	return nil
}

// run is the session worker. The deferred finish releases the guard and
// resets the UI exactly once, whichever branch fires, including panics.
func (c *Controller) run(id, url string, cfg config.Config) {
	var err error

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in download worker: %v", r)
		}
		c.finish(id, err)
	}()

	if mkErr := platform.CreateDirectoryIfNotExists(cfg.Folder); mkErr != nil {
		err = fmt.Errorf("create destination folder: %w", mkErr)
		return
	}

	opts := BuildFetchOptions(cfg)
	opts.TranscoderDir = platform.TranscoderDir()

	c.ui.UpdateProgress(model.Progress{State: model.StateConnecting, Message: MsgFetchingMeta})

	err = c.fetcher.Fetch(context.Background(), url, opts, c.onProgress)
}

// onProgress relays fetch events to the progress sink with rendered
// percent/size text. Events arrive on the fetch library's own goroutine; the
// sink is responsible for marshaling onto the UI thread.
func (c *Controller) onProgress(p model.Progress) {
	if p.State == model.StateFinished {
		p.Message = MsgFinished
		c.ui.UpdateProgress(p)
		return
	}

	p.State = model.StateDownloading
	if percent := p.PercentText(); percent != "" {
		p.Message = percent + " (" + p.SizeText() + ")"
	} else {
		p.Message = p.SizeText()
	}
	c.ui.UpdateProgress(p)
}

// finish delivers the terminal outcome, resets the UI, and releases the
// guard.
func (c *Controller) finish(id string, err error) {
	if err == nil {
		c.log.Info().Str("session", id).Msg("download finished")
		c.ui.UpdateProgress(model.Progress{State: model.StateFinished, Message: MsgFinished})
		c.ui.Info(NoticeFinished)
	} else {
		c.log.Error().Str("session", id).Err(err).Msg("download failed")
		switch Classify(err) {
		case FailureToolMissing:
			c.ui.UpdateProgress(model.Progress{
				State:   model.StateErrored,
				Message: "Error: FFmpeg not found; required for post-processing.",
			})
			c.ui.Error(NoticeToolMissing)
		case FailureDownload:
			c.ui.UpdateProgress(model.Progress{
				State:   model.StateErrored,
				Message: "Download error: " + err.Error(),
			})
			c.ui.Error(NoticeDownloadFail)
		default:
			c.ui.UpdateProgress(model.Progress{
				State:   model.StateErrored,
				Message: "Unexpected error: " + err.Error(),
			})
			c.ui.Error(NoticeUnexpected + " " + err.Error())
		}
	}

	c.ui.HideProgress()
	c.ui.SetBusy(false)
	c.active.Store(false)
}
