package download

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyURL rejects a blank submission; no session is started and the
	// guard is untouched.
	ErrEmptyURL = errors.New("empty URL")

	// ErrBusy rejects a submission while a session is active; the request is
	// dropped, not queued.
	ErrBusy = errors.New("a download is already in progress")
)

// FetchError marks a failure reported by the media fetch library, as opposed
// to a programming or environment error.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return e.Err.Error() }

func (e *FetchError) Unwrap() error { return e.Err }

// FailureKind classifies terminal failures for user-facing reporting
type FailureKind int

const (
	// FailureToolMissing means the fetch failed because the transcode tool
	// could not be found.
	FailureToolMissing FailureKind = iota

	// FailureDownload covers all other failures reported by the fetch library.
	FailureDownload

	// FailureUnexpected covers everything else, including worker panics.
	FailureUnexpected
)

// Transcoder binaries sniffed in failure text. yt-dlp emits no structured
// "ffmpeg missing" signal, so the message substring is the only evidence.
var toolNames = []string{"ffmpeg", "ffprobe"}

// Classify maps a terminal error to its failure kind. Only fetch-library
// errors are eligible for the tool-missing and download classes.
func Classify(err error) FailureKind {
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		return FailureUnexpected
	}

	msg := strings.ToLower(fetchErr.Error())
	for _, name := range toolNames {
		if strings.Contains(msg, name) {
			return FailureToolMissing
		}
	}
	return FailureDownload
}
