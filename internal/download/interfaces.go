package download

import (
	"context"

	"github.com/rathdl/rath/internal/model"
)

// Fetcher performs a single retrieval, invoking the progress callback with
// structured events until it returns. Implementations must wrap failures
// reported by the fetch library in FetchError.
type Fetcher interface {
	Fetch(ctx context.Context, url string, opts FetchOptions, progress func(model.Progress)) error
}

// ProgressSink receives progress snapshots for the active session.
type ProgressSink interface {
	UpdateProgress(p model.Progress)
	HideProgress()
}

// BusySink reflects whether a session currently holds the guard, driving the
// action control's label and enabled state.
type BusySink interface {
	SetBusy(busy bool)
}

// Notifier shows transient user-facing notices.
type Notifier interface {
	Info(message string)
	Error(message string)
}

// UI bundles the sinks the controller drives. Implementations are called
// from the session worker and must marshal onto the UI thread themselves.
type UI interface {
	ProgressSink
	BusySink
	Notifier
}
