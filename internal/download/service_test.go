package download

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rathdl/rath/internal/config"
	"github.com/rathdl/rath/internal/model"
)

// fakeFetcher emits canned progress events, then blocks until released with
// the error to return.
type fakeFetcher struct {
	calls   atomic.Int32
	emit    []model.Progress
	started chan struct{}
	release chan error
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		started: make(chan struct{}, 1),
		release: make(chan error),
	}
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string, _ FetchOptions, progress func(model.Progress)) error {
	f.calls.Add(1)
	for _, p := range f.emit {
		progress(p)
	}
	f.started <- struct{}{}
	return <-f.release
}

// panicFetcher simulates an unexpected failure escaping the fetch call.
type panicFetcher struct{}

func (panicFetcher) Fetch(context.Context, string, FetchOptions, func(model.Progress)) error {
	panic("boom")
}

// fakeUI records every sink call.
type fakeUI struct {
	mu       sync.Mutex
	progress []model.Progress
	busy     []bool
	infos    []string
	errs     []string
	hides    int
}

func (u *fakeUI) UpdateProgress(p model.Progress) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.progress = append(u.progress, p)
}

func (u *fakeUI) HideProgress() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.hides++
}

func (u *fakeUI) SetBusy(busy bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.busy = append(u.busy, busy)
}

func (u *fakeUI) Info(message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.infos = append(u.infos, message)
}

func (u *fakeUI) Error(message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.errs = append(u.errs, message)
}

func (u *fakeUI) progressCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.progress)
}

func (u *fakeUI) messages() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]string, 0, len(u.progress))
	for _, p := range u.progress {
		out = append(out, p.Message)
	}
	return out
}

func (u *fakeUI) snapshot() (busy []bool, infos, errs []string, hides int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]bool(nil), u.busy...),
		append([]string(nil), u.infos...),
		append([]string(nil), u.errs...),
		u.hides
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Folder = t.TempDir()
	return cfg
}

func waitIdle(t *testing.T, c *Controller) {
	t.Helper()
	require.Eventually(t, func() bool { return !c.Active() },
		time.Second, 5*time.Millisecond, "guard not released")
}

func TestSubmitEmptyURL(t *testing.T) {
	fetcher := newFakeFetcher()
	ui := &fakeUI{}
	ctrl := NewController(fetcher, ui, zerolog.Nop())

	err := ctrl.Submit("   ", testConfig(t))

	assert.ErrorIs(t, err, ErrEmptyURL)
	assert.False(t, ctrl.Active(), "empty URL must never acquire the guard")
	assert.Zero(t, fetcher.calls.Load(), "empty URL must never start a worker")
	busy, _, _, _ := ui.snapshot()
	assert.Empty(t, busy)
}

func TestSubmitWhileBusyIsRejected(t *testing.T) {
	fetcher := newFakeFetcher()
	ui := &fakeUI{}
	ctrl := NewController(fetcher, ui, zerolog.Nop())

	require.NoError(t, ctrl.Submit("https://example.com/watch?v=a", testConfig(t)))
	<-fetcher.started

	before := ui.progressCount()
	err := ctrl.Submit("https://example.com/watch?v=b", testConfig(t))

	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, int32(1), fetcher.calls.Load(), "rejected submit must not spawn a second worker")
	assert.Equal(t, before, ui.progressCount(), "rejected submit must not touch progress state")

	fetcher.release <- nil
	waitIdle(t, ctrl)
}

func TestGuardReleasedAfterEveryOutcome(t *testing.T) {
	outcomes := []error{
		nil,
		&FetchError{Err: errors.New("ERROR: ffmpeg not found")},
		&FetchError{Err: errors.New("ERROR: video unavailable")},
		errors.New("disk on fire"),
	}

	fetcher := newFakeFetcher()
	ui := &fakeUI{}
	ctrl := NewController(fetcher, ui, zerolog.Nop())
	cfg := testConfig(t)

	for _, outcome := range outcomes {
		require.NoError(t, ctrl.Submit("https://example.com/watch?v=x", cfg),
			"a fresh submit must be accepted after outcome %v", outcome)
		<-fetcher.started
		assert.True(t, ctrl.Active())
		fetcher.release <- outcome
		waitIdle(t, ctrl)
	}
}

func TestWorkerPanicReleasesGuard(t *testing.T) {
	ui := &fakeUI{}
	ctrl := NewController(panicFetcher{}, ui, zerolog.Nop())

	require.NoError(t, ctrl.Submit("https://example.com/watch?v=x", testConfig(t)))
	waitIdle(t, ctrl)

	_, _, errs, _ := ui.snapshot()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], NoticeUnexpected)
	assert.Contains(t, errs[0], "boom")
}

func TestSuccessResetsUI(t *testing.T) {
	fetcher := newFakeFetcher()
	ui := &fakeUI{}
	ctrl := NewController(fetcher, ui, zerolog.Nop())

	require.NoError(t, ctrl.Submit("https://example.com/watch?v=x", testConfig(t)))
	<-fetcher.started
	fetcher.release <- nil
	waitIdle(t, ctrl)

	busy, infos, errs, hides := ui.snapshot()
	assert.Equal(t, []bool{true, false}, busy)
	assert.Contains(t, infos, NoticeFinished)
	assert.Empty(t, errs)
	assert.Equal(t, 1, hides)
	assert.Contains(t, ui.messages(), MsgFinished)
}

func TestOutcomeNotices(t *testing.T) {
	tests := []struct {
		name       string
		outcome    error
		wantNotice string
	}{
		{"tool missing", &FetchError{Err: errors.New("ERROR: ffmpeg not found")}, NoticeToolMissing},
		{"download failure", &FetchError{Err: errors.New("ERROR: video unavailable")}, NoticeDownloadFail},
		{"unexpected", errors.New("disk on fire"), NoticeUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := newFakeFetcher()
			ui := &fakeUI{}
			ctrl := NewController(fetcher, ui, zerolog.Nop())

			require.NoError(t, ctrl.Submit("https://example.com/watch?v=x", testConfig(t)))
			<-fetcher.started
			fetcher.release <- tt.outcome
			waitIdle(t, ctrl)

			busy, _, errs, hides := ui.snapshot()
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0], tt.wantNotice)
			assert.Equal(t, []bool{true, false}, busy)
			assert.Equal(t, 1, hides)
		})
	}
}

func TestProgressRelayText(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.emit = []model.Progress{
		{State: model.StateDownloading, BytesDone: 1048576, BytesTotal: 2097152},
		{State: model.StateDownloading, BytesDone: 1048576},
		{State: model.StateFinished},
	}
	ui := &fakeUI{}
	ctrl := NewController(fetcher, ui, zerolog.Nop())

	require.NoError(t, ctrl.Submit("https://example.com/watch?v=x", testConfig(t)))
	<-fetcher.started
	fetcher.release <- nil
	waitIdle(t, ctrl)

	messages := ui.messages()
	assert.Contains(t, messages, MsgConnecting)
	assert.Contains(t, messages, MsgFetchingMeta)
	assert.Contains(t, messages, "50.0% (1.0MB/2.0MB)")
	assert.Contains(t, messages, "1.0MB/?", "unknown total renders without a percentage")
	assert.Contains(t, messages, MsgFinished)
}

func TestSubmitCreatesDestinationFolder(t *testing.T) {
	fetcher := newFakeFetcher()
	ui := &fakeUI{}
	ctrl := NewController(fetcher, ui, zerolog.Nop())

	cfg := config.Default()
	cfg.Folder = t.TempDir() + "/nested/downloads"

	require.NoError(t, ctrl.Submit("https://example.com/watch?v=x", cfg))
	<-fetcher.started
	fetcher.release <- nil
	waitIdle(t, ctrl)

	assert.DirExists(t, cfg.Folder)
}
