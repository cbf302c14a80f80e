package model

// SessionState represents the lifecycle state of a download session
type SessionState string

const (
	// StateIdle means no session is running
	StateIdle SessionState = "Idle"

	// StateConnecting means a session was accepted and the fetch is starting
	StateConnecting SessionState = "Connecting"

	// StateDownloading means bytes are being transferred
	StateDownloading SessionState = "Downloading"

	// StateFinished means the session completed successfully
	StateFinished SessionState = "Finished"

	// StateErrored means the session ended with a failure
	StateErrored SessionState = "Errored"
)

// String returns the string representation of SessionState
func (s SessionState) String() string {
	return string(s)
}

// IsActive returns true while a session occupies the guard
func (s SessionState) IsActive() bool {
	return s == StateConnecting || s == StateDownloading
}

// IsTerminal returns true for the two terminal outcomes of a session
func (s SessionState) IsTerminal() bool {
	return s == StateFinished || s == StateErrored
}
