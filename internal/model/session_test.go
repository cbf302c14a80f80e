package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStatePredicates(t *testing.T) {
	tests := []struct {
		state    SessionState
		active   bool
		terminal bool
	}{
		{StateIdle, false, false},
		{StateConnecting, true, false},
		{StateDownloading, true, false},
		{StateFinished, false, true},
		{StateErrored, false, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.active, tt.state.IsActive(), "IsActive for %s", tt.state)
		assert.Equal(t, tt.terminal, tt.state.IsTerminal(), "IsTerminal for %s", tt.state)
	}
}

func TestProgressFraction(t *testing.T) {
	p := Progress{State: StateDownloading, BytesDone: 1048576, BytesTotal: 2097152}

	f, ok := p.Fraction()
	assert.True(t, ok)
	assert.InDelta(t, 0.5, f, 1e-9)
}

func TestProgressFractionUnknownTotal(t *testing.T) {
	p := Progress{State: StateDownloading, BytesDone: 1048576}

	_, ok := p.Fraction()
	assert.False(t, ok)
	assert.Empty(t, p.PercentText())
}

func TestProgressSizeText(t *testing.T) {
	tests := []struct {
		name string
		p    Progress
		want string
	}{
		{"halfway", Progress{BytesDone: 1048576, BytesTotal: 2097152}, "1.0MB/2.0MB"},
		{"two decimals kept", Progress{BytesDone: 1310720, BytesTotal: 2097152}, "1.25MB/2.0MB"},
		{"unknown total", Progress{BytesDone: 524288}, "0.5MB/?"},
		{"zero", Progress{}, "0.0MB/?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.SizeText())
		})
	}
}

func TestProgressPercentText(t *testing.T) {
	p := Progress{BytesDone: 1048576, BytesTotal: 2097152}
	assert.Equal(t, "50.0%", p.PercentText())
}
