package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const bytesPerMB = 1024 * 1024

// Progress is a point-in-time snapshot of a running session, produced by the
// fetch worker and consumed by the UI thread.
type Progress struct {
	State      SessionState
	BytesDone  int64
	BytesTotal int64 // 0 when the total length is unknown
	Message    string
}

// Fraction returns the completed fraction in [0,1] and whether the total is
// known. Callers should render an indeterminate indicator when ok is false.
func (p Progress) Fraction() (fraction float64, ok bool) {
	if p.BytesTotal <= 0 {
		return 0, false
	}
	return float64(p.BytesDone) / float64(p.BytesTotal), true
}

// PercentText returns the completed percentage as text ("50.0%"), or an empty
// string when the total length is unknown.
func (p Progress) PercentText() string {
	f, ok := p.Fraction()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.1f%%", f*100)
}

// SizeText returns the transferred/total sizes as text ("1.0MB/2.0MB").
// An unknown total renders as "?".
func (p Progress) SizeText() string {
	done := formatMB(p.BytesDone)
	if p.BytesTotal <= 0 {
		return done + "MB/?"
	}
	return done + "MB/" + formatMB(p.BytesTotal) + "MB"
}

// formatMB renders a byte count in megabytes rounded to two decimals, with a
// trailing zero trimmed ("1.0", "1.25", "0.5").
func formatMB(bytes int64) string {
	mb := math.Round(float64(bytes)/bytesPerMB*100) / 100
	s := strconv.FormatFloat(mb, 'f', 2, 64)
	return strings.TrimSuffix(s, "0")
}
