package subtitle

import "time"

// Span is a single caption with timing at millisecond resolution.
//
// Index is a display ordinal, not an identity: it is reassigned when a track
// is written out and must not be used to correlate spans across tracks.
type Span struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// Duration returns the time the span is on screen.
func (s Span) Duration() time.Duration {
	return s.End - s.Start
}

// Overlaps reports whether two spans share a non-empty time intersection.
// Touching endpoints (a.End == b.Start) do not count.
func (s Span) Overlaps(other Span) bool {
	start := s.Start
	if other.Start > start {
		start = other.Start
	}
	end := s.End
	if other.End < end {
		end = other.End
	}
	return start < end
}
