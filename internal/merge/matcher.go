package merge

import (
	"errors"
	"fmt"
	"time"

	"trisub/internal/subtitle"
)

// ErrUnsortedInput indicates a track violated the ascending-start invariant.
var ErrUnsortedInput = errors.New("track is not sorted by start time")

// ErrEmptyEnvelope indicates a span whose start is not strictly before its end.
var ErrEmptyEnvelope = errors.New("span has empty time envelope")

// Group is a maximal set of spans, from either track, whose time intervals
// transitively overlap. Start and End cover every absorbed span. At least one
// of Source and Target is non-empty; groups never overlap each other.
type Group struct {
	Start  time.Duration
	End    time.Duration
	Source []subtitle.Span
	Target []subtitle.Span
}

// Match groups source and target spans by interval overlap.
//
// Both tracks must be individually sorted by start time and every span must
// have start < end; violations fail the whole call rather than producing a
// silently wrong merge. Two spans overlap only when their intersection has
// non-zero duration, so spans that merely touch do not match. The sweep is
// O(len(source) + len(target)) and groups come out in ascending envelope
// order.
func Match(source, target []subtitle.Span) ([]Group, error) {
	if err := validateTrack("source", source); err != nil {
		return nil, err
	}
	if err := validateTrack("target", target); err != nil {
		return nil, err
	}

	var groups []Group
	i, j := 0, 0
	for i < len(source) || j < len(target) {
		group := Group{}

		// Seed with the earliest ungrouped span across both tracks.
		if takeSource(source, target, i, j) {
			group.Start, group.End = source[i].Start, source[i].End
			group.Source = append(group.Source, source[i])
			i++
		} else {
			group.Start, group.End = target[j].Start, target[j].End
			group.Target = append(group.Target, target[j])
			j++
		}

		// Absorb every span whose interval overlaps the running envelope.
		// Inputs are start-sorted, so once both cursors point past the
		// envelope no later span can reach back in.
		for {
			envelope := subtitle.Span{Start: group.Start, End: group.End}
			srcIn := i < len(source) && source[i].Overlaps(envelope)
			tgtIn := j < len(target) && target[j].Overlaps(envelope)
			if !srcIn && !tgtIn {
				break
			}
			if srcIn && (!tgtIn || takeSource(source, target, i, j)) {
				if source[i].End > group.End {
					group.End = source[i].End
				}
				group.Source = append(group.Source, source[i])
				i++
			} else {
				if target[j].End > group.End {
					group.End = target[j].End
				}
				group.Target = append(group.Target, target[j])
				j++
			}
		}

		groups = append(groups, group)
	}
	return groups, nil
}

// takeSource decides which cursor advances next: ascending start, then
// ascending end, with the source track winning a full tie. Both cursors are
// assumed in range unless the other track is exhausted.
func takeSource(source, target []subtitle.Span, i, j int) bool {
	if i >= len(source) {
		return false
	}
	if j >= len(target) {
		return true
	}
	s, t := source[i], target[j]
	if s.Start != t.Start {
		return s.Start < t.Start
	}
	if s.End != t.End {
		return s.End < t.End
	}
	return true
}

func validateTrack(name string, spans []subtitle.Span) error {
	for idx, span := range spans {
		if span.Duration() <= 0 {
			return fmt.Errorf("%s track span %d (%s --> %s): %w",
				name, idx+1,
				subtitle.FormatTimestamp(span.Start),
				subtitle.FormatTimestamp(span.End),
				ErrEmptyEnvelope)
		}
		if idx > 0 && spans[idx-1].Start > span.Start {
			return fmt.Errorf("%s track span %d starts before span %d: %w",
				name, idx+1, idx, ErrUnsortedInput)
		}
	}
	return nil
}
