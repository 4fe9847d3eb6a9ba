// Package subtitle defines the timed-span model shared across trisub and the
// SRT codec that moves tracks in and out of it.
//
// A Span is one caption: a display index, a start and end offset at
// millisecond resolution, and the caption text. Parsing always returns spans
// sorted by start time so downstream consumers can rely on the ordering
// invariant; the index carried on each span is presentational only and is
// reassigned whenever a track is serialized.
package subtitle
