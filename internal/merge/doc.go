// Package merge pairs two independently-timed subtitle tracks by time
// interval and builds the merged trilingual output.
//
// The matcher is a two-pointer sweep over both tracks: it seeds a group with
// the earliest ungrouped span and keeps absorbing spans from either track
// while their start falls inside the group's expanding envelope. That
// transitive closure is what keeps a sentence split differently by the two
// tracks inside a single group instead of fragmenting it across output spans.
// The builder then stacks [source, transliteration, target] text per group,
// calling the transliterator once per group so it sees full-sentence context.
//
// Both transforms are pure and deterministic; they never log and never touch
// I/O, so independent merges are safe to run concurrently without
// coordination.
package merge
