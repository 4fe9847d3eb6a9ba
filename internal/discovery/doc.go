// Package discovery locates subtitle pairs ready for merging.
//
// A pair is a source-language track and a translation track that share a
// base filename and differ only in their language suffix, e.g. Movie.zh.srt
// and Movie.en.srt. Scanning walks the configured media directories, pairs
// tracks by base name, and derives the merged output path; a fingerprint
// over both files lets the queue recognize work it has already done.
package discovery
