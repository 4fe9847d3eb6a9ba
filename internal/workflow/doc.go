// Package workflow drives the merge pipeline.
//
// The manager owns the scan -> enqueue -> merge loop: discovery finds
// subtitle pairs, the queue remembers which fingerprints have been handled,
// and each pending item runs through parse, interval matching, merge
// building, and an atomic write of the trilingual output. Items are
// processed one at a time, which is what guarantees at most one in-flight
// merge per pair. RunOnce performs a single pass for the CLI; Start runs the
// polling loop for the daemon.
package workflow
