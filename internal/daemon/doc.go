// Package daemon runs the background merge service and enforces
// single-instance execution via a lock file in the log directory.
package daemon
