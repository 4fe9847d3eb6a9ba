// Package logging assembles the structured slog loggers used across trisub.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// Attr helpers, plus a no-op logger for tests and wiring code that cannot
// fail. Prefer these constructors over hand-rolled slog setup so every
// component emits log lines with the same shape.
//
// The merge core never logs; only the workflow, daemon, and CLI layers hold
// loggers.
package logging
