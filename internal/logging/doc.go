// Package logging assembles structured slog loggers and formatting helpers used
// across isolang.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so commands can tag log lines
// with the invocation session ID. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// The CLI writes results to stdout, so every handler built here targets
// stderr or a file.
package logging
