// Package logging assembles structured slog loggers and formatting helpers used
// across wordcloud.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so pipeline code can tag log
// lines with the run id and stage. Loggers write to stderr by default so
// stdout stays reserved for the ranked words and the HTML cloud. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
