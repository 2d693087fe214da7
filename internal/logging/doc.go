// Package logging assembles the structured slog loggers used across the
// tool.
//
// It centralizes level parsing and the console/JSON handler choice, and
// provides a no-op logger for tests and wiring code that cannot fail. Prefer
// these constructors over hand-rolled slog setup so every component emits
// logs with the same shape.
package logging
