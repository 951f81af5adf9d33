// Package logging constructs the slog loggers used across the sidecar tool.
//
// Loggers are built from explicit Options or directly from application
// config. Two output formats are supported: a console text handler for
// interactive use and a JSON handler with normalized field names for log
// collection. Output can fan out to stdout/stderr and a log file at once.
package logging
