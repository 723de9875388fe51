// Package logging provides structured logging using Go's standard library log/slog.
// Logs are JSON by default, or key=value text for terminals. LoggerConfig implements the
// config Defaulter and Validator interfaces so it can be loaded from a [logging] section.
package logging
