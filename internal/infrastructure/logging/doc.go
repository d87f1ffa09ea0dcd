// Package logging provides structured logging for Alert Console.
//
// It wraps log/slog with configuration-driven level, format (JSON or
// text), and output selection, and stamps every record with default
// service and version attributes. Plaintext credentials are never
// passed to the logger by any caller.
package logging
