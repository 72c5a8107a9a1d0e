// Package logging provides structured logging utilities for benchres.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every command logs the same way. It supports environment-based log level
// configuration, module/version context injection, and source location
// tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Non-fatal conditions such as ragged metrics left out of a table
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	logging.SetDefaultStructuredLoggerWithLevel("benchres", version, "debug")
//	slog.Info("processing", "files", len(paths))
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("benchres", "v1.0.0", "warn")
//
// # Environment Configuration
//
// When no explicit level is given, LOG_LEVEL controls verbosity:
//
//	LOG_LEVEL=debug benchres extract results.json
//
// # Output Format
//
// All logs are written to stderr in JSON format so they never mix with data
// written to stdout:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "WARN",
//	    "msg": "leaving out metric",
//	    "module": "benchres",
//	    "version": "v1.0.0",
//	    "field": "CLEANUP in Operations"
//	}
package logging
