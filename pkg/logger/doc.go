// Package logger provides structured logging for followaudit.
//
// It wraps zerolog behind a small Logger interface:
//   - levels debug, info, warn, error (plus "disabled")
//   - child loggers carrying fields via WithField, WithFields and WithError
//   - colored console output on stderr, or an append-only log file
//   - a global instance set up once by Initialize
//
// Usage:
//
//	if err := logger.Initialize(&cfg.Logging); err != nil {
//	    return err
//	}
//	logger.WithField("cache_file", path).Debug("Loading follow list")
//
// Tests use NewTestLogger, which records every message for assertions, or
// NewNopLogger when output does not matter.
package logger
