// Package logging provides structured logging for the fwlog tooling.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the decoder plumbing. Decoded capture text is data
// and goes to the output sink, never through this package; logging carries
// only diagnostics of the surrounding machinery (feeds, discovery, resyncs).
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (hex dumps, token scanning, resyncs)
//   - Info: Normal operations (feed connections, discovery results)
//   - Warn: Non-fatal issues (feed drops, retries)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Feed subscribed",
//	    zap.String("remote_addr", "192.168.1.100"),
//	    zap.String("feed", "bench-3"),
//	)
//
// # Configuration
//
// Logging is silent by default so that decoded output on stdout stays
// clean. Set the FWLOG_LOG_LEVEL environment variable (debug, info,
// warn, error) or call Initialize with an explicit level; diagnostics
// go to stderr:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
