// Package logging provides structured logging utilities for wifiaudit.
//
// # Overview
//
// This package wraps the standard library slog package with wifiaudit defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("wifiaudit", "v1.0.0", "")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("fetching clients", "endpoint", endpoint)
//	    slog.Debug("normalized clients", "count", len(rows))
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("wifiaudit", "v2.0.0", "debug")
//	logger.Info("export complete", "dir", dir)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug wifiaudit snapshot
//	LOG_LEVEL=error wifiaudit render --input raw.json
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "export complete",
//	    "module": "wifiaudit",
//	    "version": "v1.0.0",
//	    "clients": 42
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "source.(*HTTPSource).Fetch",
//	        "file": "http.go",
//	        "line": 71
//	    },
//	    "msg": "requesting clients",
//	    "module": "wifiaudit",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("wifiaudit", version, level)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("snapshot fetched",
//	    "endpoint", endpoint,
//	    "clients", len(raw),
//	    "duration", time.Since(start),
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("skipping record", "index", i) // Development/troubleshooting
//	slog.Info("artifact written")             // Normal operations
//	slog.Warn("fetch failed, continuing")     // Potential issues
//	slog.Error("export failed")               // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to write artifact",
//	    "error", err,
//	    "name", artifact.Name,
//	    "run_id", runID,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - command logging and logger initialization
//   - pkg/source - controller request logging
//   - pkg/snapshotter - pipeline stage logging
//   - pkg/exporter - artifact write logging
//
// All components share consistent logging format and configuration.
package logging
