// Package log provides the leveled, thread-safe logging engine of zlog.
//
// A Logger owns an immutable set of Options, a line formatter and a sink
// router with a single mutex. Every call is filtered by severity, decorated
// and written as one complete line.
//
// # Log Levels
//
//   - TRACE: scope enter/exit lines and very detailed diagnostics
//   - DEBUG: diagnostic information for development
//   - INFO: general informational messages
//   - WARN: potential problems, execution continues
//   - ERROR: failures
//   - FATAL: failures that usually precede termination
//
// Levels below WARN are written to the standard output writer, WARN and
// above to the error writer.
//
// # Output Format
//
//	[HH:MM:SS] : [INFO] : [main.go:42] : message
//
// The timestamp and the location are optional and are dropped together with
// their separator. With color enabled every bracketed segment is wrapped in
// its own ANSI escape sequence.
//
// # Example Usage
//
//	logger := log.New(log.Options{MinLevel: log.LevelInfo, Color: true})
//	logger.Info("answer={}", 42)
//	logger.Debug("hidden")                      // filtered
//	logger.LogAt(log.LevelWarn, log.Here(), "disk at {}%", 91)
//	logger.Var(log.Here(), "retries", retries)  // [DEBG] : (retries) = 3
//
// Messages use "{}" placeholders (see package format). A template that does
// not match its arguments panics at the call site.
package log
