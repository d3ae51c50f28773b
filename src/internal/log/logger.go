package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/maksimkurb/zlog/src/internal/format"
)

// AbortExitCode is the exit status used when an operation terminates the
// process (128 + SIGABRT).
const AbortExitCode = 134

// Options is the static logger configuration. It is copied by New and never
// changes afterwards.
type Options struct {
	// MinLevel is the lowest severity that is emitted.
	MinLevel Severity
	// Disabled suppresses all output.
	Disabled bool
	// Timestamps prefixes lines with [HH:MM:SS].
	Timestamps bool
	// Color wraps bracketed segments in ANSI escapes.
	Color bool
	// TraceDull paints scope trace labels gray.
	TraceDull bool
	// DebugMode enables assertions.
	DebugMode bool
	// TestMode turns terminating operations into log-only operations.
	TestMode bool
	// ForceStdErr sends every line to Stderr.
	ForceStdErr bool

	// Stdout and Stderr default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Exit defaults to os.Exit.
	Exit func(code int)
}

// Logger is the shared logging context. It is safe for concurrent use.
type Logger struct {
	opts      Options
	formatter *Formatter
	sink      *Sink
}

// New creates a Logger from opts.
func New(opts Options) *Logger {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Exit == nil {
		opts.Exit = os.Exit
	}

	return &Logger{
		opts:      opts,
		formatter: NewFormatter(opts.Timestamps, opts.Color, opts.Clock),
		sink:      NewSink(opts.Stdout, opts.Stderr, opts.ForceStdErr),
	}
}

// Options returns a copy of the logger options.
func (l *Logger) Options() Options {
	return l.opts
}

// Enabled reports whether a line at level would be written.
func (l *Logger) Enabled(level Severity) bool {
	return ShouldEmit(level, l.opts.MinLevel, l.opts.Disabled)
}

// DebugMode reports whether assertions are active.
func (l *Logger) DebugMode() bool {
	return l.opts.DebugMode
}

// TestMode reports whether termination is suppressed.
func (l *Logger) TestMode() bool {
	return l.opts.TestMode
}

// Paint applies style to text according to the color option.
func (l *Logger) Paint(text string, style Style) string {
	return l.formatter.Paint(text, style)
}

// Emit filters, renders and writes line.
func (l *Logger) Emit(line Line) {
	if !l.Enabled(line.Level) {
		return
	}
	_ = l.sink.Write(line.Level, l.formatter.Format(line))
}

// EmitUnfiltered writes line regardless of the minimum level. A disabled
// logger still writes nothing.
func (l *Logger) EmitUnfiltered(line Line) {
	if l.opts.Disabled {
		return
	}
	_ = l.sink.Write(line.Level, l.formatter.Format(line))
}

// Terminate aborts the process with AbortExitCode unless test mode is on.
// Callers write their failure line before calling it.
func (l *Logger) Terminate() {
	if l.opts.TestMode {
		return
	}
	l.opts.Exit(AbortExitCode)
}

// Log writes a message at level. The template uses "{}" placeholders.
func (l *Logger) Log(level Severity, template string, args ...any) {
	l.LogAt(level, Location{}, template, args...)
}

// LogAt is like Log and adds the call site location.
func (l *Logger) LogAt(level Severity, loc Location, template string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.Emit(Line{
		Level:    level,
		Location: loc,
		Parts:    []Part{Plain(format.MustSprintf(template, args...))},
	})
}

// LogIf writes the message only when cond holds.
func (l *Logger) LogIf(level Severity, cond bool, template string, args ...any) {
	if cond {
		l.Log(level, template, args...)
	}
}

// Trace logs a trace message.
func (l *Logger) Trace(template string, args ...any) {
	l.Log(LevelTrace, template, args...)
}

// Debug logs a debug message.
func (l *Logger) Debug(template string, args ...any) {
	l.Log(LevelDebug, template, args...)
}

// Info logs an info message.
func (l *Logger) Info(template string, args ...any) {
	l.Log(LevelInfo, template, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(template string, args ...any) {
	l.Log(LevelWarn, template, args...)
}

// Error logs an error message.
func (l *Logger) Error(template string, args ...any) {
	l.Log(LevelError, template, args...)
}

// Fatal logs a fatal message. It does not terminate the process; see
// Terminate and the check and annotate packages for that.
func (l *Logger) Fatal(template string, args ...any) {
	l.Log(LevelFatal, template, args...)
}

// Var logs "(name) = value" at debug level with the name highlighted.
func (l *Logger) Var(loc Location, name string, value any) {
	if !l.Enabled(LevelDebug) {
		return
	}
	l.Emit(Line{
		Level:    LevelDebug,
		Location: loc,
		Parts:    []Part{Plain(fmt.Sprintf("(%s) = %v", l.Paint(name, StyleExpr), value))},
	})
}
