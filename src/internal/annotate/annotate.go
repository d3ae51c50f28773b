// Package annotate provides developer markers: cautions that log a warning
// and continue, and criticals that log a fatal line and terminate.
package annotate

import (
	"github.com/fatih/color"

	"github.com/maksimkurb/zlog/src/internal/format"
	"github.com/maksimkurb/zlog/src/internal/log"
)

// CautionCode names a warning-level marker.
type CautionCode uint8

const (
	CautionTodo CautionCode = iota
	CautionDeprecated
	CautionOptimization
	CautionSecurity
	CautionPerformance
)

// CriticalCode names a fatal-level marker.
type CriticalCode uint8

const (
	CriticalUnreachable CriticalCode = iota
	CriticalUnimplemented
	CriticalFixMe
	CriticalMemory
	CriticalThreadSafety
)

var cautionTags = [...]string{
	CautionTodo:         "[TODO]",
	CautionDeprecated:   "[DEPRECATED]",
	CautionOptimization: "[OPTIMIZATION]",
	CautionSecurity:     "[SECURITY]",
	CautionPerformance:  "[PERFORMANCE]",
}

var criticalTags = [...]string{
	CriticalUnreachable:   "[UNREACHABLE]",
	CriticalUnimplemented: "[UNIMPLEMENTED]",
	CriticalFixMe:         "[FIX_ME]",
	CriticalMemory:        "[MEMORY]",
	CriticalThreadSafety:  "[THREAD_SAFETY]",
}

// Tag returns the marker printed for c.
func (c CautionCode) Tag() log.Part {
	return log.Styled(cautionTags[c], color.FgYellow)
}

// Tag returns the marker printed for c.
func (c CriticalCode) Tag() log.Part {
	return log.Styled(criticalTags[c], color.BgRed)
}

// Caution writes a warning line tagged with code. Execution always continues.
func Caution(l *log.Logger, code CautionCode, loc log.Location, msg string, args ...any) {
	emit(l, log.LevelWarn, code.Tag(), loc, msg, args)
}

// Critical writes a fatal line tagged with code and terminates the process
// unless the logger is in test mode.
func Critical(l *log.Logger, code CriticalCode, loc log.Location, msg string, args ...any) {
	emit(l, log.LevelFatal, code.Tag(), loc, msg, args)
	l.Terminate()
}

func emit(l *log.Logger, level log.Severity, tag log.Part, loc log.Location, msg string, args []any) {
	if !l.Enabled(level) {
		return
	}
	l.Emit(log.Line{
		Level:    level,
		Location: loc,
		Parts:    []log.Part{tag, log.Plain(format.MustSprintf(msg, args...))},
	})
}

// Todo marks unfinished work.
func Todo(l *log.Logger, loc log.Location, msg string, args ...any) {
	Caution(l, CautionTodo, loc, msg, args...)
}

// Deprecated marks a code path that is scheduled for removal.
func Deprecated(l *log.Logger, loc log.Location, msg string, args ...any) {
	Caution(l, CautionDeprecated, loc, msg, args...)
}

// Optimize marks an optimization opportunity.
func Optimize(l *log.Logger, loc log.Location, msg string, args ...any) {
	Caution(l, CautionOptimization, loc, msg, args...)
}

// Security marks code that needs a security review.
func Security(l *log.Logger, loc log.Location, msg string, args ...any) {
	Caution(l, CautionSecurity, loc, msg, args...)
}

// Performance marks code that needs a performance review.
func Performance(l *log.Logger, loc log.Location, msg string, args ...any) {
	Caution(l, CautionPerformance, loc, msg, args...)
}

// Unreachable marks a branch that must never run and terminates.
func Unreachable(l *log.Logger, loc log.Location, msg string, args ...any) {
	Critical(l, CriticalUnreachable, loc, msg, args...)
}

// Unimplemented marks a missing implementation and terminates.
func Unimplemented(l *log.Logger, loc log.Location, msg string, args ...any) {
	Critical(l, CriticalUnimplemented, loc, msg, args...)
}

// FixMe marks a known bug and terminates.
func FixMe(l *log.Logger, loc log.Location, msg string, args ...any) {
	Critical(l, CriticalFixMe, loc, msg, args...)
}

// Memory marks a memory problem and terminates.
func Memory(l *log.Logger, loc log.Location, msg string, args ...any) {
	Critical(l, CriticalMemory, loc, msg, args...)
}

// ThreadSafety marks a data race or locking problem and terminates.
func ThreadSafety(l *log.Logger, loc log.Location, msg string, args ...any) {
	Critical(l, CriticalThreadSafety, loc, msg, args...)
}
