// Package trace emits paired enter/exit lines around a scope.
//
// A Tracer is opened with Begin and closed with End, normally through defer
// so the exit line is written on every way out of the function:
//
//	func (s *Store) Load(id string) error {
//		defer trace.Method(s.log, "Store").End()
//		...
//	}
//
// Output at TRACE level:
//
//	[TRCE] : --{ : Store.Load()
//	[TRCE] : }-- : Store.Load()
//
// Nested tracers close in reverse order of opening since deferred calls run
// last-in first-out.
package trace

import (
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/fatih/color"

	"github.com/maksimkurb/zlog/src/internal/format"
	"github.com/maksimkurb/zlog/src/internal/log"
)

var (
	enterTag = log.Styled("--{", color.FgHiGreen)
	exitTag  = log.Styled("}--", color.FgHiRed)
)

// Tracer is bound to one scope. It keeps the label it was opened with and
// writes exactly one exit line.
type Tracer struct {
	log    *log.Logger
	label  string
	closed atomic.Bool
}

// Begin writes the enter line for label and returns the open tracer. label
// may contain "{}" placeholders filled from args.
func Begin(l *log.Logger, label string, args ...any) *Tracer {
	t := &Tracer{
		log:   l,
		label: format.MustSprintf(label, args...),
	}
	t.emit(enterTag)
	return t
}

// Func opens a tracer labelled with the calling function, e.g. "load()".
func Func(l *log.Logger) *Tracer {
	return Begin(l, callerName(2)+"()")
}

// Method opens a tracer labelled "Type.method()" for the calling method.
func Method(l *log.Logger, typeName string) *Tracer {
	name := callerName(2)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return Begin(l, typeName+"."+name+"()")
}

// Do runs fn inside a traced scope. The exit line is written when fn
// returns, fails or panics; a panic continues to unwind afterwards.
func Do(l *log.Logger, label string, fn func() error) error {
	defer Begin(l, label).End()
	return fn()
}

// End writes the exit line. Only the first call has an effect.
func (t *Tracer) End() {
	if t.closed.Swap(true) {
		return
	}
	t.emit(exitTag)
}

// Label returns the scope label.
func (t *Tracer) Label() string {
	return t.label
}

func (t *Tracer) emit(tag log.Part) {
	if !t.log.Enabled(log.LevelTrace) {
		return
	}

	label := log.Plain(t.label)
	if t.log.Options().TraceDull {
		label.Style = log.StyleDim
	}

	t.log.Emit(log.Line{
		Level: log.LevelTrace,
		Parts: []log.Part{tag, label},
	})
}

// callerName returns the short name of the function skip frames up, without
// the package path: "load", "(*Store).Load" or "run.func1".
func callerName(skip int) string {
	pcs := make([]uintptr, 1)
	if runtime.Callers(skip+1, pcs) == 0 {
		return "unknown"
	}
	frame, _ := runtime.CallersFrames(pcs).Next()

	name := frame.Function
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
