package check

import (
	"fmt"

	"github.com/maksimkurb/zlog/src/internal/format"
	"github.com/maksimkurb/zlog/src/internal/log"
)

// Checker runs check operations against a logger.
type Checker struct {
	log *log.Logger
}

// New creates a Checker reporting to l.
func New(l *log.Logger) *Checker {
	return &Checker{log: l}
}

// Test reports PASS or FAIL for cond and never terminates. Test lines are
// written whatever the minimum level is, unless logging is disabled.
func (c *Checker) Test(loc log.Location, cond bool, expr string, desc ...any) bool {
	tag := KindTest.Tag()
	result := passTag
	if !cond {
		result = failTag
	}

	c.log.EmitUnfiltered(log.Line{
		Level:    KindTest.Severity(),
		Tag:      &tag,
		Location: loc,
		Parts:    []log.Part{result, expression(expr), description(desc)},
	})
	return cond
}

// Expect logs a warning when cond is false.
func (c *Checker) Expect(loc log.Location, cond bool, expr string, desc ...any) bool {
	if cond {
		return true
	}
	c.fail(KindExpect, loc, expr, desc)
	return false
}

// Assert logs an error and terminates when cond is false. Outside debug mode
// it only returns cond.
func (c *Checker) Assert(loc log.Location, cond bool, expr string, desc ...any) bool {
	if !c.log.DebugMode() || cond {
		return cond
	}
	c.fail(KindAssert, loc, expr, desc)
	return false
}

// Require logs a fatal line and terminates when cond is false, in every
// build mode.
func (c *Checker) Require(loc log.Location, cond bool, expr string, desc ...any) bool {
	if cond {
		return true
	}
	c.fail(KindRequire, loc, expr, desc)
	return false
}

// Verify is an alias for Require.
func (c *Checker) Verify(loc log.Location, cond bool, expr string, desc ...any) bool {
	return c.Require(loc, cond, expr, desc...)
}

// Check runs the operation of the given kind. KindPanic fails like Require
// and prints the [PANC] tag.
func (c *Checker) Check(kind Kind, loc log.Location, cond bool, expr string, desc ...any) bool {
	switch kind {
	case KindTest:
		return c.Test(loc, cond, expr, desc...)
	case KindAssert:
		return c.Assert(loc, cond, expr, desc...)
	}
	if cond {
		return true
	}
	c.fail(kind, loc, expr, desc)
	return false
}

// Panic logs a fatal line and terminates unconditionally.
func (c *Checker) Panic(loc log.Location, desc ...any) {
	c.log.Emit(log.Line{
		Level:    KindPanic.Severity(),
		Location: loc,
		Parts:    []log.Part{KindPanic.Tag(), description(desc)},
	})
	c.log.Terminate()
}

// PanicIf calls Panic when cond is true.
func (c *Checker) PanicIf(loc log.Location, cond bool, desc ...any) {
	if cond {
		c.Panic(loc, desc...)
	}
}

func (c *Checker) fail(kind Kind, loc log.Location, expr string, desc []any) {
	c.log.Emit(log.Line{
		Level:    kind.Severity(),
		Location: loc,
		Parts:    []log.Part{kind.Tag(), expression(expr), description(desc)},
	})
	if kind.Terminates() {
		c.log.Terminate()
	}
}

func expression(expr string) log.Part {
	return log.Part{Text: expr, Style: log.StyleExpr}
}

// description renders the optional message. A leading string is a "{}"
// template for the remaining values; anything else is printed with fmt.Sprint.
func description(desc []any) log.Part {
	if len(desc) == 0 {
		return log.Part{}
	}
	text, ok := desc[0].(string)
	if ok {
		text = format.MustSprintf(text, desc[1:]...)
	} else {
		text = fmt.Sprint(desc...)
	}
	return log.Part{Text: text, Style: log.StyleDesc}
}
