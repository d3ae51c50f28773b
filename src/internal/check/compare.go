package check

import (
	"fmt"
	"reflect"

	"github.com/maksimkurb/zlog/src/internal/log"
)

// Equal checks that actual equals expected. expr is the source text of the
// actual value; the line reads "expr == expected" and adds the actual value
// when the check fails.
//
//	check.Equal(c, check.KindExpect, log.Here(), "len(items)", len(items), 3)
func Equal[T comparable](c *Checker, kind Kind, loc log.Location, expr string, actual, expected T, desc ...any) bool {
	cond := actual == expected
	return c.Check(kind, loc, cond, comparison(expr, "==", expected, actual, cond), desc...)
}

// NotEqual checks that actual differs from unexpected.
func NotEqual[T comparable](c *Checker, kind Kind, loc log.Location, expr string, actual, unexpected T, desc ...any) bool {
	cond := actual != unexpected
	return c.Check(kind, loc, cond, comparison(expr, "!=", unexpected, actual, cond), desc...)
}

// Nil checks that value is nil. A typed nil pointer, map, slice, channel or
// func stored in the interface counts as nil.
func Nil(c *Checker, kind Kind, loc log.Location, expr string, value any, desc ...any) bool {
	cond := isNil(value)
	return c.Check(kind, loc, cond, comparison(expr, "==", "nil", value, cond), desc...)
}

// NotNil checks that value is not nil.
func NotNil(c *Checker, kind Kind, loc log.Location, expr string, value any, desc ...any) bool {
	cond := !isNil(value)
	return c.Check(kind, loc, cond, comparison(expr, "!=", "nil", value, cond), desc...)
}

func comparison(expr, op string, want, got any, held bool) string {
	text := fmt.Sprintf("%s %s %v", expr, op, want)
	if held {
		return text
	}
	return fmt.Sprintf("%s (got %v)", text, got)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
