package check

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/maksimkurb/zlog/src/internal/log"
)

// Kind identifies a check operation.
type Kind uint8

const (
	KindTest Kind = iota
	KindExpect
	KindAssert
	KindRequire
	KindPanic
)

type kindInfo struct {
	name       string
	severity   log.Severity
	tag        log.Part
	terminates bool
}

var kinds = [...]kindInfo{
	KindTest:    {"test", log.LevelInfo, log.Styled("[TEST]", color.FgBlue), false},
	KindExpect:  {"expect", log.LevelWarn, log.Styled("[EXPC]", color.FgYellow), false},
	KindAssert:  {"assert", log.LevelError, log.Styled("[ASRT]", color.FgRed), true},
	KindRequire: {"require", log.LevelFatal, log.Styled("[VRFY]", color.BgRed), true},
	KindPanic:   {"panic", log.LevelFatal, log.Styled("[PANC]", color.BgRed), true},
}

var (
	passTag = log.Styled("[PASS]", color.FgGreen)
	failTag = log.Styled("[FAIL]", color.FgRed)
)

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return int(k) < len(kinds)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Severity is the level a failure of this kind is logged at. Unknown kinds
// log at Error.
func (k Kind) Severity() log.Severity {
	if !k.Valid() {
		return log.LevelError
	}
	return kinds[k].severity
}

// Tag is the marker printed for this kind.
func (k Kind) Tag() log.Part {
	if !k.Valid() {
		return log.Plain("[" + k.String() + "]")
	}
	return kinds[k].tag
}

// Terminates reports whether a failure ends the process (outside test mode).
func (k Kind) Terminates() bool {
	return k.Valid() && kinds[k].terminates
}
