package log

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Severity is the importance of a log line. The order is fixed and comparison
// is the only filtering mechanism.
type Severity uint8

const (
	LevelTrace Severity = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	severityNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

	levelTags = [...]Part{
		{Text: "[TRCE]", Style: Style{color.FgHiBlack}},
		{Text: "[DEBG]", Style: Style{color.FgCyan}},
		{Text: "[INFO]", Style: Style{color.FgGreen}},
		{Text: "[WARN]", Style: Style{color.FgYellow}},
		{Text: "[ERRO]", Style: Style{color.FgRed}},
		{Text: "[FATL]", Style: Style{color.BgRed}},
	}
)

// ShouldEmit reports whether a line at level passes the minimum level.
func ShouldEmit(level, minLevel Severity, disabled bool) bool {
	return !disabled && level >= minLevel
}

// Valid reports whether s is one of the defined levels.
func (s Severity) Valid() bool {
	return s <= LevelFatal
}

func (s Severity) String() string {
	if s.Valid() {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

// Tag returns the bracketed, colored tag printed for the level.
func (s Severity) Tag() Part {
	if s.Valid() {
		return levelTags[s]
	}
	return Part{Text: "[" + s.String() + "]"}
}

// ParseSeverity parses a level name. Both the full names ("info", "error")
// and the four-letter tag names ("debg", "erro") are accepted, case-insensitively.
func ParseSeverity(name string) (Severity, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range severityNames {
		tag := strings.Trim(levelTags[i].Text, "[]")
		if key == n || key == tag {
			return Severity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", name)
}

func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid severity %d", uint8(s))
	}
	return []byte(strings.ToLower(s.String())), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	level, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = level
	return nil
}
