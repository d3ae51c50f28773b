package log

import (
	"strings"
	"time"
)

const (
	// Separator joins the segments of a line.
	Separator = " : "

	timestampLayout = "[15:04:05]"
)

var newlineEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

// Line is a single decorated message before rendering.
type Line struct {
	Level Severity
	// Tag replaces the level tag when set, e.g. "[TEST]".
	Tag      *Part
	Location Location
	// Parts are joined with Separator; empty parts are skipped.
	Parts []Part
}

// Formatter renders Lines into output text.
type Formatter struct {
	timestamps bool
	painter    painter
	now        func() time.Time
}

// NewFormatter creates a formatter. A nil clock means time.Now.
func NewFormatter(timestamps, color bool, now func() time.Time) *Formatter {
	if now == nil {
		now = time.Now
	}
	return &Formatter{
		timestamps: timestamps,
		painter:    painter{enabled: color},
		now:        now,
	}
}

// Paint applies style to text if color output is enabled.
func (f *Formatter) Paint(text string, style Style) string {
	return f.painter.paint(text, style)
}

// Format renders line as
//
//	[HH:MM:SS] : [TAG] : [file:line] : part : part\n
//
// leaving out the timestamp, location and empty parts together with their
// separators. The result has exactly one newline, at the end.
func (f *Formatter) Format(line Line) string {
	var b strings.Builder
	b.Grow(128)

	write := func(text string, style Style) {
		if b.Len() > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(f.painter.paint(text, style))
	}

	if f.timestamps {
		write(f.now().Format(timestampLayout), StyleDim)
	}

	tag := line.Level.Tag()
	if line.Tag != nil {
		tag = *line.Tag
	}
	write(tag.Text, tag.Style)

	if !line.Location.IsZero() {
		write(line.Location.String(), StyleDim)
	}

	for _, part := range line.Parts {
		if part.Text == "" {
			continue
		}
		write(newlineEscaper.Replace(part.Text), part.Style)
	}

	b.WriteByte('\n')
	return b.String()
}
