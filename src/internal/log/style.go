package log

import (
	"github.com/fatih/color"
)

// Style is a set of ANSI attributes applied to one output segment.
type Style []color.Attribute

// Commonly used segment styles.
var (
	StyleDim  = Style{color.FgHiBlack}
	StyleExpr = Style{color.FgMagenta}
	StyleDesc = Style{color.Bold}
)

// Part is one " : "-separated segment of a line.
type Part struct {
	Text  string
	Style Style
}

// Plain returns an unstyled part.
func Plain(text string) Part {
	return Part{Text: text}
}

// Styled returns a part painted with the given attributes.
func Styled(text string, attrs ...color.Attribute) Part {
	return Part{Text: text, Style: attrs}
}

// painter applies styles when color output is enabled. The color instance is
// forced on so that the decision belongs to the logger options only, not to
// the terminal detection done by the color package.
type painter struct {
	enabled bool
}

func (p painter) paint(text string, style Style) string {
	if !p.enabled || len(style) == 0 || text == "" {
		return text
	}
	c := color.New(style...)
	c.EnableColor()
	return c.Sprint(text)
}
