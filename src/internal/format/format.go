// Package format renders "{}"-style message templates.
//
// Templates are parsed with fasttemplate using single braces as tag
// delimiters. Supported placeholders:
//
//	{}       next argument (automatic indexing)
//	{2}      argument 2 (manual indexing)
//	{:.2f}   next argument formatted with the fmt verb "%.2f"
//	{1:x}    argument 1 formatted with "%x"
//	{{ }}    literal braces
//
// Automatic and manual indexing cannot be mixed in one template. In automatic
// mode, and in a template without placeholders, every argument must be
// consumed. A call without arguments takes the template literally.
package format

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/zlog/src/internal/errors"
)

const (
	startTag = "{"
	endTag   = "}"

	leftBraceTag  = "<"
	rightBraceTag = ">"
)

var verbSpec = regexp.MustCompile(`^[+\-# 0]*[0-9]*(\.[0-9]+)?[a-zA-Z]$`)

type indexing uint8

const (
	indexingNone indexing = iota
	indexingAuto
	indexingManual
)

// renderer holds the per-call state while fasttemplate walks the tags.
type renderer struct {
	template string
	args     []any
	mode     indexing
	next     int
}

// Sprintf renders template with args.
func Sprintf(template string, args ...any) (string, error) {
	if len(args) == 0 {
		return template, nil
	}

	escaped, err := escape(template)
	if err != nil {
		return "", err
	}
	tpl, err := fasttemplate.NewTemplate(escaped, startTag, endTag)
	if err != nil {
		return "", errors.NewFormatError(fmt.Sprintf("malformed template %q", template), err)
	}

	r := &renderer{template: template, args: args}
	var sb strings.Builder
	sb.Grow(len(template) + 16*len(args))
	if _, err := tpl.ExecuteFunc(&sb, r.tag); err != nil {
		return "", err
	}

	if r.mode != indexingManual && r.next < len(args) {
		return "", errors.NewFormatError(
			fmt.Sprintf("template %q uses %d of %d arguments", template, r.next, len(args)), nil)
	}

	return sb.String(), nil
}

// MustSprintf is like Sprintf but panics on a malformed template or an
// argument mismatch. Message templates are literal program text, so a failure
// is a programming error at the call site.
func MustSprintf(template string, args ...any) string {
	s, err := Sprintf(template, args...)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate reports whether template can be rendered with n arguments.
func Validate(template string, n int) error {
	_, err := Sprintf(template, make([]any, n)...)
	return err
}

// escape rewrites "{{" and "}}" into the internal brace tags. Placeholders are
// copied through untouched, so "{{{}}}" pairs as "{{", "{}", "}}". A
// placeholder spelling one of the internal tags is rejected.
func escape(template string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(template) + 8)
	for i := 0; i < len(template); {
		switch {
		case strings.HasPrefix(template[i:], "{{"):
			sb.WriteString(startTag + leftBraceTag + endTag)
			i += 2
		case template[i] == '{':
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				sb.WriteString(template[i:])
				return sb.String(), nil
			}
			if body := template[i+1 : i+end]; body == leftBraceTag || body == rightBraceTag {
				return "", errors.NewFormatError(
					fmt.Sprintf("template %q: invalid placeholder {%s}", template, body), nil)
			}
			sb.WriteString(template[i : i+end+1])
			i += end + 1
		case strings.HasPrefix(template[i:], "}}"):
			sb.WriteString(startTag + rightBraceTag + endTag)
			i += 2
		default:
			sb.WriteByte(template[i])
			i++
		}
	}
	return sb.String(), nil
}

func (r *renderer) tag(w io.Writer, tag string) (int, error) {
	switch tag {
	case leftBraceTag:
		return io.WriteString(w, startTag)
	case rightBraceTag:
		return io.WriteString(w, endTag)
	}

	index, verb, err := r.parse(tag)
	if err != nil {
		return 0, err
	}
	return fmt.Fprintf(w, verb, r.args[index])
}

// parse resolves a placeholder body such as "", "1", ":x" or "0:.3f" into an
// argument index and a fmt verb.
func (r *renderer) parse(tag string) (int, string, error) {
	position, spec, _ := strings.Cut(tag, ":")

	verb := "%v"
	if spec != "" {
		if !verbSpec.MatchString(spec) {
			return 0, "", r.fail(fmt.Sprintf("invalid format spec %q", spec))
		}
		verb = "%" + spec
	}

	if position == "" {
		if r.mode == indexingManual {
			return 0, "", r.fail("cannot switch from manual to automatic argument indexing")
		}
		r.mode = indexingAuto
		if r.next >= len(r.args) {
			return 0, "", r.fail(fmt.Sprintf("not enough arguments: have %d", len(r.args)))
		}
		index := r.next
		r.next++
		return index, verb, nil
	}

	index, err := strconv.Atoi(position)
	if err != nil || index < 0 {
		return 0, "", r.fail(fmt.Sprintf("invalid placeholder {%s}", tag))
	}
	if r.mode == indexingAuto {
		return 0, "", r.fail("cannot switch from automatic to manual argument indexing")
	}
	r.mode = indexingManual
	if index >= len(r.args) {
		return 0, "", r.fail(fmt.Sprintf("argument index %d out of range: have %d", index, len(r.args)))
	}
	return index, verb, nil
}

func (r *renderer) fail(message string) error {
	return errors.NewFormatError(fmt.Sprintf("template %q: %s", r.template, message), nil)
}
