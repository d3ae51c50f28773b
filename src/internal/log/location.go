package log

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// Location is a source position supplied by the call site. The zero value
// means unknown and is left out of the output.
type Location struct {
	File string
	Line int
}

// Here returns the location of its caller.
func Here() Location {
	return Caller(1)
}

// Caller returns the location skip frames above the caller of Caller.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}

// At builds a Location from explicit values.
func At(file string, line int) Location {
	return Location{File: file, Line: line}
}

func (l Location) IsZero() bool {
	return l.File == ""
}

// String renders the location as "[file.go:42]" using the base file name.
func (l Location) String() string {
	if l.IsZero() {
		return ""
	}
	return "[" + filepath.Base(l.File) + ":" + strconv.Itoa(l.Line) + "]"
}
