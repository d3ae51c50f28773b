package log

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// Sink routes rendered lines to the standard or the error writer. A single
// mutex is held for the duration of one line write, so lines from
// concurrent callers never interleave.
type Sink struct {
	mu          sync.Mutex
	stdout      io.Writer
	stderr      io.Writer
	forceStdErr bool
}

// NewSink creates a sink over the two writers. With forceStdErr every line
// goes to stderr.
func NewSink(stdout, stderr io.Writer, forceStdErr bool) *Sink {
	return &Sink{
		stdout:      stdout,
		stderr:      stderr,
		forceStdErr: forceStdErr,
	}
}

// writerFor selects the writer for level: below WARN to stdout, WARN and
// above to stderr.
func (s *Sink) writerFor(level Severity) io.Writer {
	if s.forceStdErr || level >= LevelWarn {
		return s.stderr
	}
	return s.stdout
}

// Write writes one complete line and flushes the writer if it buffers.
func (s *Sink) Write(level Severity, line string) error {
	w := s.writerFor(level)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(w, line); err != nil {
		return err
	}
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
