package trace

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/maksimkurb/zlog/src/internal/log"
)

func newTestLogger(opts log.Options) (*log.Logger, *bytes.Buffer) {
	var out bytes.Buffer
	opts.Stdout = &out
	opts.Stderr = &out
	return log.New(opts), &out
}

func lines(out *bytes.Buffer) []string {
	s := strings.TrimSuffix(out.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func assertLines(t *testing.T, got []string, expected []string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %q", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], expected[i])
		}
	}
}

func TestBeginEnd(t *testing.T) {
	l, out := newTestLogger(log.Options{MinLevel: log.LevelTrace})

	tr := Begin(l, "worker {}", 3)
	tr.End()

	assertLines(t, lines(out), []string{
		"[TRCE] : --{ : worker 3",
		"[TRCE] : }-- : worker 3",
	})
	if tr.Label() != "worker 3" {
		t.Errorf("Label() = %q, want %q", tr.Label(), "worker 3")
	}
}

func TestEnd_IsIdempotent(t *testing.T) {
	l, out := newTestLogger(log.Options{MinLevel: log.LevelTrace})

	tr := Begin(l, "once")
	tr.End()
	tr.End()

	if n := strings.Count(out.String(), "}--"); n != 1 {
		t.Errorf("Expected exactly one exit line, got %d", n)
	}
}

func TestNestedScopes_CloseInReverseOrder(t *testing.T) {
	l, out := newTestLogger(log.Options{MinLevel: log.LevelTrace})

	func() {
		defer Begin(l, "A").End()
		func() {
			defer Begin(l, "B").End()
			func() {
				defer Begin(l, "C").End()
			}()
		}()
	}()

	assertLines(t, lines(out), []string{
		"[TRCE] : --{ : A",
		"[TRCE] : --{ : B",
		"[TRCE] : --{ : C",
		"[TRCE] : }-- : C",
		"[TRCE] : }-- : B",
		"[TRCE] : }-- : A",
	})
}

func earlyReturn(l *log.Logger, stop bool) int {
	defer Begin(l, "earlyReturn").End()
	if stop {
		return 1
	}
	l.Info("not reached")
	return 2
}

func TestExitLine_OnEarlyReturn(t *testing.T) {
	l, out := newTestLogger(log.Options{MinLevel: log.LevelTrace})

	if earlyReturn(l, true) != 1 {
		t.Fatal("Expected early return")
	}

	assertLines(t, lines(out), []string{
		"[TRCE] : --{ : earlyReturn",
		"[TRCE] : }-- : earlyReturn",
	})
}

func TestExitLine_OnPanic(t *testing.T) {
	l, out := newTestLogger(log.Options{MinLevel: log.LevelTrace})

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic to propagate")
			}
		}()
		defer Begin(l, "outer").End()
		func() {
			defer Begin(l, "inner").End()
			panic("boom")
		}()
	}()

	assertLines(t, lines(out), []string{
		"[TRCE] : --{ : outer",
		"[TRCE] : --{ : inner",
		"[TRCE] : }-- : inner",
		"[TRCE] : }-- : outer",
	})
}

func TestDo(t *testing.T) {
	l, out := newTestLogger(log.Options{MinLevel: log.LevelTrace})
	errFailed := errors.New("failed")

	err := Do(l, "step", func() error {
		l.Debug("inside")
		return errFailed
	})

	if !errors.Is(err, errFailed) {
		t.Errorf("Expected error from fn to be returned, got %v", err)
	}
	assertLines(t, lines(out), []string{
		"[TRCE] : --{ : step",
		"[DEBG] : inside",
		"[TRCE] : }-- : step",
	})
}

func TestDo_Panic(t *testing.T) {
	l, out := newTestLogger(log.Options{MinLevel: log.LevelTrace})

	func() {
		defer func() { _ = recover() }()
		_ = Do(l, "explode", func() error { panic("x") })
	}()

	if strings.Count(out.String(), "--{ : explode") != 1 || strings.Count(out.String(), "}-- : explode") != 1 {
		t.Errorf("Expected one enter and one exit line, got %q", out.String())
	}
}

type store struct {
	log *log.Logger
}

func (s *store) Load() {
	defer Method(s.log, "store").End()
}

func namedFunction(l *log.Logger) {
	defer Func(l).End()
}

func TestSynthesizedLabels(t *testing.T) {
	l, out := newTestLogger(log.Options{MinLevel: log.LevelTrace})

	namedFunction(l)
	(&store{log: l}).Load()

	assertLines(t, lines(out), []string{
		"[TRCE] : --{ : namedFunction()",
		"[TRCE] : }-- : namedFunction()",
		"[TRCE] : --{ : store.Load()",
		"[TRCE] : }-- : store.Load()",
	})
}

func TestTraceFilteredOut(t *testing.T) {
	l, out := newTestLogger(log.Options{MinLevel: log.LevelInfo})

	tr := Begin(l, "quiet")
	tr.End()

	if out.Len() != 0 {
		t.Errorf("Expected no output below minimum level, got %q", out.String())
	}
}

func TestDullLabel(t *testing.T) {
	l, out := newTestLogger(log.Options{MinLevel: log.LevelTrace, Color: true, TraceDull: true})

	Begin(l, "gray").End()

	if !strings.Contains(out.String(), "\x1b[90mgray\x1b[0m") {
		t.Errorf("Expected dull label, got %q", out.String())
	}
	if !strings.Contains(out.String(), "\x1b[92m--{\x1b[0m") || !strings.Contains(out.String(), "\x1b[91m}--\x1b[0m") {
		t.Errorf("Expected colored enter/exit tags, got %q", out.String())
	}
}
