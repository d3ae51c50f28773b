package log

import "testing"

func TestShouldEmit(t *testing.T) {
	levels := []Severity{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}

	for _, minLevel := range levels {
		for _, level := range levels {
			want := level >= minLevel
			if got := ShouldEmit(level, minLevel, false); got != want {
				t.Errorf("ShouldEmit(%v, %v, false) = %v, want %v", level, minLevel, got, want)
			}
			if ShouldEmit(level, minLevel, true) {
				t.Errorf("ShouldEmit(%v, %v, true) = true, want false", level, minLevel)
			}
		}
	}
}

func TestSeverity_Order(t *testing.T) {
	if !(LevelTrace < LevelDebug && LevelDebug < LevelInfo && LevelInfo < LevelWarn &&
		LevelWarn < LevelError && LevelError < LevelFatal) {
		t.Error("Expected Trace < Debug < Info < Warn < Error < Fatal")
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
	}{
		{"trace", LevelTrace},
		{"TRCE", LevelTrace},
		{"Debug", LevelDebug},
		{"debg", LevelDebug},
		{"info", LevelInfo},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"erro", LevelError},
		{"FATAL", LevelFatal},
		{"fatl", LevelFatal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if err != nil {
				t.Fatalf("ParseSeverity(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}

	if _, err := ParseSeverity("verbose"); err == nil {
		t.Error("Expected error for unknown severity")
	}
}

func TestSeverity_TextRoundTrip(t *testing.T) {
	text, err := LevelWarn.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "warn" {
		t.Errorf("MarshalText() = %q, want %q", text, "warn")
	}

	var s Severity
	if err := s.UnmarshalText([]byte("ERRO")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if s != LevelError {
		t.Errorf("UnmarshalText() = %v, want %v", s, LevelError)
	}

	if _, err := Severity(42).MarshalText(); err == nil {
		t.Error("Expected error when marshaling invalid severity")
	}
}

func TestSeverity_Tag(t *testing.T) {
	expected := map[Severity]string{
		LevelTrace: "[TRCE]",
		LevelDebug: "[DEBG]",
		LevelInfo:  "[INFO]",
		LevelWarn:  "[WARN]",
		LevelError: "[ERRO]",
		LevelFatal: "[FATL]",
	}
	for level, tag := range expected {
		if got := level.Tag().Text; got != tag {
			t.Errorf("%v.Tag() = %q, want %q", level, got, tag)
		}
	}
	if got := Severity(9).String(); got != "Severity(9)" {
		t.Errorf("String() of invalid severity = %q", got)
	}
}
