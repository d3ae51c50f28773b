package format

import (
	"errors"
	"strings"
	"testing"

	zerrors "github.com/maksimkurb/zlog/src/internal/errors"
)

func TestSprintf(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{"automatic", "answer={}", []any{42}, "answer=42"},
		{"several automatic", "{} + {} = {}", []any{2, 2, 4}, "2 + 2 = 4"},
		{"manual", "{1} before {0}", []any{"a", "b"}, "b before a"},
		{"manual repeated", "{0}{0}{0}", []any{"x"}, "xxx"},
		{"verb", "pi={:.2f}", []any{3.14159}, "pi=3.14"},
		{"manual verb", "{0:x}", []any{255}, "ff"},
		{"quoted", "name={:q}", []any{"zlog"}, `name="zlog"`},
		{"escaped braces", "{{{}}}", []any{7}, "{7}"},
		{"no arguments is literal", "map{} {x}", nil, "map{} {x}"},
		{"named string type", "{}", []any{zerrors.ErrCodeFormat}, "FORMAT_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sprintf(tt.template, tt.args...)
			if err != nil {
				t.Fatalf("Sprintf(%q) unexpected error: %v", tt.template, err)
			}
			if got != tt.expected {
				t.Errorf("Sprintf(%q) = %q, want %q", tt.template, got, tt.expected)
			}
		})
	}
}

func TestSprintf_Errors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		contains string
	}{
		{"too few arguments", "{} {}", []any{1}, "not enough arguments"},
		{"unused arguments", "{}", []any{1, 2}, "uses 1 of 2 arguments"},
		{"unclosed brace", "value={", []any{1}, "malformed template"},
		{"index out of range", "{3}", []any{1}, "out of range"},
		{"automatic then manual", "{} {0}", []any{1}, "automatic to manual"},
		{"manual then automatic", "{0} {}", []any{1, 2}, "manual to automatic"},
		{"bad placeholder", "{name}", []any{1}, "invalid placeholder"},
		{"bad spec", "{:!}", []any{1}, "invalid format spec"},
		{"arguments without placeholders", "answer=", []any{42}, "uses 0 of 1 arguments"},
		{"escaped brace leaves argument unused", "{{}", []any{1}, "uses 0 of 1 arguments"},
		{"internal left brace tag", "{<}", []any{1}, "invalid placeholder {<}"},
		{"internal right brace tag", "{>} {}", []any{1}, "invalid placeholder {>}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sprintf(tt.template, tt.args...)
			if err == nil {
				t.Fatalf("Sprintf(%q) expected error", tt.template)
			}
			if !errors.Is(err, zerrors.ErrFormat) {
				t.Errorf("Expected FORMAT_ERROR, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error to contain %q, got: %v", tt.contains, err)
			}
		})
	}
}

func TestMustSprintf_PanicsOnMismatch(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected MustSprintf to panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, zerrors.ErrFormat) {
			t.Errorf("Expected panic with FORMAT_ERROR, got: %v", r)
		}
	}()

	MustSprintf("{} {}", 1)
}

func TestValidate(t *testing.T) {
	if err := Validate("{} and {}", 2); err != nil {
		t.Errorf("Expected template to be valid: %v", err)
	}
	if err := Validate("{} and {}", 3); err == nil {
		t.Error("Expected error for unused argument")
	}
	if err := Validate("{}", 0); err != nil {
		t.Errorf("Expected literal template without arguments to be valid: %v", err)
	}
}
