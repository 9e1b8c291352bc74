package errors

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "wrapped error",
			err:      errors.New("failed to load items: unexpected end of JSON input"),
			expected: "Error: failed to load items: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{
			name:     "no args",
			format:   "storage not initialized",
			args:     nil,
			expected: "Error: storage not initialized",
		},
		{
			name:     "with args",
			format:   "unknown pillar %q",
			args:     []interface{}{"time-travel"},
			expected: `Error: unknown pillar "time-travel"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Formatf(tt.format, tt.args...); got != tt.expected {
				t.Errorf("Formatf() = %q, want %q", got, tt.expected)
			}
		})
	}
}
