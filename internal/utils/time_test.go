package utils

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "morning",
			in:   time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC),
			want: "2026-03-14",
		},
		{
			name: "just before midnight",
			in:   time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC),
			want: "2026-03-14",
		},
		{
			name: "midnight belongs to the new day",
			in:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			want: "2026-03-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(tt.in); got != tt.want {
				t.Errorf("DayKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDaysAgo(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		n    int
		want string
	}{
		{name: "zero is today", n: 0, want: "2026-03-14"},
		{name: "one day back", n: 1, want: "2026-03-13"},
		{name: "crosses month boundary", n: 14, want: "2026-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysAgo(base, tt.n); got != tt.want {
				t.Errorf("DaysAgo(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestValidDay(t *testing.T) {
	tests := []struct {
		day  string
		want bool
	}{
		{"2026-03-14", true},
		{"2026-3-14", false},
		{"03/14/2026", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDay(tt.day); got != tt.want {
			t.Errorf("ValidDay(%q) = %v, want %v", tt.day, got, tt.want)
		}
	}
}
