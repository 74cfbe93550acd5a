package ui

import (
	"testing"
	"time"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
		{"days ago", now.Add(-2 * 24 * time.Hour), "2d ago"},
		{"older than a week", now.Add(-30 * 24 * time.Hour), "Jul 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeTime(tt.at, now); got != tt.want {
				t.Errorf("relativeTime = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadTime(t *testing.T) {
	if got := readTime(7); got != "7 min read" {
		t.Errorf("readTime(7) = %q, want %q", got, "7 min read")
	}
	if got := readTime(0); got != "1 min read" {
		t.Errorf("readTime(0) = %q, want %q (rounded up)", got, "1 min read")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten..", 13, "exactly ten.."},
		{"a longer headline entirely", 10, "a longer …"},
		{"anything", 0, ""},
		{"ab", 1, "a"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTernary(t *testing.T) {
	if got := ternary(true, "a", "b"); got != "a" {
		t.Errorf("ternary(true) = %q", got)
	}
	if got := ternary(false, "a", "b"); got != "b" {
		t.Errorf("ternary(false) = %q", got)
	}
}
