package tz

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	// 02:30 UTC on Oct 15 is still Oct 14 in Toronto.
	instant := time.Date(2026, time.October, 15, 2, 30, 0, 0, time.UTC)
	if got := Date(instant, Toronto); got != "2026-10-14" {
		t.Errorf("Date() = %q, want %q", got, "2026-10-14")
	}
	if got := Date(instant, time.UTC); got != "2026-10-15" {
		t.Errorf("Date() = %q, want %q", got, "2026-10-15")
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		n    int
		want string
	}{
		{"same day", time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC), 0, "2026-03-01"},
		{"week ahead", time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC), 7, "2026-03-08"},
		{"month rollover", time.Date(2026, time.January, 28, 9, 0, 0, 0, time.UTC), 7, "2026-02-04"},
		{"dst change", time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC), 1, "2026-03-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDays(tt.now, Toronto, tt.n); got != tt.want {
				t.Errorf("AddDays() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	loc, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if loc != Toronto {
		t.Errorf("Load(\"\") = %v, want Toronto", loc)
	}

	if _, err := Load("Not/AZone"); err == nil {
		t.Error("expected error for unknown zone")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-06-22", Toronto)
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if d.Location() != Toronto || d.Hour() != 0 || d.Day() != 22 {
		t.Errorf("ParseDate() = %v", d)
	}

	if _, err := ParseDate("22/06/2026", Toronto); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestDay(t *testing.T) {
	due := time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)
	if got := Day(due); got != "2026-10-20" {
		t.Errorf("Day() = %q, want %q", got, "2026-10-20")
	}
}
