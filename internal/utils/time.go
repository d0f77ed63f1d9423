package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	return t.UTC(), nil
}

// LoadLocation resolves a configured time zone name. Empty means the system zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", name, err)
	}
	return loc, nil
}

// FormatDay formats a date for display, e.g. "Tue 03 Mar 2026".
func FormatDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon 02 Jan 2006")
}

// DaysUntil counts the calendar days from now until t, negative when t is past.
func DaysUntil(now, t time.Time) int {
	return int(t.Sub(now).Hours() / 24)
}
