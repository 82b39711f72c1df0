package domain

import (
	"fmt"
	"time"
)

// FormatLocalDate serializes the local calendar day of t as YYYY-MM-DD.
// It reads year/month/day from the local-time decomposition, never from
// a UTC-normalized string: naive UTC conversion shifts the date near
// midnight in timezones behind UTC.
func FormatLocalDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseLocalDate splits a YYYY-MM-DD string into its calendar parts
func ParseLocalDate(s string) (year int, month time.Month, day int, err error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return 0, 0, 0, err
	}
	y, m, d := t.Date()
	return y, m, d, nil
}

// DayBefore reports whether a's calendar day falls strictly before b's.
// Each instant is read as a wall-clock date in its own location, so a
// UTC-parsed request date compares cleanly against a local server clock.
func DayBefore(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// SameDay reports whether two instants fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
