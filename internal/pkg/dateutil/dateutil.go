// Package dateutil builds the canonical yyyy-mm-dd date strings used across
// the booking flow. Dates stay strings end to end: zero-padding makes
// lexicographic comparison equivalent to chronological comparison, so nothing
// ever parses them back into time.Time to compare them.
package dateutil

import (
	"fmt"
	"time"
)

// Format composes day, month and year into the zero-padded yyyy-mm-dd form.
// Calendar validity is not checked: day 31 of a 30-day month passes through.
func Format(day, month, year int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// FormatParts is the string-typed variant used when the parts come from an
// external document. Parts are left-padded with zeros to two digits (four for
// the year); non-numeric input propagates as-is into the output.
func FormatParts(day, month, year string) string {
	return pad(year, 4) + "-" + pad(month, 2) + "-" + pad(day, 2)
}

// Clock supplies the current time. Injected so tests can pin "today".
type Clock func() time.Time

// Today formats the clock's current date.
func Today(now Clock) string {
	t := now()
	return Format(t.Day(), int(t.Month()), t.Year())
}

func pad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
