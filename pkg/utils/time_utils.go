package utils

import (
	"strings"
	"time"
)

const clockLayout = "15:04"

// ParseClock parses "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, bool) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// ParseOpeningHours parses an "HH:MM-HH:MM" interval into minutes after midnight.
// Sentinels such as "24 hours" and anything malformed report ok=false.
func ParseOpeningHours(s string) (openMin, closeMin int, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	openMin, okOpen := ParseClock(parts[0])
	closeMin, okClose := ParseClock(parts[1])
	if !okOpen || !okClose {
		return 0, 0, false
	}
	return openMin, closeMin, true
}

// WithinOpeningHours reports whether minute falls inside [openMin, closeMin], both inclusive.
// Intervals are not wrapped past midnight: one whose close precedes its open contains no minute.
func WithinOpeningHours(minute, openMin, closeMin int) bool {
	return openMin <= minute && minute <= closeMin
}
