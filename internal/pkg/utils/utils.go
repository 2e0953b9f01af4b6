package utils

import (
	"fmt"
	"strings"
	"time"
)

// DisplayTimeLayout matches the locale-style timestamps shown to users,
// e.g. "6/1/2024, 6:30:00 AM".
const DisplayTimeLayout = "1/2/2006, 3:04:05 PM"

// FormatDisplayTime renders a time in the display layout.
func FormatDisplayTime(t time.Time) string {
	return t.Format(DisplayTimeLayout)
}

// FormatDuration renders the gap between two times as "2h 5m". Hours are the
// whole hours of the difference, minutes the whole minutes of the remainder.
func FormatDuration(from, to time.Time) string {
	diff := to.Sub(from).Milliseconds()
	hours := diff / (1000 * 60 * 60)
	minutes := (diff % (1000 * 60 * 60)) / (1000 * 60)

	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// TitleFirst uppercases the first character of s, leaving the rest untouched.
// Example: "scheduled" -> "Scheduled".
func TitleFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
