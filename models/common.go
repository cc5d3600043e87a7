package models

import (
	"strings"
	"time"
)

// Common validation and date utilities used across models

// ParseDate parses a YYYY-MM-DD string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// IsValidDate reports whether dateStr is a valid YYYY-MM-DD calendar date
func IsValidDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// NormalizeLineBreaks canonicalizes CRLF and bare CR line endings to a
// single newline convention before storage, to avoid mixed-encoding diffs.
func NormalizeLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
