// Package timefmt renders and parses the human-readable timestamp format
// used throughout the activity log, e.g. "June 1, 2024 09:00 AM".
//
// The format is not lexically sortable, so anything that needs
// chronological order must go through Parse first. Canonical timestamps
// are stored as time.Time; the display string is derived on the way out.
package timefmt

import (
	"time"
)

// DisplayLayout is the fixed human-readable pattern: month name, day,
// year, 12-hour clock with AM/PM.
const DisplayLayout = "January 2, 2006 03:04 PM"

// legacy spreadsheet exports zero-pad the day ("June 01, 2024 ...");
// time.Parse accepts both with the unpadded layout, so one layout covers
// old and new rows.

var location = mustLoad("America/Denver")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SetLocation switches the civil timezone used for rendering and for Now.
// Unknown names fall back to UTC.
func SetLocation(name string) {
	location = mustLoad(name)
}

// Location returns the configured civil timezone.
func Location() *time.Location {
	return location
}

// Now returns the current wall-clock time in the configured timezone.
func Now() time.Time {
	return time.Now().In(location)
}

// Format renders t as the display string in the configured timezone.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(location).Format(DisplayLayout)
}

// Parse converts a display string back to a comparable time value in the
// configured timezone. Unparsable strings yield ok=false and the zero
// time, which sorts as "unknown" (placed last in descending order).
func Parse(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DisplayLayout, s, location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Today returns the current calendar date in the configured timezone as
// YYYY-MM-DD.
func Today() string {
	return Now().Format("2006-01-02")
}
