package models

// ResetState is the singleton meta record holding the calendar date of the
// last daily reset. An empty date means no reset has ever run.
type ResetState struct {
	ID            int    `json:"id" db:"id"`
	LastResetDate string `json:"last_reset_date" db:"last_reset_date"`
}

// IsStale reports whether the marker predates today, meaning the
// assignment table should be truncated before use.
func (s *ResetState) IsStale(today string) bool {
	return s.LastResetDate != today
}
