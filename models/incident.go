package models

import (
	"strings"
	"time"
)

// IncidentEntry is a safety-relevant append-only record, structurally a
// sibling of LogEntry with the same lifecycle.
type IncidentEntry struct {
	ID        int64     `json:"id" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Staff     string    `json:"staff" db:"staff"`
	Child     string    `json:"child" db:"child"`
	Note      string    `json:"note" db:"note"`
	Display   string    `json:"display_timestamp,omitempty" db:"-"`
}

// IncidentForm represents form data for reporting an incident
type IncidentForm struct {
	StaffName string `json:"staff_name"`
	ChildName string `json:"child_name"`
	Note      string `json:"note"`
}

// Validate validates the incident form data
func (f *IncidentForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.StaffName) == "" {
		errors = append(errors, "Staff name is required")
	}

	if strings.TrimSpace(f.ChildName) == "" {
		errors = append(errors, "Child name is required")
	}

	if strings.TrimSpace(f.Note) == "" {
		errors = append(errors, "Incident note is required")
	}

	return errors
}
