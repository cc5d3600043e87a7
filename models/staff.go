package models

import (
	"strings"
	"time"
)

// StaffMember represents a staff member running a group of children
type StaffMember struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	DateAdded time.Time `json:"date_added" db:"date_added"`
}

// StaffForm represents form data for creating/updating staff members
type StaffForm struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Validate validates the staff form data
func (f *StaffForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Name) == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	if len(f.Location) > 200 {
		errors = append(errors, "Location must be less than 200 characters")
	}

	return errors
}
