package models

import "strings"

// Memo is a per-staff, per-date free-text note. At most one memo exists
// per (staff_name, date) pair; the memo service enforces this by
// lookup-before-write, the store does not.
type Memo struct {
	ID        string `json:"id" db:"id"`
	StaffName string `json:"staff_name" db:"staff_name"`
	Date      string `json:"date" db:"date"`
	Memo      string `json:"memo" db:"memo"`
}

// MemoForm represents form data for saving a memo
type MemoForm struct {
	StaffName string `json:"staff_name"`
	Date      string `json:"date"`
	Memo      string `json:"memo"`
}

// Validate validates the memo form data
func (f *MemoForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.StaffName) == "" {
		errors = append(errors, "Staff name is required")
	}

	if f.Date == "" {
		errors = append(errors, "Date is required")
	} else if !IsValidDate(f.Date) {
		errors = append(errors, "Date must be in YYYY-MM-DD format")
	}

	return errors
}

// BulkMemoForm represents form data for distributing one memo to many staff
type BulkMemoForm struct {
	StaffNames []string `json:"staff_names"`
	Date       string   `json:"date"`
	Memo       string   `json:"memo"`
}

// Validate validates the bulk memo form data
func (f *BulkMemoForm) Validate() []string {
	var errors []string

	if len(f.StaffNames) == 0 {
		errors = append(errors, "At least one staff name is required")
	}

	if f.Date == "" {
		errors = append(errors, "Date is required")
	} else if !IsValidDate(f.Date) {
		errors = append(errors, "Date must be in YYYY-MM-DD format")
	}

	return errors
}
