package models

import "strings"

// Assignment links one present child to the staff member currently
// responsible for them. StaffID is the stable reference; StaffName is
// denormalized for display and survives staff deletion. Duplicate child
// names are legal and distinguished only by record id.
type Assignment struct {
	ID        string `json:"id" db:"id"`
	StaffID   string `json:"staff_id" db:"staff_id"`
	StaffName string `json:"staff_name" db:"staff_name"`
	ChildName string `json:"child_name" db:"child_name"`
	Location  string `json:"location" db:"location"`
}

// AddChildForm represents form data for checking a child in
type AddChildForm struct {
	StaffName string `json:"staff_name"`
	ChildName string `json:"child_name"`
	Location  string `json:"location"`
}

// Validate validates the add-child form data
func (f *AddChildForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.ChildName) == "" {
		errors = append(errors, "Child name is required")
	}

	if strings.TrimSpace(f.StaffName) == "" {
		errors = append(errors, "Staff name is required")
	}

	if len(f.ChildName) > 100 {
		errors = append(errors, "Child name must be less than 100 characters")
	}

	return errors
}

// ReassignForm represents form data for moving a child to another staff member
type ReassignForm struct {
	NewStaffName string `json:"new_staff_name"`
}

// Validate validates the reassign form data
func (f *ReassignForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.NewStaffName) == "" {
		errors = append(errors, "New staff name is required")
	}

	return errors
}

// BulkSwapForm represents form data for reassigning one staff member's
// whole roster to another staff member
type BulkSwapForm struct {
	FromStaff string `json:"from_staff"`
	ToStaff   string `json:"to_staff"`
}

// Validate validates the bulk swap form data
func (f *BulkSwapForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.FromStaff) == "" {
		errors = append(errors, "Source staff name is required")
	}

	if strings.TrimSpace(f.ToStaff) == "" {
		errors = append(errors, "Target staff name is required")
	}

	if f.FromStaff != "" && strings.EqualFold(strings.TrimSpace(f.FromStaff), strings.TrimSpace(f.ToStaff)) {
		errors = append(errors, "Source and target staff must differ")
	}

	return errors
}
