package models

import (
	"strings"
	"time"
)

// Actions recorded in the audit log. The action column is an enum-like
// free string so imported history with unknown tags still loads.
const (
	ActionAdd            = "Add"
	ActionMove           = "Move"
	ActionCheckout       = "Checkout"
	ActionLocationUpdate = "Location Update"
	ActionRoleSwap       = "Role Swap"
	ActionSnack          = "Snack"
	ActionWater          = "Water"
	ActionBathroom       = "Bathroom"
	ActionSunscreen      = "Sunscreen"
	ActionNap            = "Nap"
	ActionNote           = "Note"
)

// CareActions are the routine care events staff can log without mutating
// the ledger.
var CareActions = []string{
	ActionSnack,
	ActionWater,
	ActionBathroom,
	ActionSunscreen,
	ActionNap,
	ActionNote,
}

// IsCareAction reports whether action is one of the routine care events.
func IsCareAction(action string) bool {
	for _, a := range CareActions {
		if a == action {
			return true
		}
	}
	return false
}

// LogEntry is one immutable row of the audit trail. Timestamp is the
// canonical sortable value; Display is the human-readable rendering
// derived at read time and never stored.
type LogEntry struct {
	ID        int64     `json:"id" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Action    string    `json:"action" db:"action"`
	Staff     string    `json:"staff" db:"staff"`
	Child     string    `json:"child" db:"child"`
	Notes     string    `json:"notes" db:"notes"`
	Display   string    `json:"display_timestamp,omitempty" db:"-"`
}

// CareActionForm represents form data for logging a routine care event
type CareActionForm struct {
	StaffName string `json:"staff_name"`
	ChildName string `json:"child_name"`
	Action    string `json:"action"`
	Notes     string `json:"notes"`
}

// Validate validates the care action form data
func (f *CareActionForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Action) == "" {
		errors = append(errors, "Action is required")
	} else if !IsCareAction(f.Action) {
		errors = append(errors, "Unknown care action: "+f.Action)
	}

	if strings.TrimSpace(f.StaffName) == "" {
		errors = append(errors, "Staff name is required")
	}

	if strings.TrimSpace(f.ChildName) == "" {
		errors = append(errors, "Child name is required")
	}

	return errors
}
