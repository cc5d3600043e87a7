package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Staff      StaffRepository
	Assignment AssignmentRepository
	Log        LogRepository
	Incident   IncidentRepository
	Memo       MemoRepository
	Meta       MetaRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Staff:      NewStaffRepository(db),
		Assignment: NewAssignmentRepository(db),
		Log:        NewLogRepository(db),
		Incident:   NewIncidentRepository(db),
		Memo:       NewMemoRepository(db),
		Meta:       NewMetaRepository(db),
	}
}
