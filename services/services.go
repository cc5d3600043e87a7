package services

import (
	"github.com/sirupsen/logrus"

	"github.com/campfield/campops/repositories"
)

// Services holds all service instances
type Services struct {
	Staff    StaffService
	Roster   RosterService
	Audit    AuditService
	Incident IncidentService
	Memo     MemoService
	Reset    ResetService
	Summary  SummaryService
	Import   ImportService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, log *logrus.Logger) *Services {
	audit := NewAuditService(repos.Log)

	return &Services{
		Staff:    NewStaffService(repos.Staff, repos.Assignment, audit),
		Roster:   NewRosterService(repos.Assignment, repos.Staff, audit, log),
		Audit:    audit,
		Incident: NewIncidentService(repos.Incident),
		Memo:     NewMemoService(repos.Memo),
		Reset:    NewResetService(repos.Assignment, repos.Meta, log),
		Summary:  NewSummaryService(repos.Staff, repos.Assignment, repos.Log, repos.Incident, repos.Memo),
		Import:   NewImportService(repos, log),
	}
}
