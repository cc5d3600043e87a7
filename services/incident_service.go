package services

import (
	"context"
	"strings"

	"github.com/campfield/campops/metrics"
	"github.com/campfield/campops/models"
	"github.com/campfield/campops/repositories"
	"github.com/campfield/campops/timefmt"
)

// IncidentService records safety-relevant reports. Same append-only
// lifecycle as the audit log, kept separate because incidents are
// reviewed on their own.
type IncidentService interface {
	Report(ctx context.Context, form *models.IncidentForm) (*models.IncidentEntry, error)
	List(ctx context.Context, limit int) ([]models.IncidentEntry, error)
}

// incidentService implements IncidentService interface
type incidentService struct {
	incidentRepo repositories.IncidentRepository
}

// NewIncidentService creates a new incident service
func NewIncidentService(incidentRepo repositories.IncidentRepository) IncidentService {
	return &incidentService{incidentRepo: incidentRepo}
}

// Report appends an incident entry stamped with the wall-clock time
func (s *incidentService) Report(ctx context.Context, form *models.IncidentForm) (*models.IncidentEntry, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	entry := &models.IncidentEntry{
		Timestamp: timefmt.Now(),
		Staff:     strings.TrimSpace(form.StaffName),
		Child:     strings.TrimSpace(form.ChildName),
		Note:      form.Note,
	}

	if err := s.incidentRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	metrics.IncidentsTotal.Inc()
	return entry, nil
}

// List retrieves incidents newest first with display timestamps derived
func (s *incidentService) List(ctx context.Context, limit int) ([]models.IncidentEntry, error) {
	entries, err := s.incidentRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Display = timefmt.Format(entries[i].Timestamp)
	}

	return entries, nil
}
