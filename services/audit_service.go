package services

import (
	"context"
	"strings"

	"github.com/campfield/campops/metrics"
	"github.com/campfield/campops/models"
	"github.com/campfield/campops/repositories"
	"github.com/campfield/campops/timefmt"
)

// AuditService is the append-only event recorder. Every mutating action
// on the ledger goes through Append exactly once; once an assignment is
// deleted the log is the sole source of history.
type AuditService interface {
	Append(ctx context.Context, action, staff, child, notes string) error
	List(ctx context.Context, limit int) ([]models.LogEntry, error)
	CountsByStaff(ctx context.Context) (map[string]int, error)
}

// auditService implements AuditService interface
type auditService struct {
	logRepo repositories.LogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(logRepo repositories.LogRepository) AuditService {
	return &auditService{logRepo: logRepo}
}

// Append records one immutable event with the wall-clock time of the
// write. A failed append is returned to the caller, never swallowed.
func (s *auditService) Append(ctx context.Context, action, staff, child, notes string) error {
	if strings.TrimSpace(action) == "" {
		return models.NewValidationError("Action is required")
	}

	entry := &models.LogEntry{
		Timestamp: timefmt.Now(),
		Action:    action,
		Staff:     staff,
		Child:     child,
		Notes:     notes,
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues(action).Inc()
	return nil
}

// List retrieves log entries newest first with the display timestamp
// derived for rendering.
func (s *auditService) List(ctx context.Context, limit int) ([]models.LogEntry, error) {
	entries, err := s.logRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Display = timefmt.Format(entries[i].Timestamp)
	}

	return entries, nil
}

// CountsByStaff returns log entry counts per staff display name
func (s *auditService) CountsByStaff(ctx context.Context) (map[string]int, error) {
	return s.logRepo.CountByStaff(ctx)
}
