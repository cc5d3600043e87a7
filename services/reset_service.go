package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/campfield/campops/metrics"
	"github.com/campfield/campops/repositories"
)

// ResetService drops all current assignments once per calendar day. The
// compare-then-truncate sequence is deliberately blunt and non-atomic:
// two sessions observing the same stale marker can truncate twice, which
// is harmless because the truncate is idempotent.
type ResetService interface {
	EnsureCurrent(ctx context.Context, today string) (bool, error)
	Force(ctx context.Context, today string) (int, error)
}

// resetService implements ResetService interface
type resetService struct {
	assignmentRepo repositories.AssignmentRepository
	metaRepo       repositories.MetaRepository
	log            *logrus.Logger
}

// NewResetService creates a new reset service
func NewResetService(
	assignmentRepo repositories.AssignmentRepository,
	metaRepo repositories.MetaRepository,
	log *logrus.Logger,
) ResetService {
	return &resetService{
		assignmentRepo: assignmentRepo,
		metaRepo:       metaRepo,
		log:            log,
	}
}

// EnsureCurrent compares the last-reset marker to today and truncates the
// assignment table when stale. Returns whether a reset ran.
func (s *resetService) EnsureCurrent(ctx context.Context, today string) (bool, error) {
	state, err := s.metaRepo.GetResetState(ctx)
	if err != nil {
		return false, err
	}

	if !state.IsStale(today) {
		return false, nil
	}

	dropped, err := s.Force(ctx, today)
	if err != nil {
		return false, err
	}

	s.log.WithFields(logrus.Fields{
		"date":    today,
		"dropped": dropped,
	}).Info("daily reset performed")

	return true, nil
}

// Force truncates the assignment table and moves the marker to today
// regardless of its current value. Returns the number of rows dropped.
func (s *resetService) Force(ctx context.Context, today string) (int, error) {
	dropped, err := s.assignmentRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.metaRepo.SetLastResetDate(ctx, today); err != nil {
		return dropped, err
	}

	metrics.DailyResetsTotal.Inc()
	return dropped, nil
}
