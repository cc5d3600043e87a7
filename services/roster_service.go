package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/campfield/campops/models"
	"github.com/campfield/campops/repositories"
)

// RosterService maintains the current child→staff mapping. Every
// mutation appends one audit log entry; a log append failure after a
// successful ledger write is surfaced to the caller rather than rolled
// back (the two writes are independent store calls).
type RosterService interface {
	ListByStaff(ctx context.Context, staffName string) ([]models.Assignment, error)
	ListAll(ctx context.Context) ([]models.Assignment, error)
	AddChild(ctx context.Context, form *models.AddChildForm) (*models.Assignment, error)
	Reassign(ctx context.Context, assignmentID, newStaffName string) (*models.Assignment, error)
	Checkout(ctx context.Context, assignmentID string) error
	BulkSwap(ctx context.Context, form *models.BulkSwapForm) (int, error)
	CareAction(ctx context.Context, form *models.CareActionForm) error
}

// rosterService implements RosterService interface
type rosterService struct {
	assignmentRepo repositories.AssignmentRepository
	staffRepo      repositories.StaffRepository
	audit          AuditService
	log            *logrus.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(
	assignmentRepo repositories.AssignmentRepository,
	staffRepo repositories.StaffRepository,
	audit AuditService,
	log *logrus.Logger,
) RosterService {
	return &rosterService{
		assignmentRepo: assignmentRepo,
		staffRepo:      staffRepo,
		audit:          audit,
		log:            log,
	}
}

// ListByStaff retrieves the assignments under a staff display name,
// sorted by child name. Matching on the denormalized name keeps rows
// visible even if the staff record was administratively deleted.
func (s *rosterService) ListByStaff(ctx context.Context, staffName string) ([]models.Assignment, error) {
	return s.assignmentRepo.GetByStaffName(ctx, staffName)
}

// ListAll retrieves every current assignment
func (s *rosterService) ListAll(ctx context.Context) ([]models.Assignment, error) {
	return s.assignmentRepo.GetAll(ctx)
}

// AddChild checks a child in under a staff member. Child name is trimmed
// and must be non-empty; duplicate child names are legal.
func (s *rosterService) AddChild(ctx context.Context, form *models.AddChildForm) (*models.Assignment, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	staff, err := s.staffRepo.GetByName(ctx, strings.TrimSpace(form.StaffName))
	if err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		StaffID:   staff.ID,
		StaffName: staff.Name,
		ChildName: strings.TrimSpace(form.ChildName),
		Location:  strings.TrimSpace(form.Location),
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, models.ActionAdd, staff.Name, assignment.ChildName, assignment.Location); err != nil {
		s.log.WithError(err).WithField("child", assignment.ChildName).Warn("child added but log append failed")
		return assignment, fmt.Errorf("child added but log append failed: %w", err)
	}

	return assignment, nil
}

// Reassign moves one assignment to a new staff member. A concurrently
// checked-out id surfaces as NotFound; no lock is held between read and
// write, so lost updates between sessions are an accepted risk.
func (s *rosterService) Reassign(ctx context.Context, assignmentID, newStaffName string) (*models.Assignment, error) {
	form := &models.ReassignForm{NewStaffName: newStaffName}
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	staff, err := s.staffRepo.GetByName(ctx, strings.TrimSpace(newStaffName))
	if err != nil {
		return nil, err
	}

	previousStaff := assignment.StaffName
	assignment.StaffID = staff.ID
	assignment.StaffName = staff.Name

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	notes := fmt.Sprintf("from %s to %s", previousStaff, staff.Name)
	if err := s.audit.Append(ctx, models.ActionMove, staff.Name, assignment.ChildName, notes); err != nil {
		s.log.WithError(err).WithField("child", assignment.ChildName).Warn("child moved but log append failed")
		return assignment, fmt.Errorf("child moved but log append failed: %w", err)
	}

	return assignment, nil
}

// Checkout deletes the assignment. A missing id (already checked out by
// another session) comes back as NotFound for the boundary to turn into
// a friendly message.
func (s *rosterService) Checkout(ctx context.Context, assignmentID string) error {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}

	if err := s.assignmentRepo.Delete(ctx, assignmentID); err != nil {
		return err
	}

	if err := s.audit.Append(ctx, models.ActionCheckout, assignment.StaffName, assignment.ChildName, ""); err != nil {
		s.log.WithError(err).WithField("child", assignment.ChildName).Warn("child checked out but log append failed")
		return fmt.Errorf("child checked out but log append failed: %w", err)
	}

	return nil
}

// BulkSwap reassigns everything currently under FromStaff to ToStaff and
// returns the count moved. The snapshot read at call time is what moves;
// a row added after the read stays put, and a row checked out mid-loop is
// skipped. One log entry is appended per moved child.
func (s *rosterService) BulkSwap(ctx context.Context, form *models.BulkSwapForm) (int, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return 0, models.NewValidationError(errs...)
	}

	target, err := s.staffRepo.GetByName(ctx, strings.TrimSpace(form.ToStaff))
	if err != nil {
		return 0, err
	}

	snapshot, err := s.assignmentRepo.GetByStaffName(ctx, strings.TrimSpace(form.FromStaff))
	if err != nil {
		return 0, err
	}

	moved := 0
	for i := range snapshot {
		assignment := snapshot[i]
		previousStaff := assignment.StaffName
		assignment.StaffID = target.ID
		assignment.StaffName = target.Name

		if err := s.assignmentRepo.Update(ctx, &assignment); err != nil {
			if models.IsNotFound(err) {
				// checked out concurrently, nothing to move
				continue
			}
			return moved, err
		}
		moved++

		notes := fmt.Sprintf("from %s to %s", previousStaff, target.Name)
		if err := s.audit.Append(ctx, models.ActionRoleSwap, target.Name, assignment.ChildName, notes); err != nil {
			s.log.WithError(err).WithField("child", assignment.ChildName).Warn("swap recorded but log append failed")
			return moved, fmt.Errorf("swap recorded but log append failed: %w", err)
		}
	}

	return moved, nil
}

// CareAction logs a routine care event (snack, water, bathroom, ...)
// without touching the ledger.
func (s *rosterService) CareAction(ctx context.Context, form *models.CareActionForm) error {
	if errs := form.Validate(); len(errs) > 0 {
		return models.NewValidationError(errs...)
	}

	return s.audit.Append(ctx, form.Action, strings.TrimSpace(form.StaffName), strings.TrimSpace(form.ChildName), form.Notes)
}
