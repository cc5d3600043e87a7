package services

import (
	"context"
	"strings"

	"github.com/campfield/campops/models"
	"github.com/campfield/campops/repositories"
)

// StaffService interface defines staff registry business logic
type StaffService interface {
	GetAll(ctx context.Context) ([]models.StaffMember, error)
	GetByID(ctx context.Context, id string) (*models.StaffMember, error)
	Create(ctx context.Context, form *models.StaffForm) (*models.StaffMember, error)
	UpdateLocation(ctx context.Context, id, location string) (*models.StaffMember, error)
	Rename(ctx context.Context, id, newName string) (*models.StaffMember, error)
	Delete(ctx context.Context, id string) error
}

// staffService implements StaffService interface
type staffService struct {
	staffRepo      repositories.StaffRepository
	assignmentRepo repositories.AssignmentRepository
	audit          AuditService
}

// NewStaffService creates a new staff service
func NewStaffService(
	staffRepo repositories.StaffRepository,
	assignmentRepo repositories.AssignmentRepository,
	audit AuditService,
) StaffService {
	return &staffService{
		staffRepo:      staffRepo,
		assignmentRepo: assignmentRepo,
		audit:          audit,
	}
}

// GetAll retrieves all staff members
func (s *staffService) GetAll(ctx context.Context) ([]models.StaffMember, error) {
	return s.staffRepo.GetAll(ctx)
}

// GetByID retrieves a staff member by id
func (s *staffService) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	return s.staffRepo.GetByID(ctx, id)
}

// Create adds a staff member. Display names are the unique key staff are
// selected by, so duplicates are rejected by lookup-before-write.
func (s *staffService) Create(ctx context.Context, form *models.StaffForm) (*models.StaffMember, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	name := strings.TrimSpace(form.Name)
	existing, err := s.staffRepo.GetByName(ctx, name)
	if err != nil && !models.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("A staff member named " + name + " already exists")
	}

	member := &models.StaffMember{
		Name:     name,
		Location: strings.TrimSpace(form.Location),
	}

	if err := s.staffRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// UpdateLocation changes a staff member's location and logs the change
func (s *staffService) UpdateLocation(ctx context.Context, id, location string) (*models.StaffMember, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Location = strings.TrimSpace(location)
	if err := s.staffRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, models.ActionLocationUpdate, member.Name, "", member.Location); err != nil {
		return member, err
	}

	return member, nil
}

// Rename changes a staff member's display name and rewrites the
// denormalized name on every assignment referencing the stable id, so the
// ledger survives the rename.
func (s *staffService) Rename(ctx context.Context, id, newName string) (*models.StaffMember, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, models.NewValidationError("Name is required")
	}

	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if newName != member.Name {
		existing, err := s.staffRepo.GetByName(ctx, newName)
		if err != nil && !models.IsNotFound(err) {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewValidationError("A staff member named " + newName + " already exists")
		}
	}

	member.Name = newName
	if err := s.staffRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	if err := s.assignmentRepo.RenameStaff(ctx, member.ID, newName); err != nil {
		return member, err
	}

	return member, nil
}

// Delete removes a staff member. This is the administrative override: no
// cascade, existing assignments keep their denormalized staff name.
func (s *staffService) Delete(ctx context.Context, id string) error {
	return s.staffRepo.Delete(ctx, id)
}
