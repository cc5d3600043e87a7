package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campfield/campops/models"
)

// MockAssignmentRepository is a mock implementation of repositories.AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) GetAll(ctx context.Context) ([]models.Assignment, error) {
	args := m.Called(ctx)
	var assignments []models.Assignment
	if v := args.Get(0); v != nil {
		assignments = v.([]models.Assignment)
	}
	return assignments, args.Error(1)
}

func (m *MockAssignmentRepository) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	args := m.Called(ctx, id)
	var assignment *models.Assignment
	if v := args.Get(0); v != nil {
		assignment = v.(*models.Assignment)
	}
	return assignment, args.Error(1)
}

func (m *MockAssignmentRepository) GetByStaffName(ctx context.Context, staffName string) ([]models.Assignment, error) {
	args := m.Called(ctx, staffName)
	var assignments []models.Assignment
	if v := args.Get(0); v != nil {
		assignments = v.([]models.Assignment)
	}
	return assignments, args.Error(1)
}

func (m *MockAssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssignmentRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAssignmentRepository) RenameStaff(ctx context.Context, staffID, newName string) error {
	args := m.Called(ctx, staffID, newName)
	return args.Error(0)
}

func (m *MockAssignmentRepository) CountByStaff(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	var counts map[string]int
	if v := args.Get(0); v != nil {
		counts = v.(map[string]int)
	}
	return counts, args.Error(1)
}
