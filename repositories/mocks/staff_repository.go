// Code in this package provides hand-written testify mocks for the
// repository interfaces, used by the service test suites.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campfield/campops/models"
)

// MockStaffRepository is a mock implementation of repositories.StaffRepository
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) GetAll(ctx context.Context) ([]models.StaffMember, error) {
	args := m.Called(ctx)
	var members []models.StaffMember
	if v := args.Get(0); v != nil {
		members = v.([]models.StaffMember)
	}
	return members, args.Error(1)
}

func (m *MockStaffRepository) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	args := m.Called(ctx, id)
	var member *models.StaffMember
	if v := args.Get(0); v != nil {
		member = v.(*models.StaffMember)
	}
	return member, args.Error(1)
}

func (m *MockStaffRepository) GetByName(ctx context.Context, name string) (*models.StaffMember, error) {
	args := m.Called(ctx, name)
	var member *models.StaffMember
	if v := args.Get(0); v != nil {
		member = v.(*models.StaffMember)
	}
	return member, args.Error(1)
}

func (m *MockStaffRepository) Create(ctx context.Context, member *models.StaffMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockStaffRepository) Update(ctx context.Context, member *models.StaffMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockStaffRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStaffRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
