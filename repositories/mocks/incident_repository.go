package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campfield/campops/models"
)

// MockIncidentRepository is a mock implementation of repositories.IncidentRepository
type MockIncidentRepository struct {
	mock.Mock
}

func (m *MockIncidentRepository) Create(ctx context.Context, entry *models.IncidentEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockIncidentRepository) List(ctx context.Context, limit int) ([]models.IncidentEntry, error) {
	args := m.Called(ctx, limit)
	var entries []models.IncidentEntry
	if v := args.Get(0); v != nil {
		entries = v.([]models.IncidentEntry)
	}
	return entries, args.Error(1)
}

func (m *MockIncidentRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
