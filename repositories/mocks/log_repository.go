package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campfield/campops/models"
)

// MockLogRepository is a mock implementation of repositories.LogRepository
type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogRepository) List(ctx context.Context, limit int) ([]models.LogEntry, error) {
	args := m.Called(ctx, limit)
	var entries []models.LogEntry
	if v := args.Get(0); v != nil {
		entries = v.([]models.LogEntry)
	}
	return entries, args.Error(1)
}

func (m *MockLogRepository) CountByStaff(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	var counts map[string]int
	if v := args.Get(0); v != nil {
		counts = v.(map[string]int)
	}
	return counts, args.Error(1)
}

func (m *MockLogRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
