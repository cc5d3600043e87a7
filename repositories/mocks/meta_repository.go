package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campfield/campops/models"
)

// MockMetaRepository is a mock implementation of repositories.MetaRepository
type MockMetaRepository struct {
	mock.Mock
}

func (m *MockMetaRepository) GetResetState(ctx context.Context) (*models.ResetState, error) {
	args := m.Called(ctx)
	var state *models.ResetState
	if v := args.Get(0); v != nil {
		state = v.(*models.ResetState)
	}
	return state, args.Error(1)
}

func (m *MockMetaRepository) SetLastResetDate(ctx context.Context, date string) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}
