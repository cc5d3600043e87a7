package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campfield/campops/models"
)

// MockMemoRepository is a mock implementation of repositories.MemoRepository
type MockMemoRepository struct {
	mock.Mock
}

func (m *MockMemoRepository) GetAll(ctx context.Context) ([]models.Memo, error) {
	args := m.Called(ctx)
	var memos []models.Memo
	if v := args.Get(0); v != nil {
		memos = v.([]models.Memo)
	}
	return memos, args.Error(1)
}

func (m *MockMemoRepository) GetByID(ctx context.Context, id string) (*models.Memo, error) {
	args := m.Called(ctx, id)
	var memo *models.Memo
	if v := args.Get(0); v != nil {
		memo = v.(*models.Memo)
	}
	return memo, args.Error(1)
}

func (m *MockMemoRepository) FindByStaffDate(ctx context.Context, staffName, date string) (*models.Memo, error) {
	args := m.Called(ctx, staffName, date)
	var memo *models.Memo
	if v := args.Get(0); v != nil {
		memo = v.(*models.Memo)
	}
	return memo, args.Error(1)
}

func (m *MockMemoRepository) Create(ctx context.Context, memo *models.Memo) error {
	args := m.Called(ctx, memo)
	return args.Error(0)
}

func (m *MockMemoRepository) Update(ctx context.Context, memo *models.Memo) error {
	args := m.Called(ctx, memo)
	return args.Error(0)
}

func (m *MockMemoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemoRepository) CountByDate(ctx context.Context, date string) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}
