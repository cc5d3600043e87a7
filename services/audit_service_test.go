package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campfield/campops/models"
	"github.com/campfield/campops/repositories/mocks"
)

func TestAuditAppend_RequiresAction(t *testing.T) {
	mockLogRepo := &mocks.MockLogRepository{}
	service := NewAuditService(mockLogRepo)

	err := service.Append(context.Background(), "   ", "Sarah", "Timmy", "")

	assert.True(t, models.IsValidation(err))
	mockLogRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuditAppend_StampsWriteTime(t *testing.T) {
	mockLogRepo := &mocks.MockLogRepository{}
	mockLogRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.LogEntry) bool {
		return !e.Timestamp.IsZero() && e.Action == models.ActionBathroom
	})).Return(nil)
	service := NewAuditService(mockLogRepo)

	err := service.Append(context.Background(), models.ActionBathroom, "Sarah", "Timmy", "")

	assert.NoError(t, err)
}

func TestAuditList_DerivesDisplayTimestamp(t *testing.T) {
	mockLogRepo := &mocks.MockLogRepository{}
	mockLogRepo.On("List", mock.Anything, 0).Return([]models.LogEntry{
		{ID: 2, Timestamp: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), Action: models.ActionAdd},
		{ID: 1, Timestamp: time.Time{}, Action: models.ActionNote},
	}, nil)
	service := NewAuditService(mockLogRepo)

	entries, err := service.List(context.Background(), 0)

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].Display)
	// an unknown write time renders blank instead of a zero-year date
	assert.Empty(t, entries[1].Display)
}
