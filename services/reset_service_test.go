package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/campfield/campops/models"
	"github.com/campfield/campops/repositories/mocks"
)

// ResetServiceTestSuite covers the once-per-day ledger truncation
type ResetServiceTestSuite struct {
	suite.Suite
	service            ResetService
	mockAssignmentRepo *mocks.MockAssignmentRepository
	mockMetaRepo       *mocks.MockMetaRepository
}

// SetupTest sets up the test suite before each test
func (suite *ResetServiceTestSuite) SetupTest() {
	suite.mockAssignmentRepo = &mocks.MockAssignmentRepository{}
	suite.mockMetaRepo = &mocks.MockMetaRepository{}
	suite.service = NewResetService(suite.mockAssignmentRepo, suite.mockMetaRepo, discardLogger())
}

func (suite *ResetServiceTestSuite) TestEnsureCurrent_StaleMarkerTruncates() {
	suite.mockMetaRepo.On("GetResetState", mock.Anything).
		Return(&models.ResetState{ID: 1, LastResetDate: "2024-05-31"}, nil)
	suite.mockAssignmentRepo.On("DeleteAll", mock.Anything).Return(4, nil)
	suite.mockMetaRepo.On("SetLastResetDate", mock.Anything, "2024-06-01").Return(nil)

	ran, err := suite.service.EnsureCurrent(context.Background(), "2024-06-01")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), ran)
	suite.mockAssignmentRepo.AssertCalled(suite.T(), "DeleteAll", mock.Anything)
	suite.mockMetaRepo.AssertCalled(suite.T(), "SetLastResetDate", mock.Anything, "2024-06-01")
}

func (suite *ResetServiceTestSuite) TestEnsureCurrent_FreshMarkerNoOp() {
	suite.mockMetaRepo.On("GetResetState", mock.Anything).
		Return(&models.ResetState{ID: 1, LastResetDate: "2024-06-01"}, nil)

	ran, err := suite.service.EnsureCurrent(context.Background(), "2024-06-01")

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), ran)
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "DeleteAll", mock.Anything)
	suite.mockMetaRepo.AssertNotCalled(suite.T(), "SetLastResetDate", mock.Anything, mock.Anything)
}

func (suite *ResetServiceTestSuite) TestEnsureCurrent_EmptySeedMarkerTruncates() {
	// a fresh install has never reset, so the first request of the day runs one
	suite.mockMetaRepo.On("GetResetState", mock.Anything).
		Return(&models.ResetState{ID: 1, LastResetDate: ""}, nil)
	suite.mockAssignmentRepo.On("DeleteAll", mock.Anything).Return(0, nil)
	suite.mockMetaRepo.On("SetLastResetDate", mock.Anything, "2024-06-01").Return(nil)

	ran, err := suite.service.EnsureCurrent(context.Background(), "2024-06-01")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), ran)
}

func (suite *ResetServiceTestSuite) TestEnsureCurrent_StateReadFailure() {
	suite.mockMetaRepo.On("GetResetState", mock.Anything).
		Return(nil, models.NewStoreError("get reset state", errors.New("locked")))

	ran, err := suite.service.EnsureCurrent(context.Background(), "2024-06-01")

	assert.False(suite.T(), ran)
	assert.True(suite.T(), models.IsStoreUnavailable(err))
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "DeleteAll", mock.Anything)
}

func (suite *ResetServiceTestSuite) TestForce_TruncatesAndMovesMarker() {
	suite.mockAssignmentRepo.On("DeleteAll", mock.Anything).Return(7, nil)
	suite.mockMetaRepo.On("SetLastResetDate", mock.Anything, "2024-06-01").Return(nil)

	dropped, err := suite.service.Force(context.Background(), "2024-06-01")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, dropped)
}

func (suite *ResetServiceTestSuite) TestForce_MarkerWriteFailureReportsDrop() {
	suite.mockAssignmentRepo.On("DeleteAll", mock.Anything).Return(7, nil)
	suite.mockMetaRepo.On("SetLastResetDate", mock.Anything, "2024-06-01").
		Return(models.NewStoreError("set last reset date", errors.New("locked")))

	dropped, err := suite.service.Force(context.Background(), "2024-06-01")

	// rows are already gone even though the marker write failed
	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), 7, dropped)
}

// TestRunResetServiceTestSuite runs the test suite
func TestRunResetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResetServiceTestSuite))
}
