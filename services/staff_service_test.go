package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/campfield/campops/models"
	"github.com/campfield/campops/repositories/mocks"
)

// StaffServiceTestSuite covers the staff registry
type StaffServiceTestSuite struct {
	suite.Suite
	service            StaffService
	mockStaffRepo      *mocks.MockStaffRepository
	mockAssignmentRepo *mocks.MockAssignmentRepository
	mockLogRepo        *mocks.MockLogRepository
}

// SetupTest sets up the test suite before each test
func (suite *StaffServiceTestSuite) SetupTest() {
	suite.mockStaffRepo = &mocks.MockStaffRepository{}
	suite.mockAssignmentRepo = &mocks.MockAssignmentRepository{}
	suite.mockLogRepo = &mocks.MockLogRepository{}
	suite.mockLogRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

	suite.service = NewStaffService(
		suite.mockStaffRepo,
		suite.mockAssignmentRepo,
		NewAuditService(suite.mockLogRepo),
	)
}

func (suite *StaffServiceTestSuite) TestCreate_Success() {
	suite.mockStaffRepo.On("GetByName", mock.Anything, "Sarah").
		Return(nil, models.NewNotFoundError("staff member", "Sarah"))
	suite.mockStaffRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *models.StaffMember) bool {
		return m.Name == "Sarah" && m.Location == "Art Room"
	})).Return(nil)

	member, err := suite.service.Create(context.Background(), &models.StaffForm{
		Name:     "  Sarah  ",
		Location: "Art Room",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sarah", member.Name)
}

func (suite *StaffServiceTestSuite) TestCreate_DuplicateNameRejected() {
	suite.mockStaffRepo.On("GetByName", mock.Anything, "Sarah").
		Return(&models.StaffMember{ID: "staff-1", Name: "Sarah"}, nil)

	member, err := suite.service.Create(context.Background(), &models.StaffForm{Name: "Sarah"})

	assert.Nil(suite.T(), member)
	assert.True(suite.T(), models.IsValidation(err))
	suite.mockStaffRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *StaffServiceTestSuite) TestUpdateLocation_LogsTheChange() {
	member := &models.StaffMember{ID: "staff-1", Name: "Sarah", Location: "Art Room"}
	suite.mockStaffRepo.On("GetByID", mock.Anything, "staff-1").Return(member, nil)
	suite.mockStaffRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *models.StaffMember) bool {
		return m.Location == "Pool"
	})).Return(nil)

	updated, err := suite.service.UpdateLocation(context.Background(), "staff-1", "Pool")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Pool", updated.Location)
	suite.mockLogRepo.AssertCalled(suite.T(), "Create", mock.Anything, mock.MatchedBy(func(e *models.LogEntry) bool {
		return e.Action == models.ActionLocationUpdate && e.Staff == "Sarah" && e.Notes == "Pool"
	}))
}

func (suite *StaffServiceTestSuite) TestRename_RewritesLedgerNames() {
	member := &models.StaffMember{ID: "staff-1", Name: "Sarah"}
	suite.mockStaffRepo.On("GetByID", mock.Anything, "staff-1").Return(member, nil)
	suite.mockStaffRepo.On("GetByName", mock.Anything, "Sarah B").
		Return(nil, models.NewNotFoundError("staff member", "Sarah B"))
	suite.mockStaffRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *models.StaffMember) bool {
		return m.Name == "Sarah B"
	})).Return(nil)
	suite.mockAssignmentRepo.On("RenameStaff", mock.Anything, "staff-1", "Sarah B").Return(nil)

	renamed, err := suite.service.Rename(context.Background(), "staff-1", "Sarah B")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sarah B", renamed.Name)
	suite.mockAssignmentRepo.AssertCalled(suite.T(), "RenameStaff", mock.Anything, "staff-1", "Sarah B")
}

func (suite *StaffServiceTestSuite) TestRename_CollisionRejected() {
	member := &models.StaffMember{ID: "staff-1", Name: "Sarah"}
	suite.mockStaffRepo.On("GetByID", mock.Anything, "staff-1").Return(member, nil)
	suite.mockStaffRepo.On("GetByName", mock.Anything, "Mike").
		Return(&models.StaffMember{ID: "staff-2", Name: "Mike"}, nil)

	renamed, err := suite.service.Rename(context.Background(), "staff-1", "Mike")

	assert.Nil(suite.T(), renamed)
	assert.True(suite.T(), models.IsValidation(err))
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "RenameStaff", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StaffServiceTestSuite) TestDelete_NoCascade() {
	suite.mockStaffRepo.On("Delete", mock.Anything, "staff-1").Return(nil)

	err := suite.service.Delete(context.Background(), "staff-1")

	assert.NoError(suite.T(), err)
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "DeleteAll", mock.Anything)
}

// TestRunStaffServiceTestSuite runs the test suite
func TestRunStaffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}
