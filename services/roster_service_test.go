package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/campfield/campops/models"
	"github.com/campfield/campops/repositories/mocks"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// RosterServiceTestSuite covers ledger mutations and their log entries
type RosterServiceTestSuite struct {
	suite.Suite
	service            RosterService
	mockAssignmentRepo *mocks.MockAssignmentRepository
	mockStaffRepo      *mocks.MockStaffRepository
	mockLogRepo        *mocks.MockLogRepository
	appended           []models.LogEntry
}

// SetupTest sets up the test suite before each test. The audit service is
// real so the suite can assert on the exact entries written through it.
func (suite *RosterServiceTestSuite) SetupTest() {
	suite.mockAssignmentRepo = &mocks.MockAssignmentRepository{}
	suite.mockStaffRepo = &mocks.MockStaffRepository{}
	suite.mockLogRepo = &mocks.MockLogRepository{}
	suite.appended = nil

	suite.mockLogRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *models.LogEntry) bool {
		suite.appended = append(suite.appended, *entry)
		return true
	})).Return(nil).Maybe()

	suite.service = NewRosterService(
		suite.mockAssignmentRepo,
		suite.mockStaffRepo,
		NewAuditService(suite.mockLogRepo),
		discardLogger(),
	)
}

func (suite *RosterServiceTestSuite) TestAddChild_Success() {
	sarah := &models.StaffMember{ID: "staff-1", Name: "Sarah", Location: "Art Room"}
	suite.mockStaffRepo.On("GetByName", mock.Anything, "Sarah").Return(sarah, nil)
	suite.mockAssignmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Assignment) bool {
		return a.StaffID == "staff-1" && a.StaffName == "Sarah" && a.ChildName == "Timmy"
	})).Return(nil)

	assignment, err := suite.service.AddChild(context.Background(), &models.AddChildForm{
		StaffName: "Sarah",
		ChildName: "  Timmy  ",
		Location:  "Art Room",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), assignment)
	assert.Equal(suite.T(), "Timmy", assignment.ChildName)

	if assert.Len(suite.T(), suite.appended, 1) {
		assert.Equal(suite.T(), models.ActionAdd, suite.appended[0].Action)
		assert.Equal(suite.T(), "Sarah", suite.appended[0].Staff)
		assert.Equal(suite.T(), "Timmy", suite.appended[0].Child)
		assert.False(suite.T(), suite.appended[0].Timestamp.IsZero())
	}
}

func (suite *RosterServiceTestSuite) TestAddChild_ValidationFailure() {
	assignment, err := suite.service.AddChild(context.Background(), &models.AddChildForm{
		StaffName: "Sarah",
		ChildName: "   ",
	})

	assert.Nil(suite.T(), assignment)
	assert.True(suite.T(), models.IsValidation(err))
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
	assert.Empty(suite.T(), suite.appended)
}

func (suite *RosterServiceTestSuite) TestAddChild_UnknownStaff() {
	suite.mockStaffRepo.On("GetByName", mock.Anything, "Nobody").
		Return(nil, models.NewNotFoundError("staff member", "Nobody"))

	assignment, err := suite.service.AddChild(context.Background(), &models.AddChildForm{
		StaffName: "Nobody",
		ChildName: "Timmy",
	})

	assert.Nil(suite.T(), assignment)
	assert.True(suite.T(), models.IsNotFound(err))
}

func (suite *RosterServiceTestSuite) TestAddChild_LogAppendFailure() {
	// replace the collector with a failing log store
	suite.mockLogRepo = &mocks.MockLogRepository{}
	suite.mockLogRepo.On("Create", mock.Anything, mock.Anything).
		Return(models.NewStoreError("create log entry", errors.New("disk full")))
	suite.service = NewRosterService(
		suite.mockAssignmentRepo,
		suite.mockStaffRepo,
		NewAuditService(suite.mockLogRepo),
		discardLogger(),
	)

	sarah := &models.StaffMember{ID: "staff-1", Name: "Sarah"}
	suite.mockStaffRepo.On("GetByName", mock.Anything, "Sarah").Return(sarah, nil)
	suite.mockAssignmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	assignment, err := suite.service.AddChild(context.Background(), &models.AddChildForm{
		StaffName: "Sarah",
		ChildName: "Timmy",
	})

	// the ledger write stuck, the caller learns the log did not
	assert.NotNil(suite.T(), assignment)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "log append failed")
}

func (suite *RosterServiceTestSuite) TestReassign_Success() {
	assignment := &models.Assignment{ID: "a-1", StaffID: "staff-1", StaffName: "Sarah", ChildName: "Timmy"}
	mike := &models.StaffMember{ID: "staff-2", Name: "Mike", Location: "Pool"}

	suite.mockAssignmentRepo.On("GetByID", mock.Anything, "a-1").Return(assignment, nil)
	suite.mockStaffRepo.On("GetByName", mock.Anything, "Mike").Return(mike, nil)
	suite.mockAssignmentRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Assignment) bool {
		return a.ID == "a-1" && a.StaffID == "staff-2" && a.StaffName == "Mike"
	})).Return(nil)

	moved, err := suite.service.Reassign(context.Background(), "a-1", "Mike")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Mike", moved.StaffName)

	if assert.Len(suite.T(), suite.appended, 1) {
		assert.Equal(suite.T(), models.ActionMove, suite.appended[0].Action)
		assert.Equal(suite.T(), "from Sarah to Mike", suite.appended[0].Notes)
	}
}

func (suite *RosterServiceTestSuite) TestReassign_MissingAssignment() {
	suite.mockAssignmentRepo.On("GetByID", mock.Anything, "gone").
		Return(nil, models.NewNotFoundError("assignment", "gone"))

	moved, err := suite.service.Reassign(context.Background(), "gone", "Mike")

	assert.Nil(suite.T(), moved)
	assert.True(suite.T(), models.IsNotFound(err))
	assert.Empty(suite.T(), suite.appended)
}

func (suite *RosterServiceTestSuite) TestCheckout_Success() {
	assignment := &models.Assignment{ID: "a-1", StaffName: "Sarah", ChildName: "Timmy"}
	suite.mockAssignmentRepo.On("GetByID", mock.Anything, "a-1").Return(assignment, nil)
	suite.mockAssignmentRepo.On("Delete", mock.Anything, "a-1").Return(nil)

	err := suite.service.Checkout(context.Background(), "a-1")

	assert.NoError(suite.T(), err)
	if assert.Len(suite.T(), suite.appended, 1) {
		assert.Equal(suite.T(), models.ActionCheckout, suite.appended[0].Action)
		assert.Equal(suite.T(), "Timmy", suite.appended[0].Child)
	}
}

func (suite *RosterServiceTestSuite) TestCheckout_AlreadyCheckedOut() {
	suite.mockAssignmentRepo.On("GetByID", mock.Anything, "a-1").
		Return(nil, models.NewNotFoundError("assignment", "a-1"))

	err := suite.service.Checkout(context.Background(), "a-1")

	assert.True(suite.T(), models.IsNotFound(err))
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
	assert.Empty(suite.T(), suite.appended)
}

func (suite *RosterServiceTestSuite) TestBulkSwap_MovesSnapshot() {
	mike := &models.StaffMember{ID: "staff-2", Name: "Mike"}
	snapshot := []models.Assignment{
		{ID: "a-1", StaffID: "staff-1", StaffName: "Sarah", ChildName: "Alice"},
		{ID: "a-2", StaffID: "staff-1", StaffName: "Sarah", ChildName: "Timmy"},
	}

	suite.mockStaffRepo.On("GetByName", mock.Anything, "Mike").Return(mike, nil)
	suite.mockAssignmentRepo.On("GetByStaffName", mock.Anything, "Sarah").Return(snapshot, nil)
	suite.mockAssignmentRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Assignment) bool {
		return a.StaffID == "staff-2" && a.StaffName == "Mike"
	})).Return(nil)

	moved, err := suite.service.BulkSwap(context.Background(), &models.BulkSwapForm{
		FromStaff: "Sarah",
		ToStaff:   "Mike",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, moved)

	// one entry per moved child
	if assert.Len(suite.T(), suite.appended, 2) {
		assert.Equal(suite.T(), models.ActionRoleSwap, suite.appended[0].Action)
		assert.Equal(suite.T(), "Alice", suite.appended[0].Child)
		assert.Equal(suite.T(), models.ActionRoleSwap, suite.appended[1].Action)
		assert.Equal(suite.T(), "Timmy", suite.appended[1].Child)
	}
}

func (suite *RosterServiceTestSuite) TestBulkSwap_SkipsConcurrentlyCheckedOut() {
	mike := &models.StaffMember{ID: "staff-2", Name: "Mike"}
	snapshot := []models.Assignment{
		{ID: "a-1", StaffID: "staff-1", StaffName: "Sarah", ChildName: "Alice"},
		{ID: "a-2", StaffID: "staff-1", StaffName: "Sarah", ChildName: "Timmy"},
	}

	suite.mockStaffRepo.On("GetByName", mock.Anything, "Mike").Return(mike, nil)
	suite.mockAssignmentRepo.On("GetByStaffName", mock.Anything, "Sarah").Return(snapshot, nil)
	suite.mockAssignmentRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Assignment) bool {
		return a.ID == "a-1"
	})).Return(models.NewNotFoundError("assignment", "a-1"))
	suite.mockAssignmentRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Assignment) bool {
		return a.ID == "a-2"
	})).Return(nil)

	moved, err := suite.service.BulkSwap(context.Background(), &models.BulkSwapForm{
		FromStaff: "Sarah",
		ToStaff:   "Mike",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, moved)

	if assert.Len(suite.T(), suite.appended, 1) {
		assert.Equal(suite.T(), "Timmy", suite.appended[0].Child)
	}
}

func (suite *RosterServiceTestSuite) TestBulkSwap_SameStaffRejected() {
	moved, err := suite.service.BulkSwap(context.Background(), &models.BulkSwapForm{
		FromStaff: "Sarah",
		ToStaff:   "sarah",
	})

	assert.Equal(suite.T(), 0, moved)
	assert.True(suite.T(), models.IsValidation(err))
	suite.mockStaffRepo.AssertNotCalled(suite.T(), "GetByName", mock.Anything, mock.Anything)
}

func (suite *RosterServiceTestSuite) TestCareAction_AppendsOnly() {
	err := suite.service.CareAction(context.Background(), &models.CareActionForm{
		Action:    models.ActionSnack,
		StaffName: "Sarah",
		ChildName: "Timmy",
	})

	assert.NoError(suite.T(), err)
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
	suite.mockAssignmentRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)

	if assert.Len(suite.T(), suite.appended, 1) {
		assert.Equal(suite.T(), models.ActionSnack, suite.appended[0].Action)
	}
}

func (suite *RosterServiceTestSuite) TestCareAction_UnknownActionRejected() {
	err := suite.service.CareAction(context.Background(), &models.CareActionForm{
		Action:    "Juggle",
		StaffName: "Sarah",
		ChildName: "Timmy",
	})

	assert.True(suite.T(), models.IsValidation(err))
	assert.Empty(suite.T(), suite.appended)
}

// TestDayFlow walks a child's day through the service layer and checks
// the log tells the whole story in order.
func (suite *RosterServiceTestSuite) TestDayFlow() {
	ctx := context.Background()
	sarah := &models.StaffMember{ID: "staff-1", Name: "Sarah"}
	mike := &models.StaffMember{ID: "staff-2", Name: "Mike"}

	suite.mockStaffRepo.On("GetByName", mock.Anything, "Sarah").Return(sarah, nil)
	suite.mockStaffRepo.On("GetByName", mock.Anything, "Mike").Return(mike, nil)

	suite.mockAssignmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Assignment) bool {
		a.ID = "a-1"
		return true
	})).Return(nil)
	suite.mockAssignmentRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	suite.mockAssignmentRepo.On("Delete", mock.Anything, "a-1").Return(nil)

	assignment, err := suite.service.AddChild(ctx, &models.AddChildForm{StaffName: "Sarah", ChildName: "Timmy"})
	assert.NoError(suite.T(), err)
	suite.mockAssignmentRepo.On("GetByID", mock.Anything, "a-1").Return(assignment, nil)

	err = suite.service.CareAction(ctx, &models.CareActionForm{Action: models.ActionSnack, StaffName: "Sarah", ChildName: "Timmy"})
	assert.NoError(suite.T(), err)

	_, err = suite.service.Reassign(ctx, assignment.ID, "Mike")
	assert.NoError(suite.T(), err)

	err = suite.service.Checkout(ctx, assignment.ID)
	assert.NoError(suite.T(), err)

	var actions []string
	for _, entry := range suite.appended {
		actions = append(actions, entry.Action)
	}
	assert.Equal(suite.T(), []string{
		models.ActionAdd,
		models.ActionSnack,
		models.ActionMove,
		models.ActionCheckout,
	}, actions)
}

// TestRunRosterServiceTestSuite runs the test suite
func TestRunRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
