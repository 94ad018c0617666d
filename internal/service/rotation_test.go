package service_test

import (
	"testing"
	"time"

	"lead-rotation-backend/internal/database/models"
	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/mocks"
	"lead-rotation-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RotationServiceTestSuite defines the test suite for RotationService
type RotationServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockQueueRepo   *mocks.MockQueueRepositoryInterface
	mockAgentRepo   *mocks.MockAgentRepositoryInterface
	mockRosterRepo  *mocks.MockRosterRepositoryInterface
	mockAbsenceRepo *mocks.MockAbsenceRepositoryInterface
	rotationService *service.RotationService
	queue           *models.Queue
}

// SetupTest sets up the test suite
func (suite *RotationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockQueueRepo = mocks.NewMockQueueRepositoryInterface(suite.ctrl)
	suite.mockAgentRepo = mocks.NewMockAgentRepositoryInterface(suite.ctrl)
	suite.mockRosterRepo = mocks.NewMockRosterRepositoryInterface(suite.ctrl)
	suite.mockAbsenceRepo = mocks.NewMockAbsenceRepositoryInterface(suite.ctrl)
	suite.queue = &models.Queue{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Inbound Leads",
		IsActive:  true,
	}

	suite.rotationService = service.NewRotationService(
		suite.mockQueueRepo,
		suite.mockAgentRepo,
		suite.mockRosterRepo,
		suite.mockAbsenceRepo,
	)
}

// TearDownTest cleans up after each test
func (suite *RotationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestAdvance tests a successful head rotation
func (suite *RotationServiceTestSuite) TestAdvance() {
	agent := models.Agent{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Ana Souza",
		Email:     "ana@test.com",
	}
	entry := &models.RosterEntry{
		QueueID:  suite.queue.ID,
		AgentID:  agent.ID,
		Agent:    agent,
		Position: 3,
	}

	suite.mockQueueRepo.EXPECT().GetByID(suite.queue.ID).Return(suite.queue, nil).Times(1)
	suite.mockRosterRepo.EXPECT().AdvanceHead(suite.queue.ID).Return(entry, 3, nil).Times(1)

	result, err := suite.rotationService.Advance(suite.queue.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), agent.ID, result.Agent.ID)
	assert.Equal(suite.T(), 1, result.PositionBefore)
	assert.Equal(suite.T(), 3, result.PositionAfter)
}

// TestAdvanceEmptyQueue tests advancing a queue with no members
func (suite *RotationServiceTestSuite) TestAdvanceEmptyQueue() {
	suite.mockQueueRepo.EXPECT().GetByID(suite.queue.ID).Return(suite.queue, nil).Times(1)
	suite.mockRosterRepo.EXPECT().
		AdvanceHead(suite.queue.ID).
		Return(nil, 0, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.rotationService.Advance(suite.queue.ID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyQueue)
}

// TestAdvanceInactiveQueue tests that a deactivated queue cannot be advanced
func (suite *RotationServiceTestSuite) TestAdvanceInactiveQueue() {
	inactive := &models.Queue{BaseModel: models.BaseModel{ID: suite.queue.ID}, IsActive: false}
	suite.mockQueueRepo.EXPECT().GetByID(suite.queue.ID).Return(inactive, nil).Times(1)

	result, err := suite.rotationService.Advance(suite.queue.ID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrQueueInactive)
}

// TestAdvanceQueueNotFound tests advancing a nonexistent queue
func (suite *RotationServiceTestSuite) TestAdvanceQueueNotFound() {
	suite.mockQueueRepo.EXPECT().
		GetByID(suite.queue.ID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.rotationService.Advance(suite.queue.ID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrQueueNotFound)
}

// TestAddMember tests adding an agent at the tail
func (suite *RotationServiceTestSuite) TestAddMember() {
	agent := &models.Agent{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Bruno Lima",
		Email:     "bruno@test.com",
	}
	entry := &models.RosterEntry{
		BaseModel: models.BaseModel{CreatedAt: time.Now()},
		QueueID:   suite.queue.ID,
		AgentID:   agent.ID,
		Position:  4,
	}

	suite.mockQueueRepo.EXPECT().GetByID(suite.queue.ID).Return(suite.queue, nil).Times(1)
	suite.mockAgentRepo.EXPECT().GetByID(agent.ID).Return(agent, nil).Times(1)
	suite.mockRosterRepo.EXPECT().AddMember(suite.queue.ID, agent.ID).Return(entry, nil).Times(1)

	result, err := suite.rotationService.AddMember(suite.queue.ID, agent.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, result.Position)
	assert.Equal(suite.T(), agent.Name, result.Name)
}

// TestAddMemberAlreadyMember tests the conflict for a current member
func (suite *RotationServiceTestSuite) TestAddMemberAlreadyMember() {
	agent := &models.Agent{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockQueueRepo.EXPECT().GetByID(suite.queue.ID).Return(suite.queue, nil).Times(1)
	suite.mockAgentRepo.EXPECT().GetByID(agent.ID).Return(agent, nil).Times(1)
	suite.mockRosterRepo.EXPECT().
		AddMember(suite.queue.ID, agent.ID).
		Return(nil, apperrors.ErrAlreadyMember).
		Times(1)

	result, err := suite.rotationService.AddMember(suite.queue.ID, agent.ID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyMember)
}

// TestRemoveMemberNotMember tests the conflict for a non-member
func (suite *RotationServiceTestSuite) TestRemoveMemberNotMember() {
	agentID := uuid.New()

	suite.mockQueueRepo.EXPECT().GetByID(suite.queue.ID).Return(suite.queue, nil).Times(1)
	suite.mockRosterRepo.EXPECT().
		RemoveMember(suite.queue.ID, agentID).
		Return(nil, apperrors.ErrNotMember).
		Times(1)

	err := suite.rotationService.RemoveMember(suite.queue.ID, agentID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotMember)
}

// TestListRosterAbsenceOverlay tests that the absence flag is set without
// affecting order or membership
func (suite *RotationServiceTestSuite) TestListRosterAbsenceOverlay() {
	absentAgent := models.Agent{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ana", Email: "ana@test.com"}
	presentAgent := models.Agent{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Bruno", Email: "bruno@test.com"}
	entries := []models.RosterEntry{
		{QueueID: suite.queue.ID, AgentID: absentAgent.ID, Agent: absentAgent, Position: 1},
		{QueueID: suite.queue.ID, AgentID: presentAgent.ID, Agent: presentAgent, Position: 2},
	}
	absences := []models.Absence{
		{AgentID: absentAgent.ID, QueueID: suite.queue.ID, Active: true},
	}

	suite.mockQueueRepo.EXPECT().GetByID(suite.queue.ID).Return(suite.queue, nil).Times(1)
	suite.mockRosterRepo.EXPECT().GetActiveByQueue(suite.queue.ID).Return(entries, nil).Times(1)
	suite.mockAbsenceRepo.EXPECT().GetActiveCovering(suite.queue.ID, gomock.Any()).Return(absences, nil).Times(1)

	roster, err := suite.rotationService.ListRoster(suite.queue.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), roster, 2)
	assert.True(suite.T(), roster[0].AbsentToday)
	assert.Equal(suite.T(), 1, roster[0].Position)
	assert.False(suite.T(), roster[1].AbsentToday)
}

func TestRotationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RotationServiceTestSuite))
}
