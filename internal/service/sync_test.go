package service_test

import (
	"context"
	"errors"
	"testing"

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

// SyncServiceTestSuite defines the test suite for SyncService
type SyncServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAgentRepo   *mocks.MockAgentRepositoryInterface
	mockWebhookRepo *mocks.MockWebhookLogRepositoryInterface
	mockCRM         *mocks.MockCRMClientInterface
	syncService     *service.SyncService
	queueID         uuid.UUID
	agent           *models.Agent
}

// SetupTest sets up the test suite
func (suite *SyncServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAgentRepo = mocks.NewMockAgentRepositoryInterface(suite.ctrl)
	suite.mockWebhookRepo = mocks.NewMockWebhookLogRepositoryInterface(suite.ctrl)
	suite.mockCRM = mocks.NewMockCRMClientInterface(suite.ctrl)
	suite.queueID = uuid.New()
	suite.agent = &models.Agent{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Ana Souza",
		Email:     "ana@test.com",
		IsActive:  true,
	}

	suite.syncService = service.NewSyncService(suite.mockAgentRepo, suite.mockWebhookRepo, suite.mockCRM)
}

// TearDownTest cleans up after each test
func (suite *SyncServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSyncSuccess tests the happy path: access union plus owner overwrite in one update
func (suite *SyncServiceTestSuite) TestSyncSuccess() {
	agentID := suite.agent.ID.String()
	lead := &service.Lead{ID: "lead-42", Owner: "someone-else", UserAccess: []string{"other-agent"}}

	suite.mockAgentRepo.EXPECT().GetByID(suite.agent.ID).Return(suite.agent, nil).Times(1)
	suite.mockCRM.EXPECT().GetLead(gomock.Any(), "lead-42").Return(lead, nil).Times(1)
	suite.mockCRM.EXPECT().
		UpdateLead(gomock.Any(), "lead-42", []string{"other-agent", agentID}, agentID).
		Return(nil).
		Times(1)
	suite.mockWebhookRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *models.WebhookLog) error {
			assert.Equal(suite.T(), models.WebhookStatusSuccess, entry.Status)
			assert.Equal(suite.T(), "someone-else", entry.OwnerBefore)
			assert.Equal(suite.T(), agentID, entry.OwnerAfter)
			assert.NotEmpty(suite.T(), entry.SnapshotBefore)
			assert.NotEmpty(suite.T(), entry.SnapshotAfter)
			return nil
		}).
		Times(1)

	result, err := suite.syncService.Sync(context.Background(), suite.queueID, suite.agent.ID, "lead-42")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WebhookStatusSuccess, result.Status)
	assert.Equal(suite.T(), agentID, result.Lead.Owner)
	assert.Contains(suite.T(), result.Lead.UserAccess, agentID)
	assert.Contains(suite.T(), result.Lead.UserAccess, "other-agent")
}

// TestSyncIdempotentAccessList tests that an agent already on the access list is not duplicated
func (suite *SyncServiceTestSuite) TestSyncIdempotentAccessList() {
	agentID := suite.agent.ID.String()
	lead := &service.Lead{ID: "lead-42", Owner: agentID, UserAccess: []string{agentID}}

	suite.mockAgentRepo.EXPECT().GetByID(suite.agent.ID).Return(suite.agent, nil).Times(1)
	suite.mockCRM.EXPECT().GetLead(gomock.Any(), "lead-42").Return(lead, nil).Times(1)
	suite.mockCRM.EXPECT().
		UpdateLead(gomock.Any(), "lead-42", []string{agentID}, agentID).
		Return(nil).
		Times(1)
	suite.mockWebhookRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	result, err := suite.syncService.Sync(context.Background(), suite.queueID, suite.agent.ID, "lead-42")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{agentID}, result.Lead.UserAccess)
}

// TestSyncLeadIDFallback tests that without a hint the agent's own id is the lookup key
func (suite *SyncServiceTestSuite) TestSyncLeadIDFallback() {
	agentID := suite.agent.ID.String()
	lead := &service.Lead{ID: agentID, UserAccess: nil}

	suite.mockAgentRepo.EXPECT().GetByID(suite.agent.ID).Return(suite.agent, nil).Times(1)
	suite.mockCRM.EXPECT().GetLead(gomock.Any(), agentID).Return(lead, nil).Times(1)
	suite.mockCRM.EXPECT().UpdateLead(gomock.Any(), agentID, []string{agentID}, agentID).Return(nil).Times(1)
	suite.mockWebhookRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	result, err := suite.syncService.Sync(context.Background(), suite.queueID, suite.agent.ID, "")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), agentID, result.LeadID)
}

// TestSyncFetchFailure tests that a CRM fetch failure is logged but never returned as an error
func (suite *SyncServiceTestSuite) TestSyncFetchFailure() {
	suite.mockAgentRepo.EXPECT().GetByID(suite.agent.ID).Return(suite.agent, nil).Times(1)
	suite.mockCRM.EXPECT().
		GetLead(gomock.Any(), "lead-42").
		Return(nil, errors.New("connection refused")).
		Times(1)
	suite.mockWebhookRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *models.WebhookLog) error {
			assert.Equal(suite.T(), models.WebhookStatusFailure, entry.Status)
			assert.Contains(suite.T(), entry.ErrorDetail, "connection refused")
			return nil
		}).
		Times(1)

	result, err := suite.syncService.Sync(context.Background(), suite.queueID, suite.agent.ID, "lead-42")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WebhookStatusFailure, result.Status)
	assert.Nil(suite.T(), result.Lead)
}

// TestSyncUpdateFailure tests that an update failure keeps the before snapshot and reports failure
func (suite *SyncServiceTestSuite) TestSyncUpdateFailure() {
	lead := &service.Lead{ID: "lead-42", Owner: "someone-else", UserAccess: []string{"other-agent"}}

	suite.mockAgentRepo.EXPECT().GetByID(suite.agent.ID).Return(suite.agent, nil).Times(1)
	suite.mockCRM.EXPECT().GetLead(gomock.Any(), "lead-42").Return(lead, nil).Times(1)
	suite.mockCRM.EXPECT().
		UpdateLead(gomock.Any(), "lead-42", gomock.Any(), gomock.Any()).
		Return(errors.New("gateway timeout")).
		Times(1)
	suite.mockWebhookRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *models.WebhookLog) error {
			assert.Equal(suite.T(), models.WebhookStatusFailure, entry.Status)
			assert.Equal(suite.T(), "someone-else", entry.OwnerBefore)
			assert.Empty(suite.T(), entry.OwnerAfter)
			assert.NotEmpty(suite.T(), entry.SnapshotBefore)
			assert.Empty(suite.T(), entry.SnapshotAfter)
			return nil
		}).
		Times(1)

	result, err := suite.syncService.Sync(context.Background(), suite.queueID, suite.agent.ID, "lead-42")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WebhookStatusFailure, result.Status)
	// The local lead snapshot keeps its pre-update state.
	assert.Equal(suite.T(), "someone-else", result.Lead.Owner)
}

// TestSyncAgentNotFound tests that a missing agent is a local fault, not a logged failure
func (suite *SyncServiceTestSuite) TestSyncAgentNotFound() {
	suite.mockAgentRepo.EXPECT().
		GetByID(suite.agent.ID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.syncService.Sync(context.Background(), suite.queueID, suite.agent.ID, "lead-42")

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAgentNotFound)
}

// TestResend tests that a replay runs a fresh sync for the logged queue, agent and lead
func (suite *SyncServiceTestSuite) TestResend() {
	logID := uuid.New()
	entry := &models.WebhookLog{
		BaseModel: models.BaseModel{ID: logID},
		QueueID:   suite.queueID,
		AgentID:   suite.agent.ID,
		LeadID:    "lead-42",
		Status:    models.WebhookStatusFailure,
	}
	agentID := suite.agent.ID.String()
	lead := &service.Lead{ID: "lead-42", UserAccess: nil}

	suite.mockWebhookRepo.EXPECT().GetByID(logID).Return(entry, nil).Times(1)
	suite.mockAgentRepo.EXPECT().GetByID(suite.agent.ID).Return(suite.agent, nil).Times(1)
	suite.mockCRM.EXPECT().GetLead(gomock.Any(), "lead-42").Return(lead, nil).Times(1)
	suite.mockCRM.EXPECT().UpdateLead(gomock.Any(), "lead-42", []string{agentID}, agentID).Return(nil).Times(1)
	suite.mockWebhookRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	result, err := suite.syncService.Resend(context.Background(), logID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WebhookStatusSuccess, result.Status)
}

// TestResendNotFound tests replaying a nonexistent log entry
func (suite *SyncServiceTestSuite) TestResendNotFound() {
	logID := uuid.New()
	suite.mockWebhookRepo.EXPECT().GetByID(logID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	result, err := suite.syncService.Resend(context.Background(), logID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWebhookLogNotFound)
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}
