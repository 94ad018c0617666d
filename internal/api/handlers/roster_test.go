package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lead-rotation-backend/internal/api/handlers"
	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/mocks"
	"lead-rotation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RosterHandlerTestSuite defines the test suite for RosterHandler
type RosterHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRotation *mocks.MockRotationServiceInterface
	handler      *handlers.RosterHandler
	router       *gin.Engine
}

func (suite *RosterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRotation = mocks.NewMockRotationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRosterHandler(suite.mockRotation)

	suite.router = gin.New()
	suite.router.GET("/queues/:id/roster", suite.handler.ListRoster)
	suite.router.POST("/queues/:id/roster", suite.handler.AddMember)
	suite.router.DELETE("/queues/:id/roster/:agentId", suite.handler.RemoveMember)
}

func (suite *RosterHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RosterHandlerTestSuite) TestListRoster_Success() {
	queueID := uuid.New()
	roster := []service.RosterEntryResponse{
		{AgentID: uuid.New(), Name: "Ana Souza", Email: "ana@test.com", Position: 1, AbsentToday: true, JoinedAt: time.Now()},
		{AgentID: uuid.New(), Name: "Bruno Lima", Email: "bruno@test.com", Position: 2},
	}
	suite.mockRotation.EXPECT().ListRoster(queueID).Return(roster, nil)

	req := httptest.NewRequest(http.MethodGet, "/queues/"+queueID.String()+"/roster", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.RosterEntryResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.True(suite.T(), got[0].AbsentToday)
	assert.Equal(suite.T(), 2, got[1].Position)
}

func (suite *RosterHandlerTestSuite) TestListRoster_QueueNotFound() {
	queueID := uuid.New()
	suite.mockRotation.EXPECT().ListRoster(queueID).Return(nil, apperrors.ErrQueueNotFound)

	req := httptest.NewRequest(http.MethodGet, "/queues/"+queueID.String()+"/roster", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RosterHandlerTestSuite) TestAddMember_Success() {
	queueID := uuid.New()
	agentID := uuid.New()
	entry := &service.RosterEntryResponse{AgentID: agentID, Name: "Ana Souza", Position: 4}
	suite.mockRotation.EXPECT().AddMember(queueID, agentID).Return(entry, nil)

	body := `{"agent_id": "` + agentID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/queues/"+queueID.String()+"/roster", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.RosterEntryResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, got.Position)
}

func (suite *RosterHandlerTestSuite) TestAddMember_MissingAgentID() {
	queueID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/queues/"+queueID.String()+"/roster", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RosterHandlerTestSuite) TestAddMember_AlreadyMember() {
	queueID := uuid.New()
	agentID := uuid.New()
	suite.mockRotation.EXPECT().AddMember(queueID, agentID).Return(nil, apperrors.ErrAlreadyMember)

	body := `{"agent_id": "` + agentID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/queues/"+queueID.String()+"/roster", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *RosterHandlerTestSuite) TestAddMember_AgentNotFound() {
	queueID := uuid.New()
	agentID := uuid.New()
	suite.mockRotation.EXPECT().AddMember(queueID, agentID).Return(nil, apperrors.ErrAgentNotFound)

	body := `{"agent_id": "` + agentID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/queues/"+queueID.String()+"/roster", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RosterHandlerTestSuite) TestRemoveMember_Success() {
	queueID := uuid.New()
	agentID := uuid.New()
	suite.mockRotation.EXPECT().RemoveMember(queueID, agentID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete,
		"/queues/"+queueID.String()+"/roster/"+agentID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *RosterHandlerTestSuite) TestRemoveMember_NotMember() {
	queueID := uuid.New()
	agentID := uuid.New()
	suite.mockRotation.EXPECT().RemoveMember(queueID, agentID).Return(apperrors.ErrNotMember)

	req := httptest.NewRequest(http.MethodDelete,
		"/queues/"+queueID.String()+"/roster/"+agentID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *RosterHandlerTestSuite) TestRemoveMember_InvalidAgentID() {
	queueID := uuid.New()

	req := httptest.NewRequest(http.MethodDelete,
		"/queues/"+queueID.String()+"/roster/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestRosterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RosterHandlerTestSuite))
}
