package handlers_test

import (
	"net/http"
	"testing"

	"lead-rotation-backend/internal/api/handlers"
	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/mocks"
	"lead-rotation-backend/internal/service"
	"lead-rotation-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AgentHandlerTestSuite defines the test suite for AgentHandler
type AgentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockAgentSv *mocks.MockAgentServiceInterface
	handler     *handlers.AgentHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AgentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAgentSv = mocks.NewMockAgentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAgentHandler(suite.mockAgentSv)

	suite.httpSuite = testutils.SetupHTTPTest()

	agents := suite.httpSuite.Router.Group("/agents")
	{
		agents.GET("", suite.handler.ListAgents)
		agents.GET("/available", suite.handler.ListAvailableAgents)
		agents.POST("", suite.handler.CreateAgent)
		agents.GET("/:id", suite.handler.GetAgent)
		agents.PUT("/:id", suite.handler.UpdateAgent)
		agents.DELETE("/:id", suite.handler.DeleteAgent)
		agents.GET("/:id/absences", suite.handler.ListAbsences)
		agents.POST("/:id/absences", suite.handler.CreateAbsence)
		agents.DELETE("/:id/absences/:absenceId", suite.handler.DeleteAbsence)
	}
}

// TearDownTest cleans up after each test
func (suite *AgentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AgentHandlerTestSuite) TestListAgents_DefaultPagination() {
	resp := &service.AgentListResponse{
		Agents: []service.AgentResponse{
			{ID: uuid.New(), Name: "Ana Souza", Email: "ana@test.com", IsActive: true},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}
	suite.mockAgentSv.EXPECT().List(1, 20).Return(resp, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/agents", nil)

	var got service.AgentListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Agents, 1)
	assert.Equal(suite.T(), "ana@test.com", got.Agents[0].Email)
}

func (suite *AgentHandlerTestSuite) TestListAgents_CustomPagination() {
	resp := &service.AgentListResponse{Agents: []service.AgentResponse{}, Total: 0, Page: 2, PageSize: 10}
	suite.mockAgentSv.EXPECT().List(2, 10).Return(resp, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/agents?page=2&page_size=10", nil)

	var got service.AgentListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), 2, got.Page)
	assert.Equal(suite.T(), 10, got.PageSize)
}

func (suite *AgentHandlerTestSuite) TestListAvailableAgents_Success() {
	agents := []service.AgentResponse{
		{ID: uuid.New(), Name: "Bruno Lima", Email: "bruno@test.com", IsActive: true},
	}
	suite.mockAgentSv.EXPECT().ListUnrostered().Return(agents, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/agents/available", nil)

	var got []service.AgentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "bruno@test.com", got[0].Email)
}

func (suite *AgentHandlerTestSuite) TestCreateAgent_Success() {
	resp := &service.AgentResponse{ID: uuid.New(), Name: "Ana Souza", Email: "ana@test.com", IsActive: true}
	suite.mockAgentSv.EXPECT().Create(gomock.Any()).Return(resp, nil)

	body := map[string]interface{}{"name": "Ana Souza", "email": "ana@test.com"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/agents", body)

	var got service.AgentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	assert.Equal(suite.T(), "Ana Souza", got.Name)
}

func (suite *AgentHandlerTestSuite) TestCreateAgent_DuplicateEmail() {
	suite.mockAgentSv.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrAgentExists)

	body := map[string]interface{}{"name": "Ana Souza", "email": "ana@test.com"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/agents", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

func (suite *AgentHandlerTestSuite) TestGetAgent_NotFound() {
	id := uuid.New()
	suite.mockAgentSv.EXPECT().GetByID(id).Return(nil, apperrors.ErrAgentNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/agents/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func (suite *AgentHandlerTestSuite) TestGetAgent_InvalidUUID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/agents/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid UUID format")
}

func (suite *AgentHandlerTestSuite) TestUpdateAgent_EmailConflict() {
	id := uuid.New()
	suite.mockAgentSv.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.ErrAgentExists)

	body := map[string]interface{}{"email": "taken@test.com"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/agents/"+id.String(), body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

func (suite *AgentHandlerTestSuite) TestDeleteAgent_Success() {
	id := uuid.New()
	suite.mockAgentSv.EXPECT().Delete(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/agents/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *AgentHandlerTestSuite) TestListAbsences_Success() {
	id := uuid.New()
	absences := []service.AbsenceResponse{
		{ID: uuid.New(), AgentID: id, Reason: "vacation", Active: true},
	}
	suite.mockAgentSv.EXPECT().ListAbsences(id).Return(absences, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/agents/"+id.String()+"/absences", nil)

	var got []service.AbsenceResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "vacation", got[0].Reason)
}

func (suite *AgentHandlerTestSuite) TestCreateAbsence_Success() {
	id := uuid.New()
	resp := &service.AbsenceResponse{ID: uuid.New(), AgentID: id, Reason: "vacation", Active: true}
	suite.mockAgentSv.EXPECT().CreateAbsence(id, gomock.Any()).Return(resp, nil)

	body := map[string]interface{}{
		"date_start": "2025-06-10T00:00:00Z",
		"date_end":   "2025-06-12T00:00:00Z",
		"reason":     "vacation",
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/agents/"+id.String()+"/absences", body)

	var got service.AbsenceResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	assert.True(suite.T(), got.Active)
}

func (suite *AgentHandlerTestSuite) TestCreateAbsence_InvalidRange() {
	id := uuid.New()
	suite.mockAgentSv.EXPECT().
		CreateAbsence(id, gomock.Any()).
		Return(nil, &apperrors.ValidationError{Field: "date_end", Message: "must not be before date_start"})

	body := map[string]interface{}{
		"date_start": "2025-06-12T00:00:00Z",
		"date_end":   "2025-06-10T00:00:00Z",
		"reason":     "vacation",
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/agents/"+id.String()+"/absences", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "date_end")
}

func (suite *AgentHandlerTestSuite) TestDeleteAbsence_NotFound() {
	agentID := uuid.New()
	absenceID := uuid.New()
	suite.mockAgentSv.EXPECT().
		DeactivateAbsence(agentID, absenceID).
		Return(apperrors.ErrAbsenceNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete,
		"/agents/"+agentID.String()+"/absences/"+absenceID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func TestAgentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AgentHandlerTestSuite))
}
