package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AgentHandler handles HTTP requests for agents and their absences
type AgentHandler struct {
	service service.AgentServiceInterface
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(service service.AgentServiceInterface) *AgentHandler {
	return &AgentHandler{service: service}
}

// ListAgents handles GET /api/v1/agents
// @Summary List agents
// @Description Get all agents with pagination
// @Tags agents
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.AgentListResponse "Successfully retrieved agents"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	agents, err := h.service.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list agents", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agents)
}

// ListAvailableAgents handles GET /api/v1/agents/available
// @Summary List unrostered agents
// @Description Get active agents not currently rostered in any active queue
// @Tags agents
// @Accept json
// @Produce json
// @Success 200 {array} service.AgentResponse "Successfully retrieved agents"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/available [get]
func (h *AgentHandler) ListAvailableAgents(c *gin.Context) {
	agents, err := h.service.ListUnrostered()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list available agents", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agents)
}

// CreateAgent handles POST /api/v1/agents
// @Summary Create a new agent
// @Description Create a new agent with the provided details
// @Tags agents
// @Accept json
// @Produce json
// @Param agent body service.CreateAgentRequest true "Agent data"
// @Success 201 {object} service.AgentResponse "Successfully created agent"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Agent already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req service.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agent, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgentExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create agent", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, agent)
}

// GetAgent handles GET /api/v1/agents/:id
// @Summary Get agent by ID
// @Description Get a specific agent by their UUID
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Success 200 {object} service.AgentResponse "Successfully retrieved agent"
// @Failure 400 {object} map[string]interface{} "Invalid agent ID"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID: invalid UUID format"})
		return
	}

	agent, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get agent", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, agent)
}

// UpdateAgent handles PUT /api/v1/agents/:id
// @Summary Update an agent
// @Description Update an agent's profile
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Param agent body service.UpdateAgentRequest true "Agent data"
// @Success 200 {object} service.AgentResponse "Successfully updated agent"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 409 {object} map[string]interface{} "Email already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/{id} [put]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID: invalid UUID format"})
		return
	}

	var req service.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agent, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAgentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAgentExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update agent", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, agent)
}

// DeleteAgent handles DELETE /api/v1/agents/:id
// @Summary Delete an agent
// @Description Delete an agent
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Success 204 "Successfully deleted agent"
// @Failure 400 {object} map[string]interface{} "Invalid agent ID"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete agent", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListAbsences handles GET /api/v1/agents/:id/absences
// @Summary List an agent's absences
// @Description Get the agent's absence entries, newest first
// @Tags absences
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Success 200 {array} service.AbsenceResponse "Successfully retrieved absences"
// @Failure 400 {object} map[string]interface{} "Invalid agent ID"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/{id}/absences [get]
func (h *AgentHandler) ListAbsences(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID: invalid UUID format"})
		return
	}

	absences, err := h.service.ListAbsences(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list absences", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, absences)
}

// CreateAbsence handles POST /api/v1/agents/:id/absences
// @Summary Mark an agent unavailable
// @Description Record an absence for an agent over an inclusive date range. The absence is informational and never changes who the rotation selects.
// @Tags absences
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Param absence body service.CreateAbsenceRequest true "Absence data"
// @Success 201 {object} service.AbsenceResponse "Successfully created absence"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Agent or queue not found"
// @Failure 409 {object} map[string]interface{} "Queue is inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/{id}/absences [post]
func (h *AgentHandler) CreateAbsence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID: invalid UUID format"})
		return
	}

	var req service.CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	absence, err := h.service.CreateAbsence(id, &req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.Is(err, apperrors.ErrAgentNotFound), errors.Is(err, apperrors.ErrQueueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrQueueInactive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create absence", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, absence)
}

// DeleteAbsence handles DELETE /api/v1/agents/:id/absences/:absenceId
// @Summary Deactivate an absence
// @Description Deactivate one of the agent's absence entries
// @Tags absences
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Param absenceId path string true "Absence ID (UUID)"
// @Success 204 "Successfully deactivated absence"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Absence not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/{id}/absences/{absenceId} [delete]
func (h *AgentHandler) DeleteAbsence(c *gin.Context) {
	agentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID: invalid UUID format"})
		return
	}
	absenceID, err := uuid.Parse(c.Param("absenceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid absence ID: invalid UUID format"})
		return
	}

	if err := h.service.DeactivateAbsence(agentID, absenceID); err != nil {
		if errors.Is(err, apperrors.ErrAbsenceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate absence", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
