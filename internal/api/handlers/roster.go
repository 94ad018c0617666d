package handlers

import (
	"errors"
	"net/http"

	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RosterHandler handles HTTP requests for queue membership
type RosterHandler struct {
	rotation service.RotationServiceInterface
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rotation service.RotationServiceInterface) *RosterHandler {
	return &RosterHandler{rotation: rotation}
}

// AddMemberRequest represents the request to add an agent to a roster
type AddMemberRequest struct {
	AgentID uuid.UUID `json:"agent_id" binding:"required"`
}

// ListRoster handles GET /api/v1/queues/:id/roster
// @Summary List a queue's roster
// @Description Get the queue's members ordered by position, with today's absence flag
// @Tags roster
// @Accept json
// @Produce json
// @Param id path string true "Queue ID (UUID)"
// @Success 200 {array} service.RosterEntryResponse "Successfully retrieved roster"
// @Failure 400 {object} map[string]interface{} "Invalid queue ID"
// @Failure 404 {object} map[string]interface{} "Queue not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues/{id}/roster [get]
func (h *RosterHandler) ListRoster(c *gin.Context) {
	queueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue ID: invalid UUID format"})
		return
	}

	roster, err := h.rotation.ListRoster(queueID)
	if err != nil {
		if errors.Is(err, apperrors.ErrQueueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list roster", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, roster)
}

// AddMember handles POST /api/v1/queues/:id/roster
// @Summary Add an agent to a queue
// @Description Add an agent to the tail of the queue's roster
// @Tags roster
// @Accept json
// @Produce json
// @Param id path string true "Queue ID (UUID)"
// @Param member body AddMemberRequest true "Agent to add"
// @Success 201 {object} service.RosterEntryResponse "Agent added to roster"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Queue or agent not found"
// @Failure 409 {object} map[string]interface{} "Agent is already a member or queue is inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues/{id}/roster [post]
func (h *RosterHandler) AddMember(c *gin.Context) {
	queueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue ID: invalid UUID format"})
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.rotation.AddMember(queueID, req.AgentID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrQueueNotFound), errors.Is(err, apperrors.ErrAgentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAlreadyMember), errors.Is(err, apperrors.ErrQueueInactive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// RemoveMember handles DELETE /api/v1/queues/:id/roster/:agentId
// @Summary Remove an agent from a queue
// @Description Soft-remove an agent from the roster and close the position gap
// @Tags roster
// @Accept json
// @Produce json
// @Param id path string true "Queue ID (UUID)"
// @Param agentId path string true "Agent ID (UUID)"
// @Success 204 "Agent removed from roster"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Queue not found"
// @Failure 409 {object} map[string]interface{} "Agent is not a member or queue is inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues/{id}/roster/{agentId} [delete]
func (h *RosterHandler) RemoveMember(c *gin.Context) {
	queueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue ID: invalid UUID format"})
		return
	}
	agentID, err := uuid.Parse(c.Param("agentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID: invalid UUID format"})
		return
	}

	if err := h.rotation.RemoveMember(queueID, agentID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrQueueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotMember), errors.Is(err, apperrors.ErrQueueInactive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member", "details": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
