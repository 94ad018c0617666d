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

// SyncHandler handles HTTP requests for the webhook log and replays
type SyncHandler struct {
	service service.SyncServiceInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(service service.SyncServiceInterface) *SyncHandler {
	return &SyncHandler{service: service}
}

// ListWebhookLogs handles GET /api/v1/webhook-logs
// @Summary List synchronization attempts
// @Description Get the most recent ownership synchronization attempts, newest first
// @Tags webhook-logs
// @Accept json
// @Produce json
// @Param queue_id query string false "Filter to one queue (UUID)"
// @Param limit query int false "Maximum number of entries (default 100)"
// @Success 200 {array} service.WebhookLogResponse "Successfully retrieved webhook logs"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /webhook-logs [get]
func (h *SyncHandler) ListWebhookLogs(c *gin.Context) {
	var queueID *uuid.UUID
	if queueIDStr := c.Query("queue_id"); queueIDStr != "" {
		id, err := uuid.Parse(queueIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue_id: invalid UUID format"})
			return
		}
		queueID = &id
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	logs, err := h.service.ListLogs(queueID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list webhook logs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// ResendWebhook handles POST /api/v1/webhook-logs/:id/resend
// @Summary Replay a synchronization attempt
// @Description Replay a previously logged synchronization as a fresh attempt for the same queue, agent and lead
// @Tags webhook-logs
// @Accept json
// @Produce json
// @Param id path string true "Webhook log entry ID (UUID)"
// @Success 200 {object} service.SyncResult "Replay executed; see status for the CRM outcome"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Webhook log entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /webhook-logs/{id}/resend [post]
func (h *SyncHandler) ResendWebhook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook log ID: invalid UUID format"})
		return
	}

	result, err := h.service.Resend(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrWebhookLogNotFound), errors.Is(err, apperrors.ErrAgentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resend webhook", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
