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

// QueueHandler handles HTTP requests for queues, rotation, statistics and the
// audit log
type QueueHandler struct {
	service  service.QueueServiceInterface
	rotation service.RotationServiceInterface
	sync     service.SyncServiceInterface
	stats    service.StatisticsServiceInterface
	audit    service.AuditServiceInterface
}

// NewQueueHandler creates a new queue handler
func NewQueueHandler(
	queueService service.QueueServiceInterface,
	rotationService service.RotationServiceInterface,
	syncService service.SyncServiceInterface,
	statsService service.StatisticsServiceInterface,
	auditService service.AuditServiceInterface,
) *QueueHandler {
	return &QueueHandler{
		service:  queueService,
		rotation: rotationService,
		sync:     syncService,
		stats:    statsService,
		audit:    auditService,
	}
}

// AdvanceWithSyncResponse couples the committed rotation outcome with the
// status of the follow-up ownership synchronization. The rotation part is
// always present; the sync part reports partial success explicitly.
type AdvanceWithSyncResponse struct {
	Rotation *service.AdvanceResponse `json:"rotation"`
	Sync     *service.SyncResult      `json:"sync"`
}

// ListQueues handles GET /api/v1/queues
// @Summary List active queues
// @Description Get all active queues with their member counts
// @Tags queues
// @Accept json
// @Produce json
// @Success 200 {array} service.QueueResponse "Successfully retrieved queues"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues [get]
func (h *QueueHandler) ListQueues(c *gin.Context) {
	queues, err := h.service.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list queues", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, queues)
}

// CreateQueue handles POST /api/v1/queues
// @Summary Create a new queue
// @Description Create a new rotation queue with the provided details
// @Tags queues
// @Accept json
// @Produce json
// @Param queue body service.CreateQueueRequest true "Queue data"
// @Success 201 {object} service.QueueResponse "Successfully created queue"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Queue already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues [post]
func (h *QueueHandler) CreateQueue(c *gin.Context) {
	var req service.CreateQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	queue, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrQueueExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create queue", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, queue)
}

// GetQueue handles GET /api/v1/queues/:id
// @Summary Get queue by ID
// @Description Get a specific queue by its UUID
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Queue ID (UUID)"
// @Success 200 {object} service.QueueResponse "Successfully retrieved queue"
// @Failure 400 {object} map[string]interface{} "Invalid queue ID"
// @Failure 404 {object} map[string]interface{} "Queue not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues/{id} [get]
func (h *QueueHandler) GetQueue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue ID: invalid UUID format"})
		return
	}

	queue, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrQueueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get queue", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, queue)
}

// UpdateQueue handles PUT /api/v1/queues/:id
// @Summary Update a queue
// @Description Update a queue's metadata
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Queue ID (UUID)"
// @Param queue body service.UpdateQueueRequest true "Queue data"
// @Success 200 {object} service.QueueResponse "Successfully updated queue"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Queue not found"
// @Failure 409 {object} map[string]interface{} "Queue name already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues/{id} [put]
func (h *QueueHandler) UpdateQueue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue ID: invalid UUID format"})
		return
	}

	var req service.UpdateQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	queue, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrQueueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrQueueExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update queue", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, queue)
}

// DeleteQueue handles DELETE /api/v1/queues/:id
// @Summary Deactivate a queue
// @Description Soft-deactivate a queue; its roster and history are preserved
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Queue ID (UUID)"
// @Success 204 "Successfully deactivated queue"
// @Failure 400 {object} map[string]interface{} "Invalid queue ID"
// @Failure 404 {object} map[string]interface{} "Queue not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues/{id} [delete]
func (h *QueueHandler) DeleteQueue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue ID: invalid UUID format"})
		return
	}

	if err := h.service.Deactivate(id); err != nil {
		if errors.Is(err, apperrors.ErrQueueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate queue", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// AdvanceQueue handles POST /api/v1/queues/:id/advance
// @Summary Advance the rotation
// @Description Move the agent at the head of the queue to the back and promote everyone else
// @Tags rotation
// @Accept json
// @Produce json
// @Param id path string true "Queue ID (UUID)"
// @Success 200 {object} service.AdvanceResponse "Queue advanced"
// @Failure 400 {object} map[string]interface{} "Invalid queue ID"
// @Failure 404 {object} map[string]interface{} "Queue not found"
// @Failure 409 {object} map[string]interface{} "Queue is empty or inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues/{id}/advance [post]
func (h *QueueHandler) AdvanceQueue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue ID: invalid UUID format"})
		return
	}

	result, err := h.rotation.Advance(id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrQueueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrEmptyQueue), errors.Is(err, apperrors.ErrQueueInactive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance queue", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// SyncQueue handles POST /api/v1/queues/:id/sync
// @Summary Advance the rotation and synchronize lead ownership
// @Description Advance the queue, then push the selected agent as owner and access grantee of the lead in the CRM. The rotation commits even when the CRM is unavailable; the sync part of the response reports the attempt outcome.
// @Tags rotation
// @Accept json
// @Produce json
// @Param id path string true "Queue ID (UUID)"
// @Param lead query string false "Lead ID to synchronize; defaults to the selected agent's ID"
// @Success 200 {object} AdvanceWithSyncResponse "Rotation committed; see sync.status for the CRM outcome"
// @Failure 400 {object} map[string]interface{} "Invalid queue ID"
// @Failure 404 {object} map[string]interface{} "Queue not found"
// @Failure 409 {object} map[string]interface{} "Queue is empty or inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues/{id}/sync [post]
func (h *QueueHandler) SyncQueue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue ID: invalid UUID format"})
		return
	}

	rotation, err := h.rotation.Advance(id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrQueueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrEmptyQueue), errors.Is(err, apperrors.ErrQueueInactive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance queue", "details": err.Error()})
		}
		return
	}

	syncResult, err := h.sync.Sync(c.Request.Context(), id, rotation.Agent.ID, c.Query("lead"))
	if err != nil {
		// The rotation is already committed; report it together with the local
		// failure instead of discarding either.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "Rotation committed but synchronization could not start",
			"details":  err.Error(),
			"rotation": rotation,
		})
		return
	}

	c.JSON(http.StatusOK, AdvanceWithSyncResponse{Rotation: rotation, Sync: syncResult})
}

// GetQueueStatistics handles GET /api/v1/queues/:id/statistics
// @Summary Get queue statistics
// @Description Get call counts and timing metrics derived from the rotation audit log
// @Tags statistics
// @Accept json
// @Produce json
// @Param id path string true "Queue ID (UUID)"
// @Success 200 {object} service.QueueStatistics "Successfully retrieved statistics"
// @Failure 400 {object} map[string]interface{} "Invalid queue ID"
// @Failure 404 {object} map[string]interface{} "Queue not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues/{id}/statistics [get]
func (h *QueueHandler) GetQueueStatistics(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue ID: invalid UUID format"})
		return
	}

	stats, err := h.stats.GetStatistics(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrQueueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetQueueLog handles GET /api/v1/queues/:id/log
// @Summary Get the rotation audit log
// @Description Get the most recent rotation audit entries for a queue, newest first
// @Tags audit
// @Accept json
// @Produce json
// @Param id path string true "Queue ID (UUID)"
// @Param limit query int false "Maximum number of entries (default 50)"
// @Success 200 {array} service.AuditLogEntryResponse "Successfully retrieved audit log"
// @Failure 400 {object} map[string]interface{} "Invalid queue ID"
// @Failure 404 {object} map[string]interface{} "Queue not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /queues/{id}/log [get]
func (h *QueueHandler) GetQueueLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue ID: invalid UUID format"})
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
	}

	entries, err := h.audit.ListLog(id, limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrQueueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get audit log", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
