package repository

import (
	"lead-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookLogRepository handles database operations for the ownership
// synchronization log. Append-only, one row per attempt.
type WebhookLogRepository struct {
	db *gorm.DB
}

// NewWebhookLogRepository creates a new webhook log repository
func NewWebhookLogRepository(db *gorm.DB) *WebhookLogRepository {
	return &WebhookLogRepository{db: db}
}

// Create appends a synchronization attempt record
func (r *WebhookLogRepository) Create(entry *models.WebhookLog) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a webhook log entry by ID
func (r *WebhookLogRepository) GetByID(id uuid.UUID) (*models.WebhookLog, error) {
	var entry models.WebhookLog
	err := r.db.Preload("Agent").First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetRecent retrieves the most recent synchronization attempts, newest first,
// optionally filtered to one queue, with agent display data preloaded.
func (r *WebhookLogRepository) GetRecent(queueID *uuid.UUID, limit int) ([]models.WebhookLog, error) {
	query := r.db.Preload("Agent").Order("created_at DESC").Limit(limit)
	if queueID != nil {
		query = query.Where("queue_id = ?", *queueID)
	}

	var entries []models.WebhookLog
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
