package repository

import (
	"time"

	"lead-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RotationLogRepository handles database operations for the rotation audit
// log. The log is append-only: there are no update or delete operations, so
// concurrent writers need no coordination.
type RotationLogRepository struct {
	db *gorm.DB
}

// NewRotationLogRepository creates a new rotation log repository
func NewRotationLogRepository(db *gorm.DB) *RotationLogRepository {
	return &RotationLogRepository{db: db}
}

// Create appends an audit entry
func (r *RotationLogRepository) Create(entry *models.RotationLog) error {
	return r.db.Create(entry).Error
}

// GetByQueue retrieves the most recent audit entries for a queue, newest
// first, with agent display data preloaded.
func (r *RotationLogRepository) GetByQueue(queueID uuid.UUID, limit int) ([]models.RotationLog, error) {
	var entries []models.RotationLog
	err := r.db.Preload("Agent").
		Where("queue_id = ?", queueID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// CountCalledOn counts genuine "called next" events (advanced from position 1)
// for a queue on the given calendar date, using the process-local timezone.
func (r *RotationLogRepository) CountCalledOn(queueID uuid.UUID, date time.Time) (int64, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var total int64
	err := r.db.Model(&models.RotationLog{}).
		Where("queue_id = ? AND action = ? AND position_before = ?", queueID, models.RotationActionAdvanced, 1).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&total).Error
	return total, err
}

// GetRecentCalls retrieves the most recent "called next" events for a queue,
// newest first.
func (r *RotationLogRepository) GetRecentCalls(queueID uuid.UUID, limit int) ([]models.RotationLog, error) {
	var entries []models.RotationLog
	err := r.db.
		Where("queue_id = ? AND action = ? AND position_before = ?", queueID, models.RotationActionAdvanced, 1).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
