package repository

import (
	"time"

	"lead-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbsenceRepository handles database operations for absences
type AbsenceRepository struct {
	db *gorm.DB
}

// NewAbsenceRepository creates a new absence repository
func NewAbsenceRepository(db *gorm.DB) *AbsenceRepository {
	return &AbsenceRepository{db: db}
}

// Create creates a new absence
func (r *AbsenceRepository) Create(absence *models.Absence) error {
	return r.db.Create(absence).Error
}

// GetByID retrieves an absence by ID
func (r *AbsenceRepository) GetByID(id uuid.UUID) (*models.Absence, error) {
	var absence models.Absence
	err := r.db.First(&absence, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &absence, nil
}

// GetByAgent retrieves all absences of an agent, most recent range first,
// with queue display data preloaded.
func (r *AbsenceRepository) GetByAgent(agentID uuid.UUID) ([]models.Absence, error) {
	var absences []models.Absence
	err := r.db.Preload("Queue").
		Where("agent_id = ?", agentID).
		Order("date_start DESC").
		Find(&absences).Error
	if err != nil {
		return nil, err
	}
	return absences, nil
}

// GetActiveCovering retrieves active absences for a queue whose date range
// contains the given date. The rotation engine never consults this; it feeds
// the display overlay only.
func (r *AbsenceRepository) GetActiveCovering(queueID uuid.UUID, date time.Time) ([]models.Absence, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var absences []models.Absence
	err := r.db.
		Where("queue_id = ? AND active = ?", queueID, true).
		Where("date_start <= ? AND date_end >= ?", day, day).
		Find(&absences).Error
	if err != nil {
		return nil, err
	}
	return absences, nil
}

// Deactivate marks an absence inactive
func (r *AbsenceRepository) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&models.Absence{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
