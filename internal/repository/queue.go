package repository

import (
	"lead-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QueueRepository handles database operations for queues
type QueueRepository struct {
	db *gorm.DB
}

// NewQueueRepository creates a new queue repository
func NewQueueRepository(db *gorm.DB) *QueueRepository {
	return &QueueRepository{db: db}
}

// Create creates a new queue
func (r *QueueRepository) Create(queue *models.Queue) error {
	return r.db.Create(queue).Error
}

// GetByID retrieves a queue by ID
func (r *QueueRepository) GetByID(id uuid.UUID) (*models.Queue, error) {
	var queue models.Queue
	err := r.db.First(&queue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &queue, nil
}

// GetActiveByName retrieves an active queue by its display name
func (r *QueueRepository) GetActiveByName(name string) (*models.Queue, error) {
	var queue models.Queue
	err := r.db.First(&queue, "name = ? AND is_active = ?", name, true).Error
	if err != nil {
		return nil, err
	}
	return &queue, nil
}

// GetAllActive retrieves all active queues ordered by name
func (r *QueueRepository) GetAllActive() ([]models.Queue, error) {
	var queues []models.Queue
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&queues).Error
	if err != nil {
		return nil, err
	}
	return queues, nil
}

// CountActiveMembers counts the non-removed roster entries of a queue
func (r *QueueRepository) CountActiveMembers(queueID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.RosterEntry{}).
		Where("queue_id = ? AND removed = ?", queueID, false).
		Count(&total).Error
	return total, err
}

// Update updates a queue
func (r *QueueRepository) Update(queue *models.Queue) error {
	return r.db.Save(queue).Error
}

// Deactivate soft-deactivates a queue. Roster entries are left in place and
// become inert; queues referenced by logs are never hard-deleted.
func (r *QueueRepository) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&models.Queue{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
