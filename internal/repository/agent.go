package repository

import (
	"lead-rotation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentRepository handles database operations for agents
type AgentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates a new agent repository
func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// Create creates a new agent
func (r *AgentRepository) Create(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

// GetByID retrieves an agent by ID
func (r *AgentRepository) GetByID(id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.First(&agent, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetByEmail retrieves an agent by email
func (r *AgentRepository) GetByEmail(email string) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.First(&agent, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetAll retrieves all agents with pagination
func (r *AgentRepository) GetAll(limit, offset int) ([]models.Agent, int64, error) {
	var agents []models.Agent
	var total int64

	if err := r.db.Model(&models.Agent{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&agents).Error
	if err != nil {
		return nil, 0, err
	}

	return agents, total, nil
}

// GetUnrostered retrieves agents that hold no non-removed roster entry in any
// active queue, i.e. those available to be added somewhere.
func (r *AgentRepository) GetUnrostered() ([]models.Agent, error) {
	var agents []models.Agent
	err := r.db.
		Where(`id NOT IN (
			SELECT re.agent_id
			FROM roster_entries re
			JOIN queues q ON re.queue_id = q.id
			WHERE q.is_active = true AND re.removed = false
		)`).
		Order("name ASC").
		Find(&agents).Error
	if err != nil {
		return nil, err
	}
	return agents, nil
}

// Update updates an agent
func (r *AgentRepository) Update(agent *models.Agent) error {
	return r.db.Save(agent).Error
}

// Delete deletes an agent
func (r *AgentRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Agent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
