package repository

import (
	"time"

	"lead-rotation-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// QueueRepositoryInterface defines the interface for queue repository operations
type QueueRepositoryInterface interface {
	Create(queue *models.Queue) error
	GetByID(id uuid.UUID) (*models.Queue, error)
	GetActiveByName(name string) (*models.Queue, error)
	GetAllActive() ([]models.Queue, error)
	CountActiveMembers(queueID uuid.UUID) (int64, error)
	Update(queue *models.Queue) error
	Deactivate(id uuid.UUID) error
}

// AgentRepositoryInterface defines the interface for agent repository operations
type AgentRepositoryInterface interface {
	Create(agent *models.Agent) error
	GetByID(id uuid.UUID) (*models.Agent, error)
	GetByEmail(email string) (*models.Agent, error)
	GetAll(limit, offset int) ([]models.Agent, int64, error)
	GetUnrostered() ([]models.Agent, error)
	Update(agent *models.Agent) error
	Delete(id uuid.UUID) error
}

// RosterRepositoryInterface defines the interface for roster repository
// operations. AdvanceHead, AddMember and RemoveMember each run as a single
// transaction holding row-level locks on the queue's roster entries.
type RosterRepositoryInterface interface {
	GetActiveByQueue(queueID uuid.UUID) ([]models.RosterEntry, error)
	GetHead(queueID uuid.UUID) (*models.RosterEntry, error)
	AdvanceHead(queueID uuid.UUID) (*models.RosterEntry, int, error)
	AddMember(queueID, agentID uuid.UUID) (*models.RosterEntry, error)
	RemoveMember(queueID, agentID uuid.UUID) (*models.RosterEntry, error)
}

// AbsenceRepositoryInterface defines the interface for absence repository operations
type AbsenceRepositoryInterface interface {
	Create(absence *models.Absence) error
	GetByID(id uuid.UUID) (*models.Absence, error)
	GetByAgent(agentID uuid.UUID) ([]models.Absence, error)
	GetActiveCovering(queueID uuid.UUID, date time.Time) ([]models.Absence, error)
	Deactivate(id uuid.UUID) error
}

// RotationLogRepositoryInterface defines the interface for the append-only
// rotation audit log. There are no update or delete operations.
type RotationLogRepositoryInterface interface {
	Create(entry *models.RotationLog) error
	GetByQueue(queueID uuid.UUID, limit int) ([]models.RotationLog, error)
	CountCalledOn(queueID uuid.UUID, date time.Time) (int64, error)
	GetRecentCalls(queueID uuid.UUID, limit int) ([]models.RotationLog, error)
}

// WebhookLogRepositoryInterface defines the interface for the append-only
// ownership synchronization log.
type WebhookLogRepositoryInterface interface {
	Create(entry *models.WebhookLog) error
	GetByID(id uuid.UUID) (*models.WebhookLog, error)
	GetRecent(queueID *uuid.UUID, limit int) ([]models.WebhookLog, error)
}
