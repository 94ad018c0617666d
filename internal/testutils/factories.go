package testutils

import (
	"time"

	"lead-rotation-backend/internal/database/models"

	"github.com/google/uuid"
)

// QueueFactory provides methods to create test Queue data
type QueueFactory struct{}

// NewQueueFactory creates a new QueueFactory
func NewQueueFactory() *QueueFactory {
	return &QueueFactory{}
}

// Create creates a test Queue with default values
func (f *QueueFactory) Create() *models.Queue {
	id := uuid.New()
	return &models.Queue{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Queue " + id.String()[:8],
		Description: "A test rotation queue",
		Color:       "#3B82F6",
		IsActive:    true,
	}
}

// WithName sets a custom name for the queue
func (f *QueueFactory) WithName(name string) *models.Queue {
	queue := f.Create()
	queue.Name = name
	return queue
}

// Inactive creates a deactivated queue
func (f *QueueFactory) Inactive() *models.Queue {
	queue := f.Create()
	queue.IsActive = false
	return queue
}

// AgentFactory provides methods to create test Agent data
type AgentFactory struct{}

// NewAgentFactory creates a new AgentFactory
func NewAgentFactory() *AgentFactory {
	return &AgentFactory{}
}

// Create creates a test Agent with default values. Emails are derived from the
// UUID so factories never collide on the unique index.
func (f *AgentFactory) Create() *models.Agent {
	id := uuid.New()
	return &models.Agent{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Agent",
		Email:    "agent-" + id.String()[:8] + "@test.com",
		Phone:    "+1-555-0100",
		WhatsApp: "+1-555-0100",
		IsActive: true,
	}
}

// WithName sets a custom name for the agent
func (f *AgentFactory) WithName(name string) *models.Agent {
	agent := f.Create()
	agent.Name = name
	return agent
}

// WithEmail sets a custom email for the agent
func (f *AgentFactory) WithEmail(email string) *models.Agent {
	agent := f.Create()
	agent.Email = email
	return agent
}

// RosterEntryFactory provides methods to create test RosterEntry data
type RosterEntryFactory struct{}

// NewRosterEntryFactory creates a new RosterEntryFactory
func NewRosterEntryFactory() *RosterEntryFactory {
	return &RosterEntryFactory{}
}

// Create creates a roster entry binding an agent to a queue at a position
func (f *RosterEntryFactory) Create(queueID, agentID uuid.UUID, position int) *models.RosterEntry {
	return &models.RosterEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		QueueID:  queueID,
		AgentID:  agentID,
		Position: position,
	}
}

// Removed creates a soft-removed roster entry
func (f *RosterEntryFactory) Removed(queueID, agentID uuid.UUID, position int) *models.RosterEntry {
	entry := f.Create(queueID, agentID, position)
	entry.Removed = true
	now := time.Now()
	entry.RemovedAt = &now
	return entry
}

// AbsenceFactory provides methods to create test Absence data
type AbsenceFactory struct{}

// NewAbsenceFactory creates a new AbsenceFactory
func NewAbsenceFactory() *AbsenceFactory {
	return &AbsenceFactory{}
}

// Create creates an active absence covering today
func (f *AbsenceFactory) Create(agentID, queueID uuid.UUID) *models.Absence {
	today := time.Now().Truncate(24 * time.Hour)
	return &models.Absence{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AgentID:   agentID,
		QueueID:   queueID,
		DateStart: today,
		DateEnd:   today.AddDate(0, 0, 1),
		Reason:    "vacation",
		Active:    true,
	}
}

// WithRange sets a custom date range for the absence
func (f *AbsenceFactory) WithRange(agentID, queueID uuid.UUID, start, end time.Time) *models.Absence {
	absence := f.Create(agentID, queueID)
	absence.DateStart = start
	absence.DateEnd = end
	return absence
}

// RotationLogFactory provides methods to create test RotationLog data
type RotationLogFactory struct{}

// NewRotationLogFactory creates a new RotationLogFactory
func NewRotationLogFactory() *RotationLogFactory {
	return &RotationLogFactory{}
}

// Advanced creates an audit entry for a completed turn at a given time
func (f *RotationLogFactory) Advanced(queueID, agentID uuid.UUID, positionAfter int, at time.Time) *models.RotationLog {
	return &models.RotationLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: at,
			UpdatedAt: at,
		},
		QueueID:        queueID,
		AgentID:        agentID,
		Action:         models.RotationActionAdvanced,
		PositionBefore: 1,
		PositionAfter:  positionAfter,
	}
}

// Removed creates an audit entry for a roster removal
func (f *RotationLogFactory) Removed(queueID, agentID uuid.UUID, positionBefore int) *models.RotationLog {
	now := time.Now()
	return &models.RotationLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		QueueID:        queueID,
		AgentID:        agentID,
		Action:         models.RotationActionRemoved,
		PositionBefore: positionBefore,
		PositionAfter:  0,
	}
}

// WebhookLogFactory provides methods to create test WebhookLog data
type WebhookLogFactory struct{}

// NewWebhookLogFactory creates a new WebhookLogFactory
func NewWebhookLogFactory() *WebhookLogFactory {
	return &WebhookLogFactory{}
}

// Create creates a successful synchronization attempt record
func (f *WebhookLogFactory) Create(queueID, agentID uuid.UUID, leadID string) *models.WebhookLog {
	return &models.WebhookLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		QueueID:    queueID,
		AgentID:    agentID,
		LeadID:     leadID,
		Action:     "ownership_sync",
		OwnerAfter: agentID.String(),
		Status:     models.WebhookStatusSuccess,
	}
}

// Failed creates a failed synchronization attempt record
func (f *WebhookLogFactory) Failed(queueID, agentID uuid.UUID, leadID, detail string) *models.WebhookLog {
	entry := f.Create(queueID, agentID, leadID)
	entry.OwnerAfter = ""
	entry.Status = models.WebhookStatusFailure
	entry.ErrorDetail = detail
	return entry
}

// FactorySet provides access to all factories
type FactorySet struct {
	Queue       *QueueFactory
	Agent       *AgentFactory
	RosterEntry *RosterEntryFactory
	Absence     *AbsenceFactory
	RotationLog *RotationLogFactory
	WebhookLog  *WebhookLogFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Queue:       NewQueueFactory(),
		Agent:       NewAgentFactory(),
		RosterEntry: NewRosterEntryFactory(),
		Absence:     NewAbsenceFactory(),
		RotationLog: NewRotationLogFactory(),
		WebhookLog:  NewWebhookLogFactory(),
	}
}
