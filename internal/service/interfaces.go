package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// QueueServiceInterface defines the interface for queue service
type QueueServiceInterface interface {
	Create(req *CreateQueueRequest) (*QueueResponse, error)
	GetByID(id uuid.UUID) (*QueueResponse, error)
	ListActive() ([]QueueResponse, error)
	Update(id uuid.UUID, req *UpdateQueueRequest) (*QueueResponse, error)
	Deactivate(id uuid.UUID) error
}

// AgentServiceInterface defines the interface for agent service
type AgentServiceInterface interface {
	Create(req *CreateAgentRequest) (*AgentResponse, error)
	GetByID(id uuid.UUID) (*AgentResponse, error)
	List(page, pageSize int) (*AgentListResponse, error)
	ListUnrostered() ([]AgentResponse, error)
	Update(id uuid.UUID, req *UpdateAgentRequest) (*AgentResponse, error)
	Delete(id uuid.UUID) error
	ListAbsences(agentID uuid.UUID) ([]AbsenceResponse, error)
	CreateAbsence(agentID uuid.UUID, req *CreateAbsenceRequest) (*AbsenceResponse, error)
	DeactivateAbsence(agentID, absenceID uuid.UUID) error
}

// RotationServiceInterface defines the interface for the rotation engine
type RotationServiceInterface interface {
	Advance(queueID uuid.UUID) (*AdvanceResponse, error)
	AddMember(queueID, agentID uuid.UUID) (*RosterEntryResponse, error)
	RemoveMember(queueID, agentID uuid.UUID) error
	ListRoster(queueID uuid.UUID) ([]RosterEntryResponse, error)
}

// SyncServiceInterface defines the interface for the ownership synchronizer
type SyncServiceInterface interface {
	Sync(ctx context.Context, queueID, agentID uuid.UUID, leadIDHint string) (*SyncResult, error)
	Resend(ctx context.Context, webhookLogID uuid.UUID) (*SyncResult, error)
	ListLogs(queueID *uuid.UUID, limit int) ([]WebhookLogResponse, error)
}

// StatisticsServiceInterface defines the interface for the statistics aggregator
type StatisticsServiceInterface interface {
	GetStatistics(queueID uuid.UUID) (*QueueStatistics, error)
}

// AuditServiceInterface defines the interface for audit log queries
type AuditServiceInterface interface {
	ListLog(queueID uuid.UUID, limit int) ([]AuditLogEntryResponse, error)
}

// CRMClientInterface defines the interface for the external lead CRM
type CRMClientInterface interface {
	GetLead(ctx context.Context, leadID string) (*Lead, error)
	UpdateLead(ctx context.Context, leadID string, userAccess []string, owner string) error
}
