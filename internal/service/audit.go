package service

import (
	"errors"
	"fmt"
	"time"

	"lead-rotation-backend/internal/database/models"
	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultAuditLogLimit = 50

// AuditService answers read-only queries against the rotation audit log
type AuditService struct {
	queueRepo repository.QueueRepositoryInterface
	logRepo   repository.RotationLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(
	queueRepo repository.QueueRepositoryInterface,
	logRepo repository.RotationLogRepositoryInterface,
) *AuditService {
	return &AuditService{
		queueRepo: queueRepo,
		logRepo:   logRepo,
	}
}

// AuditLogEntryResponse represents an audit entry joined with agent display data
type AuditLogEntryResponse struct {
	ID             uuid.UUID             `json:"id"`
	AgentID        uuid.UUID             `json:"agent_id"`
	AgentName      string                `json:"agent_name"`
	AgentEmail     string                `json:"agent_email"`
	Action         models.RotationAction `json:"action"`
	PositionBefore int                   `json:"position_before"`
	PositionAfter  int                   `json:"position_after"`
	CreatedAt      time.Time             `json:"created_at"`
}

// ListLog returns the most recent audit entries for a queue, newest first
func (s *AuditService) ListLog(queueID uuid.UUID, limit int) ([]AuditLogEntryResponse, error) {
	if _, err := s.queueRepo.GetByID(queueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQueueNotFound
		}
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	if limit <= 0 {
		limit = defaultAuditLogLimit
	}

	entries, err := s.logRepo.GetByQueue(queueID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}

	responses := make([]AuditLogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, AuditLogEntryResponse{
			ID:             entry.ID,
			AgentID:        entry.AgentID,
			AgentName:      entry.Agent.Name,
			AgentEmail:     entry.Agent.Email,
			Action:         entry.Action,
			PositionBefore: entry.PositionBefore,
			PositionAfter:  entry.PositionAfter,
			CreatedAt:      entry.CreatedAt,
		})
	}
	return responses, nil
}
