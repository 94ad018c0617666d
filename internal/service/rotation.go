package service

import (
	"errors"
	"fmt"
	"time"

	"lead-rotation-backend/internal/database/models"
	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/logger"
	"lead-rotation-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RotationService is the scheduler: it advances a queue's head to the tail,
// promotes everyone else, and manages roster membership. Every mutation runs
// inside the roster repository's per-queue transactional unit, so two
// concurrent advances on the same queue observe a total order. Selection is
// strictly by position; the absence overlay never filters eligibility.
type RotationService struct {
	queueRepo   repository.QueueRepositoryInterface
	agentRepo   repository.AgentRepositoryInterface
	rosterRepo  repository.RosterRepositoryInterface
	absenceRepo repository.AbsenceRepositoryInterface
	log         *logger.Logger
}

// NewRotationService creates a new rotation service
func NewRotationService(
	queueRepo repository.QueueRepositoryInterface,
	agentRepo repository.AgentRepositoryInterface,
	rosterRepo repository.RosterRepositoryInterface,
	absenceRepo repository.AbsenceRepositoryInterface,
) *RotationService {
	return &RotationService{
		queueRepo:   queueRepo,
		agentRepo:   agentRepo,
		rosterRepo:  rosterRepo,
		absenceRepo: absenceRepo,
		log:         logger.WithComponent("rotation"),
	}
}

// AgentSummary carries agent display data on rotation responses
type AgentSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	WhatsApp string    `json:"whatsapp,omitempty"`
}

// AdvanceResponse represents the outcome of advancing a queue
type AdvanceResponse struct {
	QueueID        uuid.UUID    `json:"queue_id"`
	Agent          AgentSummary `json:"agent"`
	PositionBefore int          `json:"position_before"`
	PositionAfter  int          `json:"position_after"`
}

// RosterEntryResponse represents one roster slot joined with agent display
// data and the informational absence flag for today.
type RosterEntryResponse struct {
	AgentID     uuid.UUID `json:"agent_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Position    int       `json:"position"`
	AbsentToday bool      `json:"absent_today"`
	JoinedAt    time.Time `json:"joined_at"`
}

func (s *RotationService) activeQueue(queueID uuid.UUID) (*models.Queue, error) {
	queue, err := s.queueRepo.GetByID(queueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQueueNotFound
		}
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if !queue.IsActive {
		return nil, apperrors.ErrQueueInactive
	}
	return queue, nil
}

// Advance completes the head's turn: the agent at position 1 goes to the back
// of the roster, everyone else is promoted by one, and one audit entry is
// appended. Synchronizing ownership with the CRM is a separate step invoked by
// the caller after this returns.
func (s *RotationService) Advance(queueID uuid.UUID) (*AdvanceResponse, error) {
	if _, err := s.activeQueue(queueID); err != nil {
		return nil, err
	}

	entry, newPosition, err := s.rosterRepo.AdvanceHead(queueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmptyQueue
		}
		return nil, fmt.Errorf("failed to advance queue: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"queue_id":     queueID,
		"agent_id":     entry.AgentID,
		"new_position": newPosition,
	}).Info("queue advanced")

	return &AdvanceResponse{
		QueueID: queueID,
		Agent: AgentSummary{
			ID:       entry.Agent.ID,
			Name:     entry.Agent.Name,
			Email:    entry.Agent.Email,
			Phone:    entry.Agent.Phone,
			WhatsApp: entry.Agent.WhatsApp,
		},
		PositionBefore: 1,
		PositionAfter:  newPosition,
	}, nil
}

// AddMember adds an agent to the tail of a queue's roster, reactivating a
// previously removed membership if one exists.
func (s *RotationService) AddMember(queueID, agentID uuid.UUID) (*RosterEntryResponse, error) {
	if _, err := s.activeQueue(queueID); err != nil {
		return nil, err
	}

	agent, err := s.agentRepo.GetByID(agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	entry, err := s.rosterRepo.AddMember(queueID, agentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyMember) {
			return nil, apperrors.ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"queue_id": queueID,
		"agent_id": agentID,
		"position": entry.Position,
	}).Info("agent joined queue")

	return &RosterEntryResponse{
		AgentID:  agentID,
		Name:     agent.Name,
		Email:    agent.Email,
		Position: entry.Position,
		JoinedAt: entry.CreatedAt,
	}, nil
}

// RemoveMember soft-deletes an agent's roster entry and renumbers the
// remaining members so positions stay contiguous.
func (s *RotationService) RemoveMember(queueID, agentID uuid.UUID) error {
	if _, err := s.activeQueue(queueID); err != nil {
		return err
	}

	if _, err := s.rosterRepo.RemoveMember(queueID, agentID); err != nil {
		if errors.Is(err, apperrors.ErrNotMember) {
			return apperrors.ErrNotMember
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"queue_id": queueID,
		"agent_id": agentID,
	}).Info("agent removed from queue")

	return nil
}

// ListRoster returns the queue's roster ordered by position, with each entry
// flagged when an active absence covers today. The flag is informational; it
// does not affect who gets advanced.
func (s *RotationService) ListRoster(queueID uuid.UUID) ([]RosterEntryResponse, error) {
	queue, err := s.queueRepo.GetByID(queueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQueueNotFound
		}
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	entries, err := s.rosterRepo.GetActiveByQueue(queue.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}

	absences, err := s.absenceRepo.GetActiveCovering(queue.ID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load absence overlay: %w", err)
	}
	absent := make(map[uuid.UUID]bool, len(absences))
	for _, a := range absences {
		absent[a.AgentID] = true
	}

	responses := make([]RosterEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, RosterEntryResponse{
			AgentID:     entry.AgentID,
			Name:        entry.Agent.Name,
			Email:       entry.Agent.Email,
			Position:    entry.Position,
			AbsentToday: absent[entry.AgentID],
			JoinedAt:    entry.CreatedAt,
		})
	}
	return responses, nil
}
