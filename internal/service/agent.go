package service

import (
	"errors"
	"fmt"
	"time"

	"lead-rotation-backend/internal/database/models"
	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentService handles business logic for agent profiles and the absence
// overlay
type AgentService struct {
	repo        repository.AgentRepositoryInterface
	queueRepo   repository.QueueRepositoryInterface
	absenceRepo repository.AbsenceRepositoryInterface
	validator   *validator.Validate
}

// NewAgentService creates a new agent service
func NewAgentService(
	repo repository.AgentRepositoryInterface,
	queueRepo repository.QueueRepositoryInterface,
	absenceRepo repository.AbsenceRepositoryInterface,
	validator *validator.Validate,
) *AgentService {
	return &AgentService{
		repo:        repo,
		queueRepo:   queueRepo,
		absenceRepo: absenceRepo,
		validator:   validator,
	}
}

// CreateAgentRequest represents the request to create an agent
type CreateAgentRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"max=30"`
	WhatsApp string `json:"whatsapp,omitempty" validate:"max=30"`
}

// UpdateAgentRequest represents the request to update an agent
type UpdateAgentRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	WhatsApp *string `json:"whatsapp,omitempty" validate:"omitempty,max=30"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// AgentResponse represents the response for agent operations
type AgentResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	WhatsApp string    `json:"whatsapp,omitempty"`
	IsActive bool      `json:"is_active"`
}

// AgentListResponse represents a paginated list of agents
type AgentListResponse struct {
	Agents   []AgentResponse `json:"agents"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// CreateAbsenceRequest represents the request to mark an agent unavailable
type CreateAbsenceRequest struct {
	QueueID   *uuid.UUID `json:"queue_id,omitempty"`
	DateStart time.Time  `json:"date_start" validate:"required"`
	DateEnd   time.Time  `json:"date_end" validate:"required"`
	Reason    string     `json:"reason" validate:"required,max=200"`
}

// AbsenceResponse represents the response for absence operations
type AbsenceResponse struct {
	ID        uuid.UUID `json:"id"`
	AgentID   uuid.UUID `json:"agent_id"`
	QueueID   uuid.UUID `json:"queue_id"`
	QueueName string    `json:"queue_name"`
	DateStart time.Time `json:"date_start"`
	DateEnd   time.Time `json:"date_end"`
	Reason    string    `json:"reason"`
	Active    bool      `json:"active"`
}

// Create creates a new agent
func (s *AgentService) Create(req *CreateAgentRequest) (*AgentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check agent email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAgentExists
	}

	agent := &models.Agent{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		WhatsApp: req.WhatsApp,
		IsActive: true,
	}
	if err := s.repo.Create(agent); err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return s.toResponse(agent), nil
}

// GetByID retrieves an agent by ID
func (s *AgentService) GetByID(id uuid.UUID) (*AgentResponse, error) {
	agent, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return s.toResponse(agent), nil
}

// List retrieves all agents with pagination
func (s *AgentService) List(page, pageSize int) (*AgentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	agents, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	responses := make([]AgentResponse, 0, len(agents))
	for i := range agents {
		responses = append(responses, *s.toResponse(&agents[i]))
	}

	return &AgentListResponse{
		Agents:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListUnrostered retrieves agents not currently rostered in any active queue
func (s *AgentService) ListUnrostered() ([]AgentResponse, error) {
	agents, err := s.repo.GetUnrostered()
	if err != nil {
		return nil, fmt.Errorf("failed to list unrostered agents: %w", err)
	}

	responses := make([]AgentResponse, 0, len(agents))
	for i := range agents {
		responses = append(responses, *s.toResponse(&agents[i]))
	}
	return responses, nil
}

// Update updates an agent's profile
func (s *AgentService) Update(id uuid.UUID, req *UpdateAgentRequest) (*AgentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	agent, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	if req.Email != nil && *req.Email != agent.Email {
		existing, err := s.repo.GetByEmail(*req.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check agent email: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrAgentExists
		}
		agent.Email = *req.Email
	}
	if req.Name != nil {
		agent.Name = *req.Name
	}
	if req.Phone != nil {
		agent.Phone = *req.Phone
	}
	if req.WhatsApp != nil {
		agent.WhatsApp = *req.WhatsApp
	}
	if req.IsActive != nil {
		agent.IsActive = *req.IsActive
	}

	if err := s.repo.Update(agent); err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return s.toResponse(agent), nil
}

// Delete deletes an agent
func (s *AgentService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAgentNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// ListAbsences retrieves the absence overlay entries for an agent
func (s *AgentService) ListAbsences(agentID uuid.UUID) ([]AbsenceResponse, error) {
	if _, err := s.repo.GetByID(agentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	absences, err := s.absenceRepo.GetByAgent(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	responses := make([]AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		responses = append(responses, AbsenceResponse{
			ID:        a.ID,
			AgentID:   a.AgentID,
			QueueID:   a.QueueID,
			QueueName: a.Queue.Name,
			DateStart: a.DateStart,
			DateEnd:   a.DateEnd,
			Reason:    a.Reason,
			Active:    a.Active,
		})
	}
	return responses, nil
}

// CreateAbsence marks an agent unavailable for a queue over a date range.
// When no queue is given the first active queue is used, matching the
// original system's behavior. The overlay is informational only.
func (s *AgentService) CreateAbsence(agentID uuid.UUID, req *CreateAbsenceRequest) (*AbsenceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.DateEnd.Before(req.DateStart) {
		return nil, &apperrors.ValidationError{Field: "date_end", Message: "must not precede date_start"}
	}

	if _, err := s.repo.GetByID(agentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	var queue *models.Queue
	if req.QueueID != nil {
		q, err := s.queueRepo.GetByID(*req.QueueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrQueueNotFound
			}
			return nil, fmt.Errorf("failed to get queue: %w", err)
		}
		if !q.IsActive {
			return nil, apperrors.ErrQueueInactive
		}
		queue = q
	} else {
		queues, err := s.queueRepo.GetAllActive()
		if err != nil {
			return nil, fmt.Errorf("failed to list queues: %w", err)
		}
		if len(queues) == 0 {
			return nil, apperrors.ErrQueueNotFound
		}
		queue = &queues[0]
	}

	absence := &models.Absence{
		AgentID:   agentID,
		QueueID:   queue.ID,
		DateStart: req.DateStart,
		DateEnd:   req.DateEnd,
		Reason:    req.Reason,
		Active:    true,
	}
	if err := s.absenceRepo.Create(absence); err != nil {
		return nil, fmt.Errorf("failed to create absence: %w", err)
	}

	return &AbsenceResponse{
		ID:        absence.ID,
		AgentID:   absence.AgentID,
		QueueID:   absence.QueueID,
		QueueName: queue.Name,
		DateStart: absence.DateStart,
		DateEnd:   absence.DateEnd,
		Reason:    absence.Reason,
		Active:    absence.Active,
	}, nil
}

// DeactivateAbsence deactivates one of an agent's absences
func (s *AgentService) DeactivateAbsence(agentID, absenceID uuid.UUID) error {
	absence, err := s.absenceRepo.GetByID(absenceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAbsenceNotFound
		}
		return fmt.Errorf("failed to get absence: %w", err)
	}
	if absence.AgentID != agentID {
		return apperrors.ErrAbsenceNotFound
	}

	if err := s.absenceRepo.Deactivate(absenceID); err != nil {
		return fmt.Errorf("failed to deactivate absence: %w", err)
	}
	return nil
}

func (s *AgentService) toResponse(agent *models.Agent) *AgentResponse {
	return &AgentResponse{
		ID:       agent.ID,
		Name:     agent.Name,
		Email:    agent.Email,
		Phone:    agent.Phone,
		WhatsApp: agent.WhatsApp,
		IsActive: agent.IsActive,
	}
}
