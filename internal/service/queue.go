package service

import (
	"errors"
	"fmt"

	"lead-rotation-backend/internal/database/models"
	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QueueService handles business logic for queue metadata
type QueueService struct {
	repo      repository.QueueRepositoryInterface
	validator *validator.Validate
}

// NewQueueService creates a new queue service
func NewQueueService(repo repository.QueueRepositoryInterface, validator *validator.Validate) *QueueService {
	return &QueueService{
		repo:      repo,
		validator: validator,
	}
}

// CreateQueueRequest represents the request to create a queue
type CreateQueueRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"max=200"`
	Color       string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// UpdateQueueRequest represents the request to update a queue
type UpdateQueueRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
	Color       *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// QueueResponse represents the response for queue operations
type QueueResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"is_active"`
	MemberCount int64     `json:"member_count"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// Create creates a new queue. Display names must be unique among active
// queues only; deactivated queues may share names with later ones.
func (s *QueueService) Create(req *CreateQueueRequest) (*QueueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetActiveByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check queue name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrQueueExists
	}

	queue := &models.Queue{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.Color != "" {
		queue.Color = req.Color
	}

	if err := s.repo.Create(queue); err != nil {
		return nil, fmt.Errorf("failed to create queue: %w", err)
	}

	return s.toResponse(queue, 0), nil
}

// GetByID retrieves a queue by ID
func (s *QueueService) GetByID(id uuid.UUID) (*QueueResponse, error) {
	queue, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQueueNotFound
		}
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	count, err := s.repo.CountActiveMembers(queue.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return s.toResponse(queue, count), nil
}

// ListActive retrieves all active queues with their member counts
func (s *QueueService) ListActive() ([]QueueResponse, error) {
	queues, err := s.repo.GetAllActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list queues: %w", err)
	}

	responses := make([]QueueResponse, 0, len(queues))
	for i := range queues {
		count, err := s.repo.CountActiveMembers(queues[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count members: %w", err)
		}
		responses = append(responses, *s.toResponse(&queues[i], count))
	}
	return responses, nil
}

// Update updates a queue's metadata
func (s *QueueService) Update(id uuid.UUID, req *UpdateQueueRequest) (*QueueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	queue, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQueueNotFound
		}
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	if req.Name != nil && *req.Name != queue.Name {
		existing, err := s.repo.GetActiveByName(*req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check queue name: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrQueueExists
		}
		queue.Name = *req.Name
	}
	if req.Description != nil {
		queue.Description = *req.Description
	}
	if req.Color != nil {
		queue.Color = *req.Color
	}

	if err := s.repo.Update(queue); err != nil {
		return nil, fmt.Errorf("failed to update queue: %w", err)
	}

	count, err := s.repo.CountActiveMembers(queue.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	return s.toResponse(queue, count), nil
}

// Deactivate soft-deactivates a queue. Referenced queues are never hard
// deleted; their roster entries become inert.
func (s *QueueService) Deactivate(id uuid.UUID) error {
	if err := s.repo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrQueueNotFound
		}
		return fmt.Errorf("failed to deactivate queue: %w", err)
	}
	return nil
}

func (s *QueueService) toResponse(queue *models.Queue, memberCount int64) *QueueResponse {
	return &QueueResponse{
		ID:          queue.ID,
		Name:        queue.Name,
		Description: queue.Description,
		Color:       queue.Color,
		IsActive:    queue.IsActive,
		MemberCount: memberCount,
		CreatedAt:   queue.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   queue.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
