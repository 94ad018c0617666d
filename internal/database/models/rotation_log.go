package models

import (
	"github.com/google/uuid"
)

// RotationAction represents the kind of roster transition recorded in the log
type RotationAction string

const (
	RotationActionAdvanced RotationAction = "advanced"
	RotationActionRemoved  RotationAction = "removed"
)

// IsValid checks if the rotation action is valid
func (a RotationAction) IsValid() bool {
	return a == RotationActionAdvanced || a == RotationActionRemoved
}

// RotationLog is the append-only audit trail of roster transitions.
// Rows are never updated or deleted.
type RotationLog struct {
	BaseModel
	QueueID        uuid.UUID      `json:"queue_id" gorm:"type:uuid;not null;index" validate:"required"`
	AgentID        uuid.UUID      `json:"agent_id" gorm:"type:uuid;not null;index" validate:"required"`
	Action         RotationAction `json:"action" gorm:"type:varchar(20);not null" validate:"required"`
	PositionBefore int            `json:"position_before" gorm:"not null"`
	PositionAfter  int            `json:"position_after" gorm:"not null"`

	// Relationships
	Queue Queue `json:"queue,omitempty" gorm:"foreignKey:QueueID;constraint:OnDelete:CASCADE"`
	Agent Agent `json:"agent,omitempty" gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RotationLog
func (RotationLog) TableName() string {
	return "rotation_logs"
}
