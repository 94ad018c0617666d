package models

import (
	"time"

	"github.com/google/uuid"
)

// RosterEntry represents one agent's membership and position within a queue.
// Invariant: for a queue, the non-removed entries' positions are exactly 1..N.
type RosterEntry struct {
	BaseModel
	QueueID   uuid.UUID  `json:"queue_id" gorm:"type:uuid;not null;index:idx_roster_queue_agent,unique" validate:"required"`
	AgentID   uuid.UUID  `json:"agent_id" gorm:"type:uuid;not null;index:idx_roster_queue_agent,unique" validate:"required"`
	Position  int        `json:"position" gorm:"not null" validate:"required,min=1"`
	Removed   bool       `json:"removed" gorm:"default:false;index"`
	RemovedAt *time.Time `json:"removed_at,omitempty"`

	// Relationships
	Queue Queue `json:"queue,omitempty" gorm:"foreignKey:QueueID;constraint:OnDelete:CASCADE"`
	Agent Agent `json:"agent,omitempty" gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RosterEntry
func (RosterEntry) TableName() string {
	return "roster_entries"
}
