package models

import (
	"time"

	"github.com/google/uuid"
)

// Absence marks an agent unavailable for a queue over an inclusive date range.
// It is a display overlay only and never affects rotation selection.
type Absence struct {
	BaseModel
	AgentID   uuid.UUID `json:"agent_id" gorm:"type:uuid;not null;index" validate:"required"`
	QueueID   uuid.UUID `json:"queue_id" gorm:"type:uuid;not null;index" validate:"required"`
	DateStart time.Time `json:"date_start" gorm:"type:date;not null" validate:"required"`
	DateEnd   time.Time `json:"date_end" gorm:"type:date;not null" validate:"required"`
	Reason    string    `json:"reason" gorm:"size:200;not null" validate:"required,max=200"`
	Active    bool      `json:"active" gorm:"default:true"`

	// Relationships
	Agent Agent `json:"agent,omitempty" gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE"`
	Queue Queue `json:"queue,omitempty" gorm:"foreignKey:QueueID;constraint:OnDelete:CASCADE"`
}

// Covers reports whether the absence is active and its range contains the given date.
func (a *Absence) Covers(date time.Time) bool {
	if !a.Active {
		return false
	}
	day := date.Truncate(24 * time.Hour)
	start := a.DateStart.Truncate(24 * time.Hour)
	end := a.DateEnd.Truncate(24 * time.Hour)
	return !day.Before(start) && !day.After(end)
}

// TableName returns the table name for Absence
func (Absence) TableName() string {
	return "absences"
}
