package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// WebhookStatus represents the outcome of one ownership synchronization attempt
type WebhookStatus string

const (
	WebhookStatusSuccess WebhookStatus = "success"
	WebhookStatusFailure WebhookStatus = "failure"
)

// IsValid checks if the webhook status is valid
func (s WebhookStatus) IsValid() bool {
	return s == WebhookStatusSuccess || s == WebhookStatusFailure
}

// WebhookLog records one CRM ownership synchronization attempt, successful or
// not. Append-only; the before snapshots are kept so failed attempts can be
// replayed later.
type WebhookLog struct {
	BaseModel
	QueueID          uuid.UUID       `json:"queue_id" gorm:"type:uuid;not null;index" validate:"required"`
	AgentID          uuid.UUID       `json:"agent_id" gorm:"type:uuid;not null;index" validate:"required"`
	LeadID           string          `json:"lead_id" gorm:"size:100;not null" validate:"required"`
	Action           string          `json:"action" gorm:"size:50;not null"`
	SnapshotBefore   json.RawMessage `json:"snapshot_before" gorm:"type:jsonb"`
	SnapshotAfter    json.RawMessage `json:"snapshot_after,omitempty" gorm:"type:jsonb"`
	AccessListBefore json.RawMessage `json:"access_list_before" gorm:"type:jsonb"`
	AccessListAfter  json.RawMessage `json:"access_list_after,omitempty" gorm:"type:jsonb"`
	OwnerBefore      string          `json:"owner_before" gorm:"size:100"`
	OwnerAfter       string          `json:"owner_after" gorm:"size:100"`
	Status           WebhookStatus   `json:"status" gorm:"type:varchar(20);not null;index" validate:"required"`
	ErrorDetail      string          `json:"error_detail,omitempty" gorm:"type:text"`

	// Relationships
	Queue Queue `json:"queue,omitempty" gorm:"foreignKey:QueueID;constraint:OnDelete:CASCADE"`
	Agent Agent `json:"agent,omitempty" gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WebhookLog
func (WebhookLog) TableName() string {
	return "webhook_logs"
}
