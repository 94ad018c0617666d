package models

// Queue represents a named round-robin roster of agents
type Queue struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;index" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:200" validate:"max=200"`
	Color       string `json:"color" gorm:"size:7;default:'#3B82F6'"`
	IsActive    bool   `json:"is_active" gorm:"default:true;index"`

	// Relationships
	RosterEntries []RosterEntry `json:"roster_entries,omitempty" gorm:"foreignKey:QueueID"`
}

// TableName returns the table name for Queue
func (Queue) TableName() string {
	return "queues"
}
