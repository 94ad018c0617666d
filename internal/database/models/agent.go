package models

// Agent represents a sales agent who receives leads through queue rotation
type Agent struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email    string `json:"email" gorm:"size:150;not null;uniqueIndex" validate:"required,email"`
	Phone    string `json:"phone" gorm:"size:30"`
	WhatsApp string `json:"whatsapp" gorm:"size:30"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	RosterEntries []RosterEntry `json:"roster_entries,omitempty" gorm:"foreignKey:AgentID"`
	Absences      []Absence     `json:"absences,omitempty" gorm:"foreignKey:AgentID"`
}

// TableName returns the table name for Agent
func (Agent) TableName() string {
	return "agents"
}
