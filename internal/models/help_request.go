package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Help request urgencies and statuses.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyUrgent = "urgent"

	HelpRequestStatusOpen       = "open"
	HelpRequestStatusInProgress = "in-progress"
	HelpRequestStatusCompleted  = "completed"
	HelpRequestStatusCancelled  = "cancelled"
)

type HelpRequest struct {
	ID             uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title          string                      `gorm:"not null;size:255" json:"title"`
	Description    string                      `gorm:"not null;type:text" json:"description"`
	RequesterID    uuid.UUID                   `gorm:"type:uuid;not null;index" json:"requester_id"`
	Location       string                      `gorm:"size:255;index" json:"location"`
	Urgency        string                      `gorm:"size:20;default:'medium';index" json:"urgency"`
	Status         string                      `gorm:"size:20;default:'open';index" json:"status"`
	SkillsRequired datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills_required"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
	DeletedAt      gorm.DeletedAt              `gorm:"index" json:"-"`

	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
}
