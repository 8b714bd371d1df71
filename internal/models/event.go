package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event statuses.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

type Event struct {
	ID              uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title           string                      `gorm:"not null;size:255" json:"title"`
	Description     string                      `gorm:"not null;type:text" json:"description"`
	Date            time.Time                   `gorm:"not null;index" json:"date"`
	Location        string                      `gorm:"not null;size:255;index" json:"location"`
	Category        string                      `gorm:"not null;size:100;index" json:"category"`
	OrganizerID     uuid.UUID                   `gorm:"type:uuid;not null;index" json:"organizer_id"`
	MaxParticipants *int                        `json:"max_participants"`
	SkillsNeeded    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills_needed"`
	Status          string                      `gorm:"size:20;default:'upcoming';index" json:"status"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
	DeletedAt       gorm.DeletedAt              `gorm:"index" json:"-"`

	Organizer    *User       `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Participants []UserEvent `gorm:"foreignKey:EventID" json:"participants,omitempty"`
}
