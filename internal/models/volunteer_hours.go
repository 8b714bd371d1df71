package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Volunteer hour verification statuses.
const (
	HoursStatusPending  = "pending"
	HoursStatusVerified = "verified"
	HoursStatusRejected = "rejected"
)

// PointsPerHour is the conversion rate applied when hours are verified.
const PointsPerHour = 5

// VolunteerHours is a logged contribution awaiting peer verification.
// Points stay 0 until a different user verifies the record.
type VolunteerHours struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	EventID       *uuid.UUID     `gorm:"type:uuid;index" json:"event_id"`
	HelpRequestID *uuid.UUID     `gorm:"type:uuid;index" json:"help_request_id"`
	Hours         float64        `gorm:"not null" json:"hours"`
	Description   string         `gorm:"type:text" json:"description"`
	Status        string         `gorm:"size:20;default:'pending';index" json:"status"`
	Points        int            `gorm:"default:0" json:"points"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Event       *Event       `gorm:"foreignKey:EventID" json:"event,omitempty"`
	HelpRequest *HelpRequest `gorm:"foreignKey:HelpRequestID" json:"help_request,omitempty"`
}
