package models

import (
	"time"

	"github.com/google/uuid"
)

// Event registration statuses.
const (
	RegistrationStatusRegistered = "registered"
	RegistrationStatusAttended   = "attended"
	RegistrationStatusCancelled  = "cancelled"
)

// UserEvent is the registration join row. The composite unique index backs
// the duplicate-join check at the store level.
type UserEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_events_user_event" json:"user_id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_events_user_event" json:"event_id"`
	Status    string    `gorm:"size:20;default:'registered'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
