package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Team struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string                      `gorm:"not null;size:255" json:"name"`
	Description string                      `gorm:"not null;type:text" json:"description"`
	FounderID   uuid.UUID                   `gorm:"type:uuid;not null;index" json:"founder_id"`
	IsPrivate   bool                        `gorm:"default:false" json:"is_private"`
	Focus       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"focus"`
	TotalImpact int                         `gorm:"default:0" json:"total_impact"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	DeletedAt   gorm.DeletedAt              `gorm:"index" json:"-"`

	Founder *User      `gorm:"foreignKey:FounderID" json:"founder,omitempty"`
	Members []UserTeam `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}
