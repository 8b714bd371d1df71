package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is a registered volunteer. RefreshTokenHash holds the SHA-256 of the
// single active refresh token; a new login or refresh overwrites it.
type User struct {
	ID               uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email            string                      `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password         string                      `gorm:"not null" json:"-"`
	Fullname         string                      `gorm:"not null;size:255" json:"fullname"`
	Skills           datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills"`
	SupportedCauses  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"supported_causes"`
	RefreshTokenHash *string                     `gorm:"size:64;index" json:"-"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
	DeletedAt        gorm.DeletedAt              `gorm:"index" json:"-"`
}
