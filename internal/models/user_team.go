package models

import (
	"time"

	"github.com/google/uuid"
)

// Team membership roles.
const (
	TeamRoleMember = "member"
	TeamRoleAdmin  = "admin"
)

// UserTeam is the membership join row; the founder gets an admin row in the
// same transaction that creates the team.
type UserTeam struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_teams_user_team" json:"user_id"`
	TeamID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_teams_user_team" json:"team_id"`
	Role      string    `gorm:"size:20;default:'member'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
