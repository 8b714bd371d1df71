package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/volunteerhub/volunteerhub-backend/internal/models"
)

type LogHoursRequest struct {
	EventID       *uuid.UUID `json:"event_id"`
	HelpRequestID *uuid.UUID `json:"help_request_id"`
	Hours         float64    `json:"hours"`
	Description   string     `json:"description"`
}

// Certificate is synthesized from milestone thresholds on every read; it is
// never persisted, so IssuedDate is the read time.
type Certificate struct {
	Milestone     int       `json:"milestone"`
	CertificateID string    `json:"certificate_id"`
	IssuedDate    time.Time `json:"issued_date"`
}

type ImpactSummary struct {
	TotalHours   float64       `json:"total_hours"`
	TotalPoints  int           `json:"total_points"`
	Certificates []Certificate `json:"certificates"`
}

type UserImpactResponse struct {
	VolunteerHours []models.VolunteerHours `json:"volunteer_hours"`
	Summary        ImpactSummary           `json:"summary"`
}

type UserLeaderboardEntry struct {
	ID          uuid.UUID `json:"id"`
	Fullname    string    `json:"fullname"`
	TotalHours  float64   `json:"total_hours"`
	TotalPoints int       `json:"total_points"`
}

type TeamLeaderboardEntry struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	TotalImpact int       `json:"total_impact"`
}

type LeaderboardResponse struct {
	UserLeaderboard []UserLeaderboardEntry `json:"user_leaderboard"`
	TeamLeaderboard []TeamLeaderboardEntry `json:"team_leaderboard"`
}
