package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/volunteerhub/volunteerhub-backend/internal/dto"
	"github.com/volunteerhub/volunteerhub-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrHoursNotFound = errors.New("volunteer hours record not found")
	ErrSelfVerify    = errors.New("you cannot verify your own volunteer hours")
	ErrNotRegistered = errors.New("you are not registered for this event")
	ErrMissingTarget = errors.New("please provide hours and an event or help request")
)

// CertificateMilestones are the cumulative verified-hour thresholds that
// unlock a certificate.
var CertificateMilestones = []int{20, 50, 100}

type ImpactService struct {
	db *gorm.DB
}

func NewImpactService(db *gorm.DB) *ImpactService {
	return &ImpactService{db: db}
}

// LogHours records a pending contribution. Hours tied to an event require
// an existing registration, which is flipped to attended as a side effect.
// Supplying both an event and a help request is accepted.
func (s *ImpactService) LogHours(userID uuid.UUID, req *dto.LogHoursRequest) (*models.VolunteerHours, error) {
	if req.Hours <= 0 || (req.EventID == nil && req.HelpRequestID == nil) {
		return nil, ErrMissingTarget
	}

	if req.EventID != nil {
		var event models.Event
		if err := s.db.First(&event, "id = ?", *req.EventID).Error; err != nil {
			return nil, ErrEventNotFound
		}

		var registration models.UserEvent
		err := s.db.Where("user_id = ? AND event_id = ?", userID, *req.EventID).
			First(&registration).Error
		if err != nil {
			return nil, ErrNotRegistered
		}

		if err := s.db.Model(&registration).
			Update("status", models.RegistrationStatusAttended).Error; err != nil {
			return nil, fmt.Errorf("failed to update registration: %w", err)
		}
	}

	if req.HelpRequestID != nil {
		var request models.HelpRequest
		if err := s.db.First(&request, "id = ?", *req.HelpRequestID).Error; err != nil {
			return nil, ErrHelpRequestNotFound
		}
	}

	record := models.VolunteerHours{
		ID:            uuid.New(),
		UserID:        userID,
		EventID:       req.EventID,
		HelpRequestID: req.HelpRequestID,
		Hours:         req.Hours,
		Description:   req.Description,
		Status:        models.HoursStatusPending,
		Points:        0,
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to log volunteer hours: %w", err)
	}
	return &record, nil
}

// VerifyHours marks the record verified and awards points. A repeat
// verification by another user recomputes the same values; verifying your
// own hours is always rejected.
func (s *ImpactService) VerifyHours(id uuid.UUID, verifierID uuid.UUID) error {
	var record models.VolunteerHours
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		return ErrHoursNotFound
	}

	if record.UserID == verifierID {
		return ErrSelfVerify
	}

	// Fractional hours round to the nearest point.
	updates := map[string]interface{}{
		"status": models.HoursStatusVerified,
		"points": int(math.Round(record.Hours * models.PointsPerHour)),
	}
	if err := s.db.Model(&record).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to verify volunteer hours: %w", err)
	}
	return nil
}

// GetUserImpact aggregates the user's verified hours and synthesizes
// certificates for every milestone met.
func (s *ImpactService) GetUserImpact(userID uuid.UUID) (*dto.UserImpactResponse, error) {
	var user models.User
	if err := s.db.Select("id").First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var records []models.VolunteerHours
	err := s.db.Where("user_id = ? AND status = ?", userID, models.HoursStatusVerified).
		Preload("Event", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "date")
		}).
		Preload("HelpRequest", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title")
		}).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load volunteer hours: %w", err)
	}

	var totalHours float64
	var totalPoints int
	for _, r := range records {
		totalHours += r.Hours
		totalPoints += r.Points
	}

	return &dto.UserImpactResponse{
		VolunteerHours: records,
		Summary: dto.ImpactSummary{
			TotalHours:   totalHours,
			TotalPoints:  totalPoints,
			Certificates: CertificatesFor(userID, totalHours, time.Now()),
		},
	}, nil
}

// CertificatesFor derives the certificate list from the milestones met.
// Certificates are recomputed on every read, never persisted, so the issue
// date is the read time.
func CertificatesFor(userID uuid.UUID, totalHours float64, now time.Time) []dto.Certificate {
	certificates := make([]dto.Certificate, 0, len(CertificateMilestones))
	for _, milestone := range CertificateMilestones {
		if totalHours >= float64(milestone) {
			certificates = append(certificates, dto.Certificate{
				Milestone:     milestone,
				CertificateID: fmt.Sprintf("CERT-%s-%d", userID, milestone),
				IssuedDate:    now,
			})
		}
	}
	return certificates
}

// GetLeaderboard ranks the top 10 users by verified hours (ties broken by
// id ascending) and the top 10 teams by total impact.
func (s *ImpactService) GetLeaderboard() (*dto.LeaderboardResponse, error) {
	var users []dto.UserLeaderboardEntry
	err := s.db.Model(&models.User{}).
		Select(`users.id, users.fullname,
			COALESCE(SUM(volunteer_hours.hours) FILTER (WHERE volunteer_hours.status = 'verified'), 0) AS total_hours,
			COALESCE(SUM(volunteer_hours.points), 0) AS total_points`).
		Joins("LEFT JOIN volunteer_hours ON volunteer_hours.user_id = users.id AND volunteer_hours.deleted_at IS NULL").
		Group("users.id, users.fullname").
		Order("total_hours DESC, users.id ASC").
		Limit(10).
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build user leaderboard: %w", err)
	}

	var teams []dto.TeamLeaderboardEntry
	err = s.db.Model(&models.Team{}).
		Select("id, name, total_impact").
		Order("total_impact DESC, id ASC").
		Limit(10).
		Scan(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build team leaderboard: %w", err)
	}

	return &dto.LeaderboardResponse{
		UserLeaderboard: users,
		TeamLeaderboard: teams,
	}, nil
}
