package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/volunteerhub/volunteerhub-backend/internal/dto"
	"github.com/volunteerhub/volunteerhub-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrNotOrganizer      = errors.New("you are not authorized to modify this event")
	ErrEventNotUpcoming  = errors.New("you can only join upcoming events")
	ErrAlreadyRegistered = errors.New("you are already registered for this event")
	ErrEventFull         = errors.New("event has reached maximum participants")
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

func (s *EventService) ListEvents(filters dto.EventFilters) ([]models.Event, error) {
	query := s.db.Model(&models.Event{})
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Location != "" {
		query = query.Where("location = ?", filters.Location)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	var events []models.Event
	err := query.Preload("Organizer", selectUserSummary).
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *EventService) GetEvent(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := s.db.Preload("Organizer", selectUserSummary).
		Preload("Participants").
		Preload("Participants.User", selectUserSummary).
		First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

func (s *EventService) CreateEvent(organizerID uuid.UUID, req *dto.CreateEventRequest) (*models.Event, error) {
	if req.Title == "" || req.Description == "" || req.Date.IsZero() || req.Location == "" || req.Category == "" {
		return nil, errors.New("please provide all required fields")
	}

	event := models.Event{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Location:        req.Location,
		Category:        req.Category,
		OrganizerID:     organizerID,
		MaxParticipants: req.MaxParticipants,
		SkillsNeeded:    req.SkillsNeeded,
		Status:          models.EventStatusUpcoming,
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

// UpdateEvent merges only truthy fields onto the stored event, so an empty
// string or zero cannot clear a field.
func (s *EventService) UpdateEvent(id uuid.UUID, principalID uuid.UUID, req *dto.UpdateEventRequest) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		return nil, ErrEventNotFound
	}

	if event.OrganizerID != principalID {
		return nil, ErrNotOrganizer
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.Date != nil && !req.Date.IsZero() {
		event.Date = *req.Date
	}
	if req.Location != "" {
		event.Location = req.Location
	}
	if req.Category != "" {
		event.Category = req.Category
	}
	if req.MaxParticipants != nil && *req.MaxParticipants != 0 {
		event.MaxParticipants = req.MaxParticipants
	}
	if req.SkillsNeeded != nil {
		event.SkillsNeeded = req.SkillsNeeded
	}
	if req.Status != "" {
		event.Status = req.Status
	}

	if err := s.db.Save(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return &event, nil
}

func (s *EventService) DeleteEvent(id uuid.UUID, principalID uuid.UUID) error {
	var event models.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		return ErrEventNotFound
	}

	if event.OrganizerID != principalID {
		return ErrNotOrganizer
	}

	if err := s.db.Delete(&event).Error; err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// JoinEvent registers the user. The event row is locked for the duration of
// the capacity check so concurrent joins cannot both slip under the cap;
// the (user_id,event_id) unique index backs the duplicate check.
func (s *EventService) JoinEvent(id uuid.UUID, userID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, "id = ?", id).Error; err != nil {
			return ErrEventNotFound
		}

		if event.Status != models.EventStatusUpcoming {
			return ErrEventNotUpcoming
		}

		var existing models.UserEvent
		if err := tx.Where("user_id = ? AND event_id = ?", userID, id).
			First(&existing).Error; err == nil {
			return ErrAlreadyRegistered
		}

		if event.MaxParticipants != nil {
			var count int64
			if err := tx.Model(&models.UserEvent{}).
				Where("event_id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to count participants: %w", err)
			}
			if count >= int64(*event.MaxParticipants) {
				return ErrEventFull
			}
		}

		registration := models.UserEvent{
			ID:      uuid.New(),
			UserID:  userID,
			EventID: id,
			Status:  models.RegistrationStatusRegistered,
		}
		if err := tx.Create(&registration).Error; err != nil {
			return fmt.Errorf("failed to register for event: %w", err)
		}
		return nil
	})
}

// selectUserSummary limits preloaded user rows to their public projection.
func selectUserSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "fullname", "email")
}
