package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/volunteerhub/volunteerhub-backend/internal/dto"
	"github.com/volunteerhub/volunteerhub-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrHelpRequestNotFound = errors.New("help request not found")
	ErrNotRequester        = errors.New("you are not authorized to modify this help request")
)

type HelpRequestService struct {
	db *gorm.DB
}

func NewHelpRequestService(db *gorm.DB) *HelpRequestService {
	return &HelpRequestService{db: db}
}

func (s *HelpRequestService) ListHelpRequests(filters dto.HelpRequestFilters) ([]models.HelpRequest, error) {
	query := s.db.Model(&models.HelpRequest{})
	if filters.Urgency != "" {
		query = query.Where("urgency = ?", filters.Urgency)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Location != "" {
		query = query.Where("location = ?", filters.Location)
	}

	var requests []models.HelpRequest
	err := query.Preload("Requester", selectUserSummary).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list help requests: %w", err)
	}
	return requests, nil
}

func (s *HelpRequestService) GetHelpRequest(id uuid.UUID) (*models.HelpRequest, error) {
	var request models.HelpRequest
	err := s.db.Preload("Requester", selectUserSummary).
		First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHelpRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get help request: %w", err)
	}
	return &request, nil
}

func (s *HelpRequestService) CreateHelpRequest(requesterID uuid.UUID, req *dto.CreateHelpRequestRequest) (*models.HelpRequest, error) {
	if req.Title == "" || req.Description == "" {
		return nil, errors.New("please provide all required fields")
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = models.UrgencyMedium
	}

	request := models.HelpRequest{
		ID:             uuid.New(),
		Title:          req.Title,
		Description:    req.Description,
		RequesterID:    requesterID,
		Location:       req.Location,
		Urgency:        urgency,
		Status:         models.HelpRequestStatusOpen,
		SkillsRequired: req.SkillsRequired,
	}

	if err := s.db.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("failed to create help request: %w", err)
	}
	return &request, nil
}

func (s *HelpRequestService) UpdateHelpRequest(id uuid.UUID, principalID uuid.UUID, req *dto.UpdateHelpRequestRequest) (*models.HelpRequest, error) {
	var request models.HelpRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, ErrHelpRequestNotFound
	}

	if request.RequesterID != principalID {
		return nil, ErrNotRequester
	}

	if req.Title != "" {
		request.Title = req.Title
	}
	if req.Description != "" {
		request.Description = req.Description
	}
	if req.Location != "" {
		request.Location = req.Location
	}
	if req.Urgency != "" {
		request.Urgency = req.Urgency
	}
	if req.SkillsRequired != nil {
		request.SkillsRequired = req.SkillsRequired
	}
	if req.Status != "" {
		request.Status = req.Status
	}

	if err := s.db.Save(&request).Error; err != nil {
		return nil, fmt.Errorf("failed to update help request: %w", err)
	}
	return &request, nil
}

func (s *HelpRequestService) DeleteHelpRequest(id uuid.UUID, principalID uuid.UUID) error {
	var request models.HelpRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		return ErrHelpRequestNotFound
	}

	if request.RequesterID != principalID {
		return ErrNotRequester
	}

	if err := s.db.Delete(&request).Error; err != nil {
		return fmt.Errorf("failed to delete help request: %w", err)
	}
	return nil
}

// OfferHelp moves an open request to in-progress. No offer record is
// created; the transition is the whole effect.
func (s *HelpRequestService) OfferHelp(id uuid.UUID) error {
	var request models.HelpRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		return ErrHelpRequestNotFound
	}

	if request.Status == models.HelpRequestStatusOpen {
		if err := s.db.Model(&request).
			Update("status", models.HelpRequestStatusInProgress).Error; err != nil {
			return fmt.Errorf("failed to update help request status: %w", err)
		}
	}
	return nil
}
