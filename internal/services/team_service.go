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
	ErrTeamNotFound       = errors.New("team not found")
	ErrTeamPrivate        = errors.New("this team is private")
	ErrTeamInviteOnly     = errors.New("this team is private and requires an invitation")
	ErrNotTeamManager     = errors.New("you are not authorized to update this team")
	ErrAlreadyMember      = errors.New("you are already a member of this team")
	ErrNotMember          = errors.New("you are not a member of this team")
	ErrFounderCannotLeave = errors.New("team founder cannot leave. Transfer ownership or delete the team")
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// ListTeams returns public teams unless includeAll is set.
func (s *TeamService) ListTeams(includeAll bool) ([]models.Team, error) {
	query := s.db.Model(&models.Team{})
	if !includeAll {
		query = query.Where("is_private = ?", false)
	}

	var teams []models.Team
	err := query.Preload("Founder", selectUserSummary).Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// GetTeam returns a team with members. Private teams are only visible to
// their members.
func (s *TeamService) GetTeam(id uuid.UUID, principalID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := s.db.Preload("Founder", selectUserSummary).
		Preload("Members").
		Preload("Members.User", selectUserSummary).
		First(&team, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if team.IsPrivate {
		isMember := false
		for _, m := range team.Members {
			if m.UserID == principalID {
				isMember = true
				break
			}
		}
		if !isMember {
			return nil, ErrTeamPrivate
		}
	}

	return &team, nil
}

// CreateTeam inserts the team and the founder's admin membership as one
// transactional unit; a team is never left without an admin.
func (s *TeamService) CreateTeam(founderID uuid.UUID, req *dto.CreateTeamRequest) (*models.Team, error) {
	if req.Name == "" || req.Description == "" {
		return nil, errors.New("please provide all required fields")
	}

	team := models.Team{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		FounderID:   founderID,
		IsPrivate:   req.IsPrivate,
		Focus:       req.Focus,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}

		membership := models.UserTeam{
			ID:     uuid.New(),
			UserID: founderID,
			TeamID: team.ID,
			Role:   models.TeamRoleAdmin,
		}
		if err := tx.Create(&membership).Error; err != nil {
			return fmt.Errorf("failed to add founder membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &team, nil
}

// UpdateTeam is allowed for the founder or a member holding the admin role.
func (s *TeamService) UpdateTeam(id uuid.UUID, principalID uuid.UUID, req *dto.UpdateTeamRequest) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, "id = ?", id).Error; err != nil {
		return nil, ErrTeamNotFound
	}

	if team.FounderID != principalID {
		var adminRow models.UserTeam
		err := s.db.Where("user_id = ? AND team_id = ? AND role = ?",
			principalID, id, models.TeamRoleAdmin).First(&adminRow).Error
		if err != nil {
			return nil, ErrNotTeamManager
		}
	}

	if req.Name != "" {
		team.Name = req.Name
	}
	if req.Description != "" {
		team.Description = req.Description
	}
	if req.IsPrivate != nil {
		team.IsPrivate = *req.IsPrivate
	}
	if req.Focus != nil {
		team.Focus = req.Focus
	}

	if err := s.db.Save(&team).Error; err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return &team, nil
}

func (s *TeamService) JoinTeam(id uuid.UUID, userID uuid.UUID) error {
	var team models.Team
	if err := s.db.First(&team, "id = ?", id).Error; err != nil {
		return ErrTeamNotFound
	}

	if team.IsPrivate {
		return ErrTeamInviteOnly
	}

	var existing models.UserTeam
	if err := s.db.Where("user_id = ? AND team_id = ?", userID, id).
		First(&existing).Error; err == nil {
		return ErrAlreadyMember
	}

	membership := models.UserTeam{
		ID:     uuid.New(),
		UserID: userID,
		TeamID: id,
		Role:   models.TeamRoleMember,
	}
	if err := s.db.Create(&membership).Error; err != nil {
		return fmt.Errorf("failed to join team: %w", err)
	}
	return nil
}

// LeaveTeam removes the membership row. The founder can never leave their
// own team, regardless of membership state.
func (s *TeamService) LeaveTeam(id uuid.UUID, userID uuid.UUID) error {
	var team models.Team
	if err := s.db.First(&team, "id = ?", id).Error; err != nil {
		return ErrTeamNotFound
	}

	var membership models.UserTeam
	if err := s.db.Where("user_id = ? AND team_id = ?", userID, id).
		First(&membership).Error; err != nil {
		return ErrNotMember
	}

	if team.FounderID == userID {
		return ErrFounderCannotLeave
	}

	if err := s.db.Delete(&membership).Error; err != nil {
		return fmt.Errorf("failed to leave team: %w", err)
	}
	return nil
}
