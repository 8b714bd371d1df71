package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/volunteerhub/volunteerhub-backend/internal/auth"
	"github.com/volunteerhub/volunteerhub-backend/internal/dto"
	"github.com/volunteerhub/volunteerhub-backend/internal/services"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) ListTeams(c *fiber.Ctx) error {
	includeAll := c.Query("all") == "true"

	teams, err := h.teamService.ListTeams(includeAll)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to list teams"))
	}

	return c.JSON(dto.SuccessList(len(teams), teams))
}

func (h *TeamHandler) GetTeam(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid team id"))
	}

	// The route is public; anonymous callers simply never match a private
	// team's member list.
	principalID, _ := auth.GetUserID(c)

	team, err := h.teamService.GetTeam(id, principalID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrTeamPrivate):
			return c.Status(fiber.StatusForbidden).JSON(
				dto.Failed(fiber.StatusForbidden, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to get team"))
	}

	return c.JSON(dto.Success(team))
}

func (h *TeamHandler) CreateTeam(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid request body"))
	}

	team, err := h.teamService.CreateTeam(principalID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Success(team))
}

func (h *TeamHandler) UpdateTeam(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid team id"))
	}

	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid request body"))
	}

	team, err := h.teamService.UpdateTeam(id, principalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrNotTeamManager):
			return c.Status(fiber.StatusForbidden).JSON(
				dto.Failed(fiber.StatusForbidden, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to update team"))
	}

	return c.JSON(dto.Success(team))
}

func (h *TeamHandler) JoinTeam(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid team id"))
	}

	if err := h.teamService.JoinTeam(id, principalID); err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrTeamInviteOnly):
			return c.Status(fiber.StatusForbidden).JSON(
				dto.Failed(fiber.StatusForbidden, err.Error()))
		case errors.Is(err, services.ErrAlreadyMember):
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Failed(fiber.StatusBadRequest, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to join team"))
	}

	return c.JSON(dto.SuccessMessage("Successfully joined the team"))
}

func (h *TeamHandler) LeaveTeam(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid team id"))
	}

	if err := h.teamService.LeaveTeam(id, principalID); err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrNotMember),
			errors.Is(err, services.ErrFounderCannotLeave):
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Failed(fiber.StatusBadRequest, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to leave team"))
	}

	return c.JSON(dto.SuccessMessage("Successfully left the team"))
}
