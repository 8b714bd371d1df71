package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/volunteerhub/volunteerhub-backend/internal/auth"
	"github.com/volunteerhub/volunteerhub-backend/internal/dto"
	"github.com/volunteerhub/volunteerhub-backend/internal/services"
)

type ImpactHandler struct {
	impactService *services.ImpactService
}

func NewImpactHandler(impactService *services.ImpactService) *ImpactHandler {
	return &ImpactHandler{impactService: impactService}
}

func (h *ImpactHandler) LogHours(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	var req dto.LogHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid request body"))
	}

	record, err := h.impactService.LogHours(principalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound),
			errors.Is(err, services.ErrHelpRequestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrMissingTarget),
			errors.Is(err, services.ErrNotRegistered):
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Failed(fiber.StatusBadRequest, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to log volunteer hours"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Success(record))
}

func (h *ImpactHandler) VerifyHours(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid volunteer hours id"))
	}

	if err := h.impactService.VerifyHours(id, principalID); err != nil {
		switch {
		case errors.Is(err, services.ErrHoursNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrSelfVerify):
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Failed(fiber.StatusBadRequest, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to verify volunteer hours"))
	}

	return c.JSON(dto.SuccessMessage("Volunteer hours verified successfully"))
}

func (h *ImpactHandler) GetUserImpact(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	userID := principalID
	if param := c.Params("userId"); param != "" {
		userID, err = uuid.Parse(param)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Failed(fiber.StatusBadRequest, "Invalid user id"))
		}
	}

	impact, err := h.impactService.GetUserImpact(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to load user impact"))
	}

	return c.JSON(dto.Success(impact))
}

func (h *ImpactHandler) GetLeaderboard(c *fiber.Ctx) error {
	leaderboard, err := h.impactService.GetLeaderboard()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to load leaderboard"))
	}

	return c.JSON(dto.Success(leaderboard))
}
