package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/volunteerhub/volunteerhub-backend/internal/auth"
	"github.com/volunteerhub/volunteerhub-backend/internal/dto"
	"github.com/volunteerhub/volunteerhub-backend/internal/services"
)

type HelpRequestHandler struct {
	helpRequestService *services.HelpRequestService
}

func NewHelpRequestHandler(helpRequestService *services.HelpRequestService) *HelpRequestHandler {
	return &HelpRequestHandler{helpRequestService: helpRequestService}
}

func (h *HelpRequestHandler) ListHelpRequests(c *fiber.Ctx) error {
	filters := dto.HelpRequestFilters{
		Urgency:  c.Query("urgency"),
		Status:   c.Query("status"),
		Location: c.Query("location"),
	}

	requests, err := h.helpRequestService.ListHelpRequests(filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to list help requests"))
	}

	return c.JSON(dto.SuccessList(len(requests), requests))
}

func (h *HelpRequestHandler) GetHelpRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid help request id"))
	}

	request, err := h.helpRequestService.GetHelpRequest(id)
	if err != nil {
		if errors.Is(err, services.ErrHelpRequestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to get help request"))
	}

	return c.JSON(dto.Success(request))
}

func (h *HelpRequestHandler) CreateHelpRequest(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	var req dto.CreateHelpRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid request body"))
	}

	request, err := h.helpRequestService.CreateHelpRequest(principalID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Success(request))
}

func (h *HelpRequestHandler) UpdateHelpRequest(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid help request id"))
	}

	var req dto.UpdateHelpRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid request body"))
	}

	request, err := h.helpRequestService.UpdateHelpRequest(id, principalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHelpRequestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrNotRequester):
			return c.Status(fiber.StatusForbidden).JSON(
				dto.Failed(fiber.StatusForbidden, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to update help request"))
	}

	return c.JSON(dto.Success(request))
}

func (h *HelpRequestHandler) DeleteHelpRequest(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid help request id"))
	}

	if err := h.helpRequestService.DeleteHelpRequest(id, principalID); err != nil {
		switch {
		case errors.Is(err, services.ErrHelpRequestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrNotRequester):
			return c.Status(fiber.StatusForbidden).JSON(
				dto.Failed(fiber.StatusForbidden, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to delete help request"))
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *HelpRequestHandler) OfferHelp(c *fiber.Ctx) error {
	if _, err := auth.GetUserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid help request id"))
	}

	// The message is accepted but not stored; offers carry no record yet.
	var req dto.OfferHelpRequest
	_ = c.BodyParser(&req)

	if err := h.helpRequestService.OfferHelp(id); err != nil {
		if errors.Is(err, services.ErrHelpRequestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to offer help"))
	}

	return c.JSON(dto.SuccessMessage("Help offered successfully"))
}
