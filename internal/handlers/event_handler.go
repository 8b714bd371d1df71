package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/volunteerhub/volunteerhub-backend/internal/auth"
	"github.com/volunteerhub/volunteerhub-backend/internal/dto"
	"github.com/volunteerhub/volunteerhub-backend/internal/services"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	filters := dto.EventFilters{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Status:   c.Query("status"),
	}

	events, err := h.eventService.ListEvents(filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to list events"))
	}

	return c.JSON(dto.SuccessList(len(events), events))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid event id"))
	}

	event, err := h.eventService.GetEvent(id)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to get event"))
	}

	return c.JSON(dto.Success(event))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid request body"))
	}

	event, err := h.eventService.CreateEvent(principalID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Success(event))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid event id"))
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid request body"))
	}

	event, err := h.eventService.UpdateEvent(id, principalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrNotOrganizer):
			return c.Status(fiber.StatusForbidden).JSON(
				dto.Failed(fiber.StatusForbidden, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to update event"))
	}

	return c.JSON(dto.Success(event))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid event id"))
	}

	if err := h.eventService.DeleteEvent(id, principalID); err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrNotOrganizer):
			return c.Status(fiber.StatusForbidden).JSON(
				dto.Failed(fiber.StatusForbidden, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to delete event"))
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EventHandler) JoinEvent(c *fiber.Ctx) error {
	principalID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Failed(fiber.StatusUnauthorized, "Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid event id"))
	}

	if err := h.eventService.JoinEvent(id, principalID); err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return c.Status(fiber.StatusNotFound).JSON(
				dto.Failed(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrEventNotUpcoming),
			errors.Is(err, services.ErrAlreadyRegistered),
			errors.Is(err, services.ErrEventFull):
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Failed(fiber.StatusBadRequest, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to join event"))
	}

	return c.JSON(dto.SuccessMessage("Successfully joined the event"))
}
