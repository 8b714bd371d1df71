package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/volunteerhub/volunteerhub-backend/internal/dto"
	"github.com/volunteerhub/volunteerhub-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid request body"))
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		// Duplicate emails and validation failures are both client errors.
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Success(resp))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid request body"))
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(
				dto.Failed(fiber.StatusUnauthorized, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Internal server error"))
	}

	return c.JSON(dto.Success(resp))
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid request body"))
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(
				dto.Failed(fiber.StatusUnauthorized, err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Internal server error"))
	}

	return c.JSON(dto.Success(resp))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Failed(fiber.StatusBadRequest, "Invalid request body"))
	}

	if err := h.authService.Logout(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			dto.Failed(fiber.StatusInternalServerError, "Failed to logout"))
	}

	return c.JSON(dto.SuccessMessage("Logged out successfully"))
}
