package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/volunteerhub/volunteerhub-backend/internal/auth"
	"github.com/volunteerhub/volunteerhub-backend/internal/config"
	"github.com/volunteerhub/volunteerhub-backend/internal/dto"
	"github.com/volunteerhub/volunteerhub-backend/internal/models"
	"gorm.io/gorm"
)

// JWTProtected validates the bearer token and confirms the user behind it
// still exists. A valid signature over a deleted account is as good as no
// token.
func JWTProtected(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		SuccessHandler: func(c *fiber.Ctx) error {
			userID, err := auth.GetUserID(c)
			if err != nil {
				return unauthorized(c, "You are not logged in! Please log in to get access.")
			}

			var user models.User
			if err := db.Select("id").First(&user, "id = ?", userID).Error; err != nil {
				return unauthorized(c, "The user belonging to this token no longer exists.")
			}
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c, "You are not logged in! Please log in to get access.")
		},
	})
}

// JWTOptional parses a bearer token when present but lets anonymous
// requests through. Private-team reads use it to recognize members; a
// principal that matches no membership row grants nothing, so no store
// lookup is needed here.
func JWTOptional(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(
		dto.Failed(fiber.StatusUnauthorized, message))
}
