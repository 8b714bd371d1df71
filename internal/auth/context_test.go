package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithLocals(t *testing.T, value any) (uuid.UUID, error) {
	t.Helper()

	var (
		gotID  uuid.UUID
		gotErr error
	)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if value != nil {
			c.Locals("user", value)
		}
		gotID, gotErr = GetUserID(c)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	return gotID, gotErr
}

func TestGetUserIDFromClaims(t *testing.T) {
	want := uuid.New()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": want.String(),
	})

	got, err := runWithLocals(t, token)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetUserIDMissingToken(t *testing.T) {
	_, err := runWithLocals(t, nil)
	assert.Error(t, err)
}

func TestGetUserIDMissingSub(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{})
	_, err := runWithLocals(t, token)
	assert.Error(t, err)
}

func TestGetUserIDBadSub(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
	})
	_, err := runWithLocals(t, token)
	assert.Error(t, err)
}
