package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub/volunteerhub-backend/internal/config"
	"github.com/volunteerhub/volunteerhub-backend/internal/dto"
	"github.com/volunteerhub/volunteerhub-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		JWTAccessExpiry:    15 * time.Minute,
		JWTRefreshExpiry:   168 * time.Hour,
	}
}

func TestHashToken(t *testing.T) {
	a := hashToken("some-token")
	b := hashToken("some-token")
	c := hashToken("another-token")

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, testConfig())
	user := &models.User{ID: uuid.New()}

	raw, err := svc.generateRefreshToken(user)
	require.NoError(t, err)

	parsed, err := svc.parseRefreshToken(raw)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed)
}

func TestRefreshTokenRejectsAccessSecret(t *testing.T) {
	svc := NewAuthService(nil, testConfig())
	user := &models.User{ID: uuid.New()}

	// A token signed with the access secret must not pass refresh parsing.
	raw, err := svc.generateAccessToken(user)
	require.NoError(t, err)

	_, err = svc.parseRefreshToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessTokenClaims(t *testing.T) {
	cfg := testConfig()
	svc := NewAuthService(nil, cfg)
	user := &models.User{ID: uuid.New(), Email: "vera@example.com"}

	raw, err := svc.generateAccessToken(user)
	require.NoError(t, err)

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, user.Email, claims["email"])
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(nil, testConfig())

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"missing fullname", dto.RegisterRequest{Email: "a@b.c", Password: "longenough"}},
		{"missing email", dto.RegisterRequest{Fullname: "A", Password: "longenough"}},
		{"short password", dto.RegisterRequest{Fullname: "A", Email: "a@b.c", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(&tt.req)
			assert.Error(t, err)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(uuid.New().String(), "taken@example.com"))

	_, err := svc.Register(&dto.RegisterRequest{
		Fullname: "Second Account",
		Email:    "taken@example.com",
		Password: "longenough",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginIssuesAndStoresTokenPair(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "fullname"}).
			AddRow(userID.String(), "vera@example.com", string(hash), "Vera"))
	mock.ExpectExec(`UPDATE "users" SET "refresh_token_hash"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.Login(&dto.LoginRequest{Email: "vera@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	assert.Equal(t, userID, resp.User.ID)

	parsed, err := svc.parseRefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).
			AddRow(uuid.New().String(), "vera@example.com", string(hash)))

	_, err = svc.Login(&dto.LoginRequest{Email: "vera@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRejectsRotatedToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	userID := uuid.New()
	stale, err := svc.generateRefreshToken(&models.User{ID: userID})
	require.NoError(t, err)

	// The stored hash belongs to a newer token, so the presented one must
	// be treated as already rotated.
	storedHash := hashToken("a-newer-token")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "users" (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "refresh_token_hash"}).
			AddRow(userID.String(), storedHash))
	mock.ExpectRollback()

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: stale})
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshRotatesMatchingToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	userID := uuid.New()
	current, err := svc.generateRefreshToken(&models.User{ID: userID})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "users" (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "refresh_token_hash"}).
			AddRow(userID.String(), hashToken(current)))
	mock.ExpectExec(`UPDATE "users" SET "refresh_token_hash"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: current})
	require.NoError(t, err)
	assert.NotEqual(t, current, resp.RefreshToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshGarbageToken(t *testing.T) {
	svc := NewAuthService(nil, testConfig())

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "not-a-jwt"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	// No user matches the presented token; logout still reports success.
	mock.ExpectExec(`UPDATE "users" SET "refresh_token_hash"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: "whatever"}))
	assert.NoError(t, svc.Logout(&dto.LogoutRequest{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
