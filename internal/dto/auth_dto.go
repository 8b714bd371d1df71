package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Fullname        string   `json:"fullname"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Skills          []string `json:"skills"`
	SupportedCauses []string `json:"supported_causes"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RegisteredUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Fullname string    `json:"fullname"`
	Email    string    `json:"email"`
}
