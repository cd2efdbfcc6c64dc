package dto

import "github.com/MichaelOwusu007/vdlpro/internal/model"

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login. The password hash is never
// serialized (stripped at the model level).
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type AvatarResponse struct {
	OK        bool   `json:"ok"`
	AvatarURL string `json:"avatar_url"`
}
