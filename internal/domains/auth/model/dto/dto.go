package dto

import (
	userModel "taskly/internal/domains/user/model"
	"taskly/shared/timezone"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *SignupRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		Username:  r.Username,
		Email:     r.Email,
		Password:  hashedPassword,
		CreatedAt: timezone.Now(),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
}
