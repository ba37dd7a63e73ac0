package dto

import authService "gymku_backend/internals/features/auth/service"

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,min=3,max=255"` // username atau email
	Password   string `json:"password" validate:"required,min=6,max=72"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,min=6,max=72"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type LoginResponse struct {
	Role   string                 `json:"role"`
	Name   string                 `json:"name"`
	Tokens authService.TokenPair  `json:"tokens"`
	Extra  map[string]interface{} `json:"extra,omitempty"`
}
