// file: internals/features/users/auth/dto/auth_dto.go
package dto

import "strings"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Redirect    string `json:"redirect"`
}
