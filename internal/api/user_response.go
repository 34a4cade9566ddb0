package api

import (
	"time"

	"sokohub/internal/model"
)

// UserResponse is the public shape of an account; the password hash never
// crosses this boundary.
// swagger:model api.UserResponse
type UserResponse struct {
	ID        string    `json:"id" example:"user-1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Role      string    `json:"role" example:"user"`
	Avatar    *string   `json:"avatar,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

// swagger:model api.AuthResponse
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// swagger:model api.UserEnvelope
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// swagger:model api.CountResponse
type CountResponse struct {
	Count int `json:"count" example:"42"`
}

// swagger:model api.AdminsResponse
type AdminsResponse struct {
	Admins []UserResponse `json:"admins"`
}
