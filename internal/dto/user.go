package dto

import (
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
)

// RegisterRequest is the sign-up form. The master code gates who may register.
type RegisterRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	NationalID string `json:"nationalID" binding:"required,numeric,min=8,max=12"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	MasterCode string `json:"masterCode" binding:"required"`
}

// LoginRequest holds email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest defines the data allowed for updating the own profile.
// Only the display name is mutable.
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID     string    `json:"userID"`
	Name       string    `json:"name"`
	NationalID string    `json:"nationalID"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Name:       u.Name,
		NationalID: u.NationalID,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt,
	}
}
