package domain

import "time"

// User is an operator of the system. Only the name changes after registration.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	NationalID   string `json:"nationalID"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
