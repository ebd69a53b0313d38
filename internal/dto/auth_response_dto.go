package dto

import "time"

// LoginResponse represents the response for a successful login or refresh.
// The refresh token is also set as an HttpOnly cookie.
type LoginResponse struct {
	Token        string       `json:"token"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// RefreshRequest lets clients that cannot keep cookies send the refresh token in the body.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ErrorResponse is the body of every failed request. Code is set for
// authentication failures so clients can pick a localized message.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
