package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey      = contextKey("userID")
	tokenIDKey     = contextKey("tokenID")
	tokenExpiryKey = contextKey("tokenExpiry")
)

// GetUserIDFromContext retrieves the authenticated user ID stored by AuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return UserIDFromCtx(c.Request.Context())
}

// UserIDFromCtx retrieves the authenticated user ID from a standard context.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetAccessTokenFromContext returns the jti and expiry of the token used for this request.
func GetAccessTokenFromContext(c *gin.Context) (string, time.Time, bool) {
	ctx := c.Request.Context()
	tokenID, ok := ctx.Value(tokenIDKey).(string)
	if !ok || tokenID == "" {
		return "", time.Time{}, false
	}
	expiry, _ := ctx.Value(tokenExpiryKey).(time.Time)
	return tokenID, expiry, true
}
