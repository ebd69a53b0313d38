package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/almacen_erp_lite/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RevocationChecker tells whether an access token was revoked before its expiry.
type RevocationChecker interface {
	IsAccessTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

type authOptions struct {
	revocations RevocationChecker
}

// AuthOption configures AuthMiddleware.
type AuthOption func(*authOptions)

// WithRevocationCheck rejects tokens that the checker reports as revoked.
func WithRevocationCheck(checker RevocationChecker) AuthOption {
	return func(o *authOptions) {
		o.revocations = checker
	}
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
func AuthMiddleware(jwtSecret string, opts ...AuthOption) gin.HandlerFunc {
	options := authOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		if options.revocations != nil && claims.ID != "" {
			revoked, err := options.revocations.IsAccessTokenRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// Revocation store down: the signature is still valid, so let the request through.
				logger.Error("Failed to check token revocation", slog.String("error", err.Error()))
			} else if revoked {
				logger.Warn("Revoked token used", slog.String("token_id", claims.ID))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
				return
			}
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, tokenIDKey, claims.ID)
		if claims.ExpiresAt != nil {
			ctx = context.WithValue(ctx, tokenExpiryKey, claims.ExpiresAt.Time)
		}
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
