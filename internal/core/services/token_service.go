package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/apperrors"
	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	portsrepo "github.com/SscSPs/almacen_erp_lite/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/almacen_erp_lite/internal/core/ports/services"
	"github.com/SscSPs/almacen_erp_lite/internal/platform/config"
	"github.com/SscSPs/almacen_erp_lite/internal/utils"
	"github.com/google/uuid"
)

// refreshTokenSeparator joins the owner ID and the random part of a refresh token.
const refreshTokenSeparator = "."

// tokenService implements the TokenSvcFacade for handling JWT and refresh tokens.
type tokenService struct {
	BaseService
	cfg         *config.Config
	userService portssvc.UserReaderSvc
	revocations portsrepo.TokenRevocationStore
}

// NewTokenService creates a new instance of tokenService. revocations may be nil,
// in which case logout only clears the refresh token.
func NewTokenService(cfg *config.Config, userService portssvc.UserReaderSvc, revocations portsrepo.TokenRevocationStore) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
		revocations: revocations,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, string, time.Time, error) {
	tokenID := uuid.NewString()
	expiryTime := s.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, tokenID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", "", time.Time{}, err
	}
	return accessToken, tokenID, expiryTime, nil
}

// GenerateRefreshToken creates a new refresh token for the given user. The token
// embeds the user ID so it can be validated without any other input.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	random, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate secure random string for refresh token: %w", err)
	}
	expiryTime := s.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	return user.UserID + refreshTokenSeparator + random, expiryTime, nil
}

// ValidateAndParseRefreshToken validates a refresh token string and returns the associated user.
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	userID, _, ok := strings.Cut(refreshToken, refreshTokenSeparator)
	if !ok || userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if s.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		s.LogWarn(ctx, "Refresh token mismatch", slog.String("user_id", userID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *tokenService) RevokeAccessToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.revocations == nil || tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.revocations.Revoke(ctx, tokenID, ttl); err != nil {
		s.LogError(ctx, err, "Failed to revoke access token")
		return err
	}
	return nil
}

func (s *tokenService) IsAccessTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.revocations == nil || tokenID == "" {
		return false, nil
	}
	return s.revocations.IsRevoked(ctx, tokenID)
}
