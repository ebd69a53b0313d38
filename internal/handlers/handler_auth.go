package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	portssvc "github.com/SscSPs/almacen_erp_lite/internal/core/ports/services"
	"github.com/SscSPs/almacen_erp_lite/internal/dto"
	"github.com/SscSPs/almacen_erp_lite/internal/middleware"
	"github.com/SscSPs/almacen_erp_lite/internal/platform/config"
	"github.com/SscSPs/almacen_erp_lite/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const loginLimiterPrefix = "login_limiter"

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// NewLoginLimiter builds the per-IP limiter for credential endpoints. State is shared
// through Redis when a client is given, otherwise it lives in this process.
func NewLoginLimiter(cfg *config.Config, redisClient *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		return nil, err
	}
	var store limiter.Store
	if redisClient != nil {
		store, err = sredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{
			Prefix:   loginLimiterPrefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, err
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          loginLimiterPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}
	return limiter.New(store, rate), nil
}

// registerAuthRoutes sets up the public authentication routes. Login and register
// share one per-IP budget and answer with the localized lockout message.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(services.User, services.TokenService, cfg)

	credentialLimit := middleware.RateLimit(loginLimiter,
		middleware.WithLimitReachedHandler(func(c *gin.Context) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: AuthMessage(middleware.RateLimitedCode),
				Code:  middleware.RateLimitedCode,
			})
		}),
		middleware.WithLimiterErrorHandler(func(c *gin.Context, _ error) {
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: AuthMessage(codeNetworkRequestFailed),
				Code:  codeNetworkRequestFailed,
			})
		}),
	)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", credentialLimit, h.login)
		auth.POST("/register", credentialLimit, h.register)
		auth.POST("/refresh", h.refresh)
	}
}

// registerSessionRoutes sets up the authentication routes that need a valid access token.
func registerSessionRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.TokenService, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.me)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account. Requires the registration master code.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Invalid master code"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if respondAuthError(c, err) {
			logger.Warn("Registration rejected", slog.String("error", err.Error()))
			return
		}
		respondError(c, err, "register user")
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns an access token. The refresh token is also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if respondAuthError(c, err) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Login failed", slog.String("error", err.Error()))
			return
		}
		respondError(c, err, "log in")
		return
	}
	h.issueSession(c, user)
}

// refresh godoc
// @Summary Refresh the access token
// @Description Exchanges a valid refresh token (cookie or body) for a new token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest false "Refresh token when no cookie is sent"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		var req dto.RefreshRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: AuthMessage(codeSessionExpired), Code: codeSessionExpired})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		h.clearRefreshCookie(c)
		if respondAuthError(c, err) {
			return
		}
		respondError(c, err, "refresh session")
		return
	}
	h.issueSession(c, user)
}

// logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and revokes the current access token.
// @Tags auth
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		respondError(c, err, "log out")
		return
	}
	if tokenID, expiresAt, ok := middleware.GetAccessTokenFromContext(c); ok {
		if err := h.tokenService.RevokeAccessToken(c.Request.Context(), tokenID, expiresAt); err != nil {
			// The refresh token is gone already; the access token just lives until it expires.
			logger.Warn("Access token not revoked", slog.String("error", err.Error()))
		}
	}
	h.clearRefreshCookie(c)
	logger.Info("User logged out")
	c.Status(http.StatusNoContent)
}

// me godoc
// @Summary Current user
// @Description Returns the profile of the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "get current user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// issueSession rotates the token pair for user and writes the login response.
func (h *authHandler) issueSession(c *gin.Context, user *domain.User) {
	ctx := c.Request.Context()
	accessToken, _, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondError(c, err, "generate token")
		return
	}
	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		respondError(c, err, "generate token")
		return
	}
	if err := h.userService.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		respondError(c, err, "store refresh token")
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, int(h.cfg.RefreshTokenExpiryDuration.Seconds()),
		h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:        accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	})
}

func (h *authHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}
