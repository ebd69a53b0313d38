package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/almacen_erp_lite/internal/apperrors"
	"github.com/SscSPs/almacen_erp_lite/internal/dto"
	"github.com/SscSPs/almacen_erp_lite/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Authentication failure codes sent to clients alongside a Spanish message.
const (
	codeInvalidCredential    = "invalid-credential"
	codeNetworkRequestFailed = "network-request-failed"
	codeInvalidEmail         = "invalid-email"
	codeEmailAlreadyInUse    = "email-already-in-use"
	codeWeakPassword         = "weak-password"
	codeConfigurationMissing = "configuration-not-found"
	codeInvalidMasterCode    = "invalid-master-code"
	codeSessionExpired       = "session-expired"
)

var authMessages = map[string]string{
	codeInvalidCredential:      "Correo electrónico o contraseña incorrectos. Por favor, verifique sus credenciales.",
	middleware.RateLimitedCode: "Se ha bloqueado el acceso debido a demasiados intentos fallidos. Inténtelo más tarde.",
	codeNetworkRequestFailed:   "Error de red. Por favor, verifique su conexión a internet.",
	codeInvalidEmail:           "El formato del correo electrónico no es válido.",
	codeEmailAlreadyInUse:      "El correo electrónico ya está registrado.",
	codeWeakPassword:           "La contraseña es demasiado débil.",
	codeConfigurationMissing:   "El registro no está habilitado en este servidor.",
	codeInvalidMasterCode:      "Código maestro incorrecto.",
	codeSessionExpired:         "La sesión ha expirado. Inicie sesión nuevamente.",
}

type authFailure struct {
	err    error
	status int
	code   string
}

// Order matters: the first match wins.
var authFailures = []authFailure{
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, codeInvalidCredential},
	{apperrors.ErrInvalidEmail, http.StatusBadRequest, codeInvalidEmail},
	{apperrors.ErrEmailInUse, http.StatusConflict, codeEmailAlreadyInUse},
	{apperrors.ErrWeakPassword, http.StatusBadRequest, codeWeakPassword},
	{apperrors.ErrAuthMisconfigured, http.StatusServiceUnavailable, codeConfigurationMissing},
	{apperrors.ErrInvalidMasterCode, http.StatusForbidden, codeInvalidMasterCode},
	{apperrors.ErrRefreshTokenExpired, http.StatusUnauthorized, codeSessionExpired},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, codeSessionExpired},
	{apperrors.ErrStoreUnavailable, http.StatusServiceUnavailable, codeNetworkRequestFailed},
}

// AuthMessage returns the localized message for an authentication failure code.
func AuthMessage(code string) string {
	return authMessages[code]
}

// respondAuthError writes the localized body for an authentication error.
// It reports false when err is not an authentication failure.
func respondAuthError(c *gin.Context, err error) bool {
	for _, f := range authFailures {
		if errors.Is(err, f.err) {
			c.JSON(f.status, dto.ErrorResponse{Error: authMessages[f.code], Code: f.code})
			return true
		}
	}
	return false
}

// respondError maps a service error to an HTTP status. Unknown errors become 500
// and are logged with the given action.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Rejected invalid input", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error("Store unavailable", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "Service temporarily unavailable"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to " + action})
	}
}

func bindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// requireUserID reads the authenticated user, writing 401 when it is missing.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
