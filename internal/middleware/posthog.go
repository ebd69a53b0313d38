package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/almacen_erp_lite/internal/utils"
	"github.com/gin-gonic/gin"
)

// PosthogMiddleware reports successful mutations (POST, PUT, DELETE) as analytics events.
// Reads are not tracked.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		eventName := EventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// EventName derives an analytics event from a route,
// e.g. PUT /api/v1/purchases/:id/transport -> "purchases_transport_put".
func EventName(method, fullPath string) string {
	if fullPath == "" {
		return ""
	}
	var parts []string
	for _, seg := range strings.Split(strings.TrimPrefix(fullPath, "/api/v1"), "/") {
		if seg == "" || strings.HasPrefix(seg, ":") {
			continue
		}
		parts = append(parts, seg)
	}
	if len(parts) == 0 {
		return ""
	}
	parts = append(parts, strings.ToLower(method))
	return strings.Join(parts, "_")
}
