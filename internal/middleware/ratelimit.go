package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RateLimitedCode is returned to clients so they can show the localized "too many attempts" message.
const RateLimitedCode = "too-many-requests"

type rateLimitOptions struct {
	limitReached func(c *gin.Context)
	onError      func(c *gin.Context, err error)
}

// RateLimitOption customizes the responses of RateLimit.
type RateLimitOption func(*rateLimitOptions)

// WithLimitReachedHandler replaces the 429 response. The handler must write a response;
// the chain is aborted after it returns.
func WithLimitReachedHandler(h func(c *gin.Context)) RateLimitOption {
	return func(o *rateLimitOptions) {
		o.limitReached = h
	}
}

// WithLimiterErrorHandler replaces the response sent when the limiter store fails.
func WithLimiterErrorHandler(h func(c *gin.Context, err error)) RateLimitOption {
	return func(o *rateLimitOptions) {
		o.onError = h
	}
}

// RateLimit creates a Gin middleware for rate limiting requests per client IP.
func RateLimit(limiterInstance *limiter.Limiter, opts ...RateLimitOption) gin.HandlerFunc {
	o := rateLimitOptions{
		limitReached: func(c *gin.Context) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
				"code":  RateLimitedCode,
			})
		},
		onError: func(c *gin.Context, _ error) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		ip := c.ClientIP()

		limit, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			logger.Error("Failed to get rate limit context", slog.String("ip", ip), slog.String("error", err.Error()))
			o.onError(c, err)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(limit.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(limit.Reset, 10))

		if limit.Reached {
			logger.Warn("Rate limit exceeded", slog.String("ip", ip), slog.String("path", c.FullPath()), slog.Int64("limit", limit.Limit))
			o.limitReached(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
