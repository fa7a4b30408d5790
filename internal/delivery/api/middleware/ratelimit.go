package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	"guestpass/internal/delivery/api/response"
	deliverycontext "guestpass/internal/delivery/context"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter
	Logger  *slog.Logger
}

// RateLimitMiddleware throttles identity submissions and admin logins.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: params.Limiter, logger: params.Logger}
}

// LimitByToken counts requests per client IP and :token path parameter.
// Limiter failures let the request through.
func (m *RateLimitMiddleware) LimitByToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.limit(c, limiterKey(c.RealIP(), c.Param("token")), next)
	}
}

// LimitLogin counts admin login attempts per client IP.
func (m *RateLimitMiddleware) LimitLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.limit(c, "login:"+c.RealIP(), next)
	}
}

func (m *RateLimitMiddleware) limit(c echo.Context, key string, next echo.HandlerFunc) error {
	ctx := c.Request().Context()

	allowed, retryAfter, err := m.limiter.Allow(ctx, key)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable",
			slog.String("key_kind", strings.SplitN(key, ":", 2)[0]),
			slog.Any("error", err),
		)

		return next(c)
	}

	if !allowed {
		return response.TooManyRequests(c,
			domainerrors.ErrRateLimited.ErrorCode(),
			domainerrors.ErrRateLimited.Message(),
			retryAfter,
		)
	}

	return next(c)
}

// limiterKey hashes the token so limiter storage never holds it in clear.
func limiterKey(ip, token string) string {
	sum := sha256.Sum256([]byte(token))

	return "identity:" + ip + ":" + hex.EncodeToString(sum[:8])
}
