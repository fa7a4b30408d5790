package api

import (
	"log/slog"
	"net/url"

	"guestpass/config"
	"guestpass/internal/delivery"
	apimiddleware "guestpass/internal/delivery/api/middleware"
	"guestpass/internal/delivery/api/router"
	"guestpass/internal/delivery/api/validator"
	deliverycontext "guestpass/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the guest and admin API listener.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)

	// invitation pages are served from another origin
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  allowedOrigins(params.Cfg),
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization, deliverycontext.HeaderXRequestID},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID, "Retry-After"},
	}))
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return delivery.NewEchoServer(params.Lc, "api", params.Cfg.HTTP.Port, e, params.Logger, delivery.WithH2C()), nil
}

// allowedOrigins limits CORS to the origin serving invitation links when one is configured.
func allowedOrigins(cfg *config.Config) []string {
	if cfg.Access == nil || cfg.Access.InvitationBaseURL == "" {
		return []string{"*"}
	}

	u, err := url.Parse(cfg.Access.InvitationBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return []string{"*"}
	}

	return []string{u.Scheme + "://" + u.Host}
}
