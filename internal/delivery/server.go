package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"guestpass/config"
	"guestpass/internal/delivery/middleware"
	"guestpass/internal/domain/lifecycle"
	"guestpass/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// NewEcho returns an echo instance carrying the middleware shared by every
// listener: panic recovery, then request ids, then request logs.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	return e
}

// EchoServer serves an echo instance on one port until the fx app stops.
type EchoServer struct {
	name   string
	port   int
	h2c    *http2.Server
	echo   *echo.Echo
	logger *slog.Logger
}

// ServerOption tunes an EchoServer.
type ServerOption func(*EchoServer)

// WithH2C accepts cleartext HTTP/2 next to HTTP/1.1.
func WithH2C() ServerOption {
	return func(s *EchoServer) {
		s.h2c = &http2.Server{IdleTimeout: s.echo.Server.IdleTimeout}
	}
}

// NewEchoServer registers the shutdown hook and returns a Delivery for e.
func NewEchoServer(lc fx.Lifecycle, name string, port int, e *echo.Echo, logger *slog.Logger, opts ...ServerOption) *EchoServer {
	s := &EchoServer{
		name:   name,
		port:   port,
		echo:   e,
		logger: logger.With(slog.String("server", name)),
	}
	for _, opt := range opts {
		opt(s)
	}

	lc.Append(fx.Hook{OnStop: s.shutdown})

	return s
}

// Addr is the listen address.
func (s *EchoServer) Addr() string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
}

// Serve blocks until the listener closes. A graceful shutdown is not an error.
func (s *EchoServer) Serve(context.Context) error {
	addr := s.Addr()
	s.logger.Info("listening", slog.String("host_port", addr), slog.Bool("h2c", s.h2c != nil))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(addr, s.h2c)
	} else {
		err = s.echo.Start(addr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *EchoServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
