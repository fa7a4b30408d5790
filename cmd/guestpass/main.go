// Command guestpass serves the guest invitation and host admin APIs.
package main

import (
	"context"

	"guestpass/config"
	"guestpass/internal/delivery"
	"guestpass/internal/delivery/api"
	"guestpass/internal/delivery/api/middleware"
	"guestpass/internal/delivery/api/router/handler"
	"guestpass/internal/infra/auth"
	logs "guestpass/internal/infra/log"
	"guestpass/internal/infra/persistence/postgres"
	"guestpass/internal/infra/pubsub"
	"guestpass/internal/infra/qrcode"
	"guestpass/internal/infra/ratelimit"
	"guestpass/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Module("infra",
			fx.Provide(config.New, logs.New, context.Background, postgres.New),
			pubsub.Module,
			ratelimit.Module,
		),
		fx.Module("repository",
			fx.Provide(
				postgres.NewTransactionManager,
				postgres.NewGuestRepository,
				postgres.NewDeviceRepository,
				postgres.NewAccessEventRepository,
			),
		),
		fx.Module("service",
			fx.Provide(
				auth.NewBcryptHasher,
				auth.NewJWTService,
				auth.NewInviteTokenGenerator,
				qrcode.NewInvitationEncoder,
			),
		),
		fx.Module("access",
			fx.Provide(
				impl.NewTokenVerifier,
				impl.NewIdentityVerifier,
				impl.NewDeviceRegistry,
				impl.NewAccessService,
				impl.NewAdminService,
			),
		),
		fx.Module("api",
			fx.Provide(
				middleware.NewAuthMiddleware,
				middleware.NewRateLimitMiddleware,
				handler.NewAccessHandler,
				handler.NewAdminHandler,
				delivery.As(api.NewServer),
			),
		),
		fx.Invoke(delivery.Start),
	).Run()
}
