// Command accessworker stores access events pushed by Pub/Sub and alerts hosts.
package main

import (
	"context"

	"guestpass/config"
	"guestpass/internal/delivery"
	"guestpass/internal/delivery/worker"
	"guestpass/internal/delivery/worker/handler"
	logs "guestpass/internal/infra/log"
	"guestpass/internal/infra/notification"
	"guestpass/internal/infra/persistence/postgres"
	"guestpass/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewGuestRepository,
			postgres.NewAccessEventRepository,
			notification.NewNotificationService,
			impl.NewAccessEventService,
			handler.NewPushHandler,
			delivery.As(worker.NewServer),
		),
		fx.Invoke(delivery.Start),
	).Run()
}
