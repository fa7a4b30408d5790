// Package delivery groups the transports that expose use cases.
package delivery

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
)

const group = `group:"deliveries"`

// Delivery is a long-running server started by cmd entrypoints.
type Delivery interface {
	Serve(ctx context.Context) error
}

// As tags a constructor returning a Delivery so Start serves it.
func As(constructor any) any {
	return fx.Annotate(constructor, fx.ResultTags(group))
}

type StartParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Start serves each delivery on its own goroutine. The first one to fail
// shuts the app down with exit code 1 so every OnStop hook still runs.
func Start(ctx context.Context, params StartParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}

			params.Logger.Error("delivery stopped", slog.Any("error", err))
			if err := params.Shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("shutdown failed", slog.Any("error", err))
			}
		}()
	}
}
