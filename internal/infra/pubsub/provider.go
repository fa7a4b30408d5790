package pubsub

import (
	"context"
	"log/slog"

	"guestpass/config"
	"guestpass/internal/domain/constants"
	"guestpass/internal/domain/service"
	"guestpass/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured. Access decisions
// never depend on event delivery.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAccessEvent(_ context.Context, event *service.AccessEventMessage) error {
	p.logger.Debug("Access event dropped, no publisher configured",
		slog.String("event_id", event.EventID),
		slog.String(constants.AttrEventType, event.Type),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider and closes it on fx stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

// validateConfig reports every missing setting of the chosen provider at once.
func validateConfig(cfg *config.PubSubConfig) error {
	var errs []error
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			errs = append(errs, errors.New("pubsub.localEndpoint is required for the local provider"))
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			errs = append(errs, errors.New("pubsub.projectId is required for the google provider"))
		}
		if cfg.TopicID == "" {
			errs = append(errs, errors.New("pubsub.topicId is required for the google provider"))
		}
	default:
		errs = append(errs, errors.Errorf("unknown pubsub provider %q", cfg.Provider))
	}

	return errors.Join(errs...)
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Pub/Sub not configured, access events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Pushing access events directly to the worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
