package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"guestpass/internal/domain/constants"
	"guestpass/internal/domain/service"
	"guestpass/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher publishes access events to a Pub/Sub topic. Events of
// one guest share an ordering key so the worker sees them in order.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishAccessEvent publishes an access event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishAccessEvent(ctx context.Context, event *service.AccessEventMessage) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:        data,
		Attributes:  messageAttributes(event),
		OrderingKey: event.GuestID,
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// a failed ordered publish pauses its key until resumed
		if msg.OrderingKey != "" {
			p.publisher.ResumePublish(msg.OrderingKey)
		}

		return errors.Wrapf(err, "publish %s event", event.Type)
	}

	p.logger.Debug("Access event published",
		slog.String("event_id", event.EventID),
		slog.String(constants.AttrEventType, event.Type),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// messageAttributes lets subscriptions filter on event type and carries the trace id.
func messageAttributes(event *service.AccessEventMessage) map[string]string {
	attributes := map[string]string{
		"event_id":              event.EventID,
		constants.AttrEventType: event.Type,
	}
	if event.GuestID != "" {
		attributes["guest_id"] = event.GuestID
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return attributes
}
