package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "guestpass/internal/delivery/context"
	"guestpass/internal/domain/entity"
	"guestpass/internal/domain/service"

	"github.com/google/uuid"
)

// eventEmitter publishes access events. Publishing failures are logged and
// never change the outcome of the operation that produced the event.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newEventEmitter(publisher service.EventPublisher, logger *slog.Logger) *eventEmitter {
	return &eventEmitter{publisher: publisher, logger: logger, now: time.Now}
}

func (e *eventEmitter) emit(ctx context.Context, guestID uuid.UUID, eventType entity.AccessEventType, fingerprint, detail string) {
	msg := &service.AccessEventMessage{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.New().String(),
		Type:        string(eventType),
		Fingerprint: fingerprint,
		Detail:      detail,
		OccurredAt:  e.now().UTC(),
	}
	if guestID != uuid.Nil {
		msg.GuestID = guestID.String()
	}

	if err := e.publisher.PublishAccessEvent(ctx, msg); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish access event",
			slog.String("event_type", msg.Type),
			slog.String("guest_id", msg.GuestID),
			slog.Any("error", err),
		)
	}
}
