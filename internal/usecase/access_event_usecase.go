package usecase

import (
	"context"

	"guestpass/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrMalformedEvent is returned for messages that can never be processed.
var ErrMalformedEvent = errors.New("malformed access event")

// AccessEventUsecase processes access events delivered by the message bus.
type AccessEventUsecase interface {
	// Record stores the event and alerts the host when needed. Storage
	// failures are returned wrapped so the caller can ask for redelivery.
	Record(ctx context.Context, event *service.AccessEventMessage) error
}
