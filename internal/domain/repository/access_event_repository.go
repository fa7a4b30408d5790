package repository

import (
	"context"

	"guestpass/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessEventRepository stores the access audit trail written by the worker.
type AccessEventRepository interface {
	// Create persists an event. Creating an event whose ID already exists is a no-op.
	Create(ctx context.Context, event *entity.AccessEvent) error

	// ListByGuest returns the newest events first.
	ListByGuest(ctx context.Context, guestID uuid.UUID, limit int) ([]*entity.AccessEvent, error)
}
