package repository

import (
	"context"

	"guestpass/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDuplicateDevice is returned when the fingerprint is already registered for the guest.
var ErrDuplicateDevice = errors.New("device already registered")

// DeviceRepository stores the fingerprints admitted to each guest.
type DeviceRepository interface {
	// Exists reports whether the fingerprint is registered for the guest.
	Exists(ctx context.Context, guestID uuid.UUID, fingerprint string) (bool, error)

	// CountByGuest returns how many devices the guest has registered.
	CountByGuest(ctx context.Context, guestID uuid.UUID) (int, error)

	// ListByGuest returns the guest's devices in registration order.
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*entity.GuestDevice, error)

	// Create appends a device.
	Create(ctx context.Context, device *entity.GuestDevice) error

	// DeleteByGuest removes every device of the guest and returns how many were removed.
	DeleteByGuest(ctx context.Context, guestID uuid.UUID) (int64, error)
}
