package usecase

import (
	"context"
	"time"

	"guestpass/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminLoginOutput returns the host session token.
type AdminLoginOutput struct {
	Token     string
	ExpiresAt time.Time
}

// GuestDetail is a guest with its registered devices.
type GuestDetail struct {
	Guest          *entity.Guest
	Devices        []*entity.GuestDevice
	InvitationLink string
}

// RegenerateTokenOutput returns the replacement token.
type RegenerateTokenOutput struct {
	Token          string
	InvitationLink string
	ClearedDevices int64
}

// AdminUsecase defines the host-side guest access operations.
type AdminUsecase interface {
	Login(ctx context.Context, username, password string) (*AdminLoginOutput, error)
	GetGuest(ctx context.Context, guestID uuid.UUID) (*GuestDetail, error)

	// RegenerateToken replaces the token and clears the devices in one transaction.
	RegenerateToken(ctx context.Context, guestID uuid.UUID) (*RegenerateTokenOutput, error)

	ClearDevices(ctx context.Context, guestID uuid.UUID) (int64, error)

	// SetQuota changes the device quota. Devices above a lowered quota are kept.
	SetQuota(ctx context.Context, guestID uuid.UUID, maxDevices int) (*GuestDetail, error)

	InvitationQR(ctx context.Context, guestID uuid.UUID) ([]byte, error)
	ListEvents(ctx context.Context, guestID uuid.UUID, limit int) ([]*entity.AccessEvent, error)
}
