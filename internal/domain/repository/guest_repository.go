// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"guestpass/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for guest persistence.
var (
	// ErrGuestNotFound is returned when no guest matches the id or token.
	ErrGuestNotFound = errors.New("guest not found")
	// ErrDuplicateToken is returned when a token is already assigned to another guest.
	ErrDuplicateToken = errors.New("guest token already exists")
)

// GuestRepository is the guest directory the access flow reads from.
type GuestRepository interface {
	// FindByToken retrieves a guest by invitation token.
	FindByToken(ctx context.Context, token string) (*entity.Guest, error)

	// FindByID retrieves a guest by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)

	// Create persists a new guest.
	Create(ctx context.Context, guest *entity.Guest) error

	// LockByID loads the guest and holds a row lock until the surrounding
	// transaction commits or rolls back. Only meaningful inside TransactionManager.Execute.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)

	// UpdateIdentity stores the normalized identity of record.
	UpdateIdentity(ctx context.Context, id uuid.UUID, phone, email string) error

	// UpdateToken replaces the invitation token.
	UpdateToken(ctx context.Context, id uuid.UUID, token string) error

	// UpdateQuota changes the device quota.
	UpdateQuota(ctx context.Context, id uuid.UUID, maxDevices int) error

	// MarkFirstAccess sets first_access_at if it is still unset and reports whether it did.
	MarkFirstAccess(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}
