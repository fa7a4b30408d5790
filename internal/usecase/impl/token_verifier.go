// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "guestpass/internal/delivery/context"
	"guestpass/internal/domain/entity"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/repository"
	"guestpass/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenVerifier implements the TokenVerifier interface.
type tokenVerifier struct {
	guestRepo  repository.GuestRepository
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// TokenVerifierParams holds dependencies for the TokenVerifier, injected by Fx.
type TokenVerifierParams struct {
	fx.In

	GuestRepo  repository.GuestRepository
	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewTokenVerifier is the constructor for tokenVerifier.
func NewTokenVerifier(params TokenVerifierParams) usecase.TokenVerifier {
	return &tokenVerifier{
		guestRepo:  params.GuestRepo,
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (v *tokenVerifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

// Resolve looks the token up in the guest directory.
func (v *tokenVerifier) Resolve(ctx context.Context, token string) (*entity.Guest, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("empty token")
	}

	guest, err := v.guestRepo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrGuestNotFound) {
		v.log(ctx).Debug("Unknown invitation token")

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find guest by token")
	}

	return guest, nil
}

// Verify resolves the token and counts the guest's devices.
func (v *tokenVerifier) Verify(ctx context.Context, token string) (*usecase.GuestProjection, error) {
	guest, err := v.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	return projectGuest(ctx, v.deviceRepo, guest)
}

func projectGuest(ctx context.Context, deviceRepo repository.DeviceRepository, guest *entity.Guest) (*usecase.GuestProjection, error) {
	count, err := deviceRepo.CountByGuest(ctx, guest.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count devices")
	}

	eventAccess := guest.EventAccess
	if eventAccess == nil {
		eventAccess = []string{}
	}

	return &usecase.GuestProjection{
		ID:                guest.ID,
		Name:              guest.Name,
		HasIdentity:       guest.HasIdentity(),
		EventAccess:       eventAccess,
		DeviceCount:       count,
		MaxDevicesAllowed: guest.MaxDevicesAllowed,
	}, nil
}
