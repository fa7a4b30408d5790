package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"guestpass/config"
	deliverycontext "guestpass/internal/delivery/context"
	"guestpass/internal/domain/entity"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/repository"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceRegistry implements the DeviceRegistry interface.
//
// Every mutation runs in a transaction that first takes the guest's row lock,
// so registrations, clears and quota changes for one guest are serialized
// while different guests proceed in parallel.
type deviceRegistry struct {
	txManager  repository.TransactionManager
	deviceRepo repository.DeviceRepository
	maxQuota   int
	logger     *slog.Logger
}

// DeviceRegistryParams holds dependencies for the DeviceRegistry, injected by Fx.
type DeviceRegistryParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DeviceRepo repository.DeviceRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDeviceRegistry is the constructor for deviceRegistry.
func NewDeviceRegistry(params DeviceRegistryParams) usecase.DeviceRegistry {
	maxQuota := 0
	if params.Config != nil && params.Config.Access != nil {
		maxQuota = params.Config.Access.MaxDevicesCeiling
	}

	return &deviceRegistry{
		txManager:  params.TxManager,
		deviceRepo: params.DeviceRepo,
		maxQuota:   maxQuota,
		logger:     params.Logger,
	}
}

func (r *deviceRegistry) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// IsKnown reports whether the fingerprint is registered for the guest.
func (r *deviceRegistry) IsKnown(ctx context.Context, guestID uuid.UUID, fingerprint string) (bool, error) {
	if fingerprint == "" {
		return false, nil
	}

	known, err := r.deviceRepo.Exists(ctx, guestID, fingerprint)
	if err != nil {
		return false, errors.Wrap(err, "failed to check device")
	}

	return known, nil
}

// Register admits the fingerprint if the guest still has room for it.
// Guest submissions register through identityVerifier.Verify instead, which
// shares registerLocked so both paths count and insert under the same row lock.
func (r *deviceRegistry) Register(ctx context.Context, guestID uuid.UUID, fingerprint string) (usecase.RegisterResult, error) {
	if fingerprint == "" {
		return usecase.RegisterResultLimitReached, errors.New("fingerprint is required")
	}

	var result usecase.RegisterResult
	err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		guest, err := lockGuest(ctx, repoFactory.GuestRepo(), guestID)
		if err != nil {
			return err
		}

		result, err = registerLocked(ctx, repoFactory.DeviceRepo(), guest, fingerprint)

		return err
	})
	if err != nil {
		return usecase.RegisterResultLimitReached, errors.Wrap(err, "failed to register device")
	}

	r.log(ctx).Debug("Device registration finished",
		slog.String("guest_id", guestID.String()),
		slog.String("result", result.String()),
	)

	return result, nil
}

// ClearAll removes every device of the guest.
func (r *deviceRegistry) ClearAll(ctx context.Context, guestID uuid.UUID) (int64, error) {
	var cleared int64
	err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := lockGuest(ctx, repoFactory.GuestRepo(), guestID); err != nil {
			return err
		}

		var err error
		cleared, err = repoFactory.DeviceRepo().DeleteByGuest(ctx, guestID)

		return errors.Wrap(err, "failed to delete devices")
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear devices")
	}

	r.log(ctx).Info("Devices cleared",
		slog.String("guest_id", guestID.String()),
		slog.Int64("count", cleared),
	)

	return cleared, nil
}

// quotaRange describes the accepted quotas; a zero ceiling means unbounded.
func quotaRange(ceiling int) string {
	if ceiling <= 0 {
		return "quota must be at least 1"
	}

	return fmt.Sprintf("quota must be between 1 and %d", ceiling)
}

// SetQuota changes the quota. Devices over a lowered quota stay registered.
func (r *deviceRegistry) SetQuota(ctx context.Context, guestID uuid.UUID, maxDevices int) error {
	if maxDevices < 1 || (r.maxQuota > 0 && maxDevices > r.maxQuota) {
		return domainerrors.ErrInvalidQuota.WithDetails(quotaRange(r.maxQuota))
	}

	err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := lockGuest(ctx, repoFactory.GuestRepo(), guestID); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.GuestRepo().UpdateQuota(ctx, guestID, maxDevices), "failed to update quota")
	})
	if err != nil {
		return errors.Wrap(err, "failed to set quota")
	}

	return nil
}

// lockGuest takes the guest's row lock for the rest of the transaction.
func lockGuest(ctx context.Context, guestRepo repository.GuestRepository, guestID uuid.UUID) (*entity.Guest, error) {
	guest, err := guestRepo.LockByID(ctx, guestID)
	if errors.Is(err, repository.ErrGuestNotFound) {
		return nil, domainerrors.ErrGuestNotFound.WrapMessage("guest not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock guest")
	}

	return guest, nil
}

// registerLocked is the check-then-append step. The caller must hold the guest's row lock.
func registerLocked(ctx context.Context, deviceRepo repository.DeviceRepository, guest *entity.Guest, fingerprint string) (usecase.RegisterResult, error) {
	known, err := deviceRepo.Exists(ctx, guest.ID, fingerprint)
	if err != nil {
		return usecase.RegisterResultLimitReached, errors.Wrap(err, "failed to check device")
	}
	if known {
		return usecase.RegisterResultAlreadyRegistered, nil
	}

	count, err := deviceRepo.CountByGuest(ctx, guest.ID)
	if err != nil {
		return usecase.RegisterResultLimitReached, errors.Wrap(err, "failed to count devices")
	}
	if count >= guest.MaxDevicesAllowed {
		return usecase.RegisterResultLimitReached, nil
	}

	err = deviceRepo.Create(ctx, &entity.GuestDevice{
		ID:          uuid.New(),
		GuestID:     guest.ID,
		Fingerprint: fingerprint,
		CreatedAt:   time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrDuplicateDevice) {
		return usecase.RegisterResultAlreadyRegistered, nil
	}
	if err != nil {
		return usecase.RegisterResultLimitReached, errors.Wrap(err, "failed to create device")
	}

	return usecase.RegisterResultRegistered, nil
}
