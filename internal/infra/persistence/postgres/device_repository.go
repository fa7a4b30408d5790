package postgres

import (
	"context"
	"time"

	"guestpass/internal/domain/entity"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/repository"
	"guestpass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Exists reports whether the fingerprint is registered for the guest.
func (repo *deviceRepository) Exists(ctx context.Context, guestID uuid.UUID, fingerprint string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GuestDeviceModel{}).
		Where("guest_id = ? AND fingerprint = ?", guestID, fingerprint).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to look up device")
	}

	return count > 0, nil
}

// CountByGuest returns how many devices the guest has registered.
func (repo *deviceRepository) CountByGuest(ctx context.Context, guestID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GuestDeviceModel{}).
		Where("guest_id = ?", guestID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count devices")
	}

	return int(count), nil
}

// ListByGuest returns the guest's devices in registration order.
func (repo *deviceRepository) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*entity.GuestDevice, error) {
	var deviceModels []*model.GuestDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list devices")
	}

	devices := make([]*entity.GuestDevice, 0, len(deviceModels))
	for _, m := range deviceModels {
		devices = append(devices, toDeviceDomain(m))
	}

	return devices, nil
}

// Create appends a device.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.GuestDevice) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	if device.CreatedAt.IsZero() {
		device.CreatedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(fromDeviceDomain(device)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGuestNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	return nil
}

// DeleteByGuest removes every device of the guest.
func (repo *deviceRepository) DeleteByGuest(ctx context.Context, guestID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Delete(&model.GuestDeviceModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete devices")
	}

	return result.RowsAffected, nil
}

func toDeviceDomain(data *model.GuestDeviceModel) *entity.GuestDevice {
	if data == nil {
		return nil
	}

	return &entity.GuestDevice{
		ID:          data.ID,
		GuestID:     data.GuestID,
		Fingerprint: data.Fingerprint,
		CreatedAt:   data.CreatedAt,
	}
}

func fromDeviceDomain(data *entity.GuestDevice) *model.GuestDeviceModel {
	if data == nil {
		return nil
	}

	return &model.GuestDeviceModel{
		ID:          data.ID,
		GuestID:     data.GuestID,
		Fingerprint: data.Fingerprint,
		CreatedAt:   data.CreatedAt,
	}
}
