// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"guestpass/internal/domain/entity"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/repository"
	"guestpass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// guestRepository implements the repository.GuestRepository interface.
type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository is the constructor for guestRepository.
func NewGuestRepository(db *gorm.DB) repository.GuestRepository {
	return &guestRepository{
		db: db,
	}
}

// FindByToken retrieves a guest by invitation token.
func (repo *guestRepository) FindByToken(ctx context.Context, token string) (*entity.Guest, error) {
	var guestM model.GuestModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&guestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuestNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find guest by token")
	}

	return toGuestDomain(&guestM), nil
}

// FindByID retrieves a guest by its unique ID.
func (repo *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// LockByID loads the guest with SELECT ... FOR UPDATE.
func (repo *guestRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *guestRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Guest, error) {
	var guestM model.GuestModel

	if err := db.Where("id = ?", id).First(&guestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuestNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find guest by ID")
	}

	return toGuestDomain(&guestM), nil
}

// Create persists a new guest.
func (repo *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	if guest.ID == uuid.Nil {
		guest.ID = uuid.New()
	}
	guestM := fromGuestDomain(guest)

	if err := repo.db.WithContext(ctx).Create(guestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateToken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create guest")
	}

	guest.CreatedAt = guestM.CreatedAt
	guest.UpdatedAt = guestM.UpdatedAt

	return nil
}

// UpdateIdentity stores the normalized identity of record.
func (repo *guestRepository) UpdateIdentity(ctx context.Context, id uuid.UUID, phone, email string) error {
	return repo.updateColumns(ctx, id, map[string]any{"phone": phone, "email": email}, "failed to update guest identity")
}

// UpdateToken replaces the invitation token.
func (repo *guestRepository) UpdateToken(ctx context.Context, id uuid.UUID, token string) error {
	return repo.updateColumns(ctx, id, map[string]any{"token": token}, "failed to update guest token")
}

// UpdateQuota changes the device quota.
func (repo *guestRepository) UpdateQuota(ctx context.Context, id uuid.UUID, maxDevices int) error {
	return repo.updateColumns(ctx, id, map[string]any{"max_devices_allowed": maxDevices}, "failed to update guest quota")
}

func (repo *guestRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GuestModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		// token is the only unique column callers can change
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateToken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrGuestNotFound
	}

	return nil
}

// MarkFirstAccess sets first_access_at only while it is still NULL.
func (repo *guestRepository) MarkFirstAccess(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.GuestModel{}).
		Where("id = ? AND first_access_at IS NULL", id).
		Update("first_access_at", at)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark first access")
	}

	return result.RowsAffected > 0, nil
}

func toGuestDomain(data *model.GuestModel) *entity.Guest {
	if data == nil {
		return nil
	}

	eventAccess := data.EventAccess
	if eventAccess == nil {
		eventAccess = []string{}
	}

	return &entity.Guest{
		ID:                data.ID,
		Token:             data.Token,
		Name:              data.Name,
		Phone:             data.Phone,
		Email:             data.Email,
		EventAccess:       eventAccess,
		MaxDevicesAllowed: data.MaxDevicesAllowed,
		FirstAccessAt:     data.FirstAccessAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromGuestDomain(data *entity.Guest) *model.GuestModel {
	if data == nil {
		return nil
	}

	eventAccess := data.EventAccess
	if eventAccess == nil {
		eventAccess = []string{}
	}

	return &model.GuestModel{
		ID:                data.ID,
		Token:             data.Token,
		Name:              data.Name,
		Phone:             data.Phone,
		Email:             data.Email,
		EventAccess:       eventAccess,
		MaxDevicesAllowed: data.MaxDevicesAllowed,
		FirstAccessAt:     data.FirstAccessAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
