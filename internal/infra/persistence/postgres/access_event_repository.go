package postgres

import (
	"context"

	"guestpass/internal/domain/entity"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/repository"
	"guestpass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxAccessEventPage = 200

// accessEventRepository implements the repository.AccessEventRepository interface.
type accessEventRepository struct {
	db *gorm.DB
}

// NewAccessEventRepository is the constructor for accessEventRepository.
func NewAccessEventRepository(db *gorm.DB) repository.AccessEventRepository {
	return &accessEventRepository{
		db: db,
	}
}

// Create persists an event. Redelivered events hit the primary key and are skipped.
func (repo *accessEventRepository) Create(ctx context.Context, event *entity.AccessEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fromAccessEventDomain(event)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create access event")
	}

	return nil
}

// ListByGuest returns the newest events first.
func (repo *accessEventRepository) ListByGuest(ctx context.Context, guestID uuid.UUID, limit int) ([]*entity.AccessEvent, error) {
	if limit <= 0 || limit > maxAccessEventPage {
		limit = maxAccessEventPage
	}

	var eventModels []*model.AccessEventModel
	if err := repo.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list access events")
	}

	events := make([]*entity.AccessEvent, 0, len(eventModels))
	for _, m := range eventModels {
		events = append(events, toAccessEventDomain(m))
	}

	return events, nil
}

func toAccessEventDomain(data *model.AccessEventModel) *entity.AccessEvent {
	return &entity.AccessEvent{
		ID:          data.ID,
		GuestID:     data.GuestID,
		Type:        entity.AccessEventType(data.Type),
		Fingerprint: data.Fingerprint,
		Detail:      data.Detail,
		RequestID:   data.RequestID,
		OccurredAt:  data.OccurredAt,
	}
}

func fromAccessEventDomain(data *entity.AccessEvent) *model.AccessEventModel {
	return &model.AccessEventModel{
		ID:          data.ID,
		GuestID:     data.GuestID,
		Type:        string(data.Type),
		Fingerprint: data.Fingerprint,
		Detail:      data.Detail,
		RequestID:   data.RequestID,
		OccurredAt:  data.OccurredAt,
	}
}
