package postgres

import (
	"testing"
	"time"

	"guestpass/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessEventRepository_CreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccessEventRepository(db)
	guest := seedGuest(t, db, nil)
	ctx := t.Context()

	event := &entity.AccessEvent{
		ID:         uuid.New(),
		GuestID:    guest.ID,
		Type:       entity.AccessEventDeviceLimitReached,
		Detail:     "2/2",
		OccurredAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, event))
	require.NoError(t, repo.Create(ctx, event))

	events, err := repo.ListByGuest(ctx, guest.ID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, entity.AccessEventDeviceLimitReached, events[0].Type)
	assert.Equal(t, "2/2", events[0].Detail)
}

func TestAccessEventRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccessEventRepository(db)
	guest := seedGuest(t, db, nil)
	ctx := t.Context()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, typ := range []entity.AccessEventType{entity.AccessEventIdentityCaptured, entity.AccessEventDeviceRegistered, entity.AccessEventGranted} {
		require.NoError(t, repo.Create(ctx, &entity.AccessEvent{
			GuestID:    guest.ID,
			Type:       typ,
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	events, err := repo.ListByGuest(ctx, guest.ID, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entity.AccessEventGranted, events[0].Type)
	assert.Equal(t, entity.AccessEventDeviceRegistered, events[1].Type)
}
