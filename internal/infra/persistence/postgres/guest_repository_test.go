package postgres

import (
	"testing"
	"time"

	"guestpass/internal/domain/entity"
	"guestpass/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestRepository_FindByToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewGuestRepository(db)
	guest := seedGuest(t, db, func(g *entity.Guest) { g.Phone = "5551234" })

	found, err := repo.FindByToken(t.Context(), guest.Token)
	require.NoError(t, err)
	assert.Equal(t, guest.ID, found.ID)
	assert.Equal(t, "5551234", found.Phone)
	assert.Equal(t, []string{"ceremony", "dinner"}, found.EventAccess)
	assert.Nil(t, found.FirstAccessAt)

	_, err = repo.FindByToken(t.Context(), "missing")
	assert.True(t, errors.Is(err, repository.ErrGuestNotFound))
}

func TestGuestRepository_CreateDuplicateToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewGuestRepository(db)
	guest := seedGuest(t, db, nil)

	err := repo.Create(t.Context(), &entity.Guest{Token: guest.Token, Name: "Other", MaxDevicesAllowed: 1})
	assert.True(t, errors.Is(err, repository.ErrDuplicateToken))
}

func TestGuestRepository_Updates(t *testing.T) {
	db := newTestDB(t)
	repo := NewGuestRepository(db)
	guest := seedGuest(t, db, nil)
	ctx := t.Context()

	require.NoError(t, repo.UpdateIdentity(ctx, guest.ID, "", "a@b.com"))
	require.NoError(t, repo.UpdateQuota(ctx, guest.ID, 5))
	require.NoError(t, repo.UpdateToken(ctx, guest.ID, "fresh-token"))

	found, err := repo.FindByID(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", found.Email)
	assert.Equal(t, 5, found.MaxDevicesAllowed)
	assert.Equal(t, "fresh-token", found.Token)

	_, err = repo.FindByToken(ctx, guest.Token)
	assert.True(t, errors.Is(err, repository.ErrGuestNotFound), "old token must stop resolving")

	err = repo.UpdateQuota(ctx, uuid.New(), 3)
	assert.True(t, errors.Is(err, repository.ErrGuestNotFound))
}

func TestGuestRepository_UpdateTokenCollision(t *testing.T) {
	db := newTestDB(t)
	repo := NewGuestRepository(db)
	first := seedGuest(t, db, nil)
	second := seedGuest(t, db, nil)

	err := repo.UpdateToken(t.Context(), second.ID, first.Token)
	assert.True(t, errors.Is(err, repository.ErrDuplicateToken))
}

func TestGuestRepository_MarkFirstAccessOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewGuestRepository(db)
	guest := seedGuest(t, db, nil)
	ctx := t.Context()

	first := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	marked, err := repo.MarkFirstAccess(ctx, guest.ID, first)
	require.NoError(t, err)
	assert.True(t, marked)

	marked, err = repo.MarkFirstAccess(ctx, guest.ID, first.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, marked)

	found, err := repo.FindByID(ctx, guest.ID)
	require.NoError(t, err)
	require.NotNil(t, found.FirstAccessAt)
	assert.True(t, first.Equal(*found.FirstAccessAt))
}

func TestGuestRepository_LockByIDInsideTransaction(t *testing.T) {
	db := newTestDB(t)
	guest := seedGuest(t, db, nil)
	tm := NewTransactionManager(db)

	err := tm.Execute(t.Context(), func(f repository.RepositoryFactory) error {
		locked, err := f.GuestRepo().LockByID(t.Context(), guest.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, guest.Token, locked.Token)

		_, err = f.GuestRepo().LockByID(t.Context(), uuid.New())
		assert.True(t, errors.Is(err, repository.ErrGuestNotFound))

		return nil
	})
	require.NoError(t, err)
}
