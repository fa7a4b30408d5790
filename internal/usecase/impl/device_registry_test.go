package impl

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"guestpass/internal/domain/entity"
	domainerrors "guestpass/internal/domain/errors"
	"guestpass/internal/domain/repository"
	"guestpass/internal/errors"
	mockRepo "guestpass/internal/mocks/repository"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeviceRegistry(store *memStore) usecase.DeviceRegistry {
	return NewDeviceRegistry(DeviceRegistryParams{
		TxManager:  store.txManager(),
		DeviceRepo: store.deviceRepo(),
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})
}

func TestDeviceRegistry_Register(t *testing.T) {
	store := newMemStore()
	guest := store.addGuest(func(g *entity.Guest) { g.MaxDevicesAllowed = 2 })
	registry := newTestDeviceRegistry(store)
	ctx := context.Background()

	result, err := registry.Register(ctx, guest.ID, "fp-a")
	require.NoError(t, err)
	assert.Equal(t, usecase.RegisterResultRegistered, result)

	known, err := registry.IsKnown(ctx, guest.ID, "fp-a")
	require.NoError(t, err)
	assert.True(t, known)

	result, err = registry.Register(ctx, guest.ID, "fp-b")
	require.NoError(t, err)
	assert.Equal(t, usecase.RegisterResultRegistered, result)

	result, err = registry.Register(ctx, guest.ID, "fp-c")
	require.NoError(t, err)
	assert.Equal(t, usecase.RegisterResultLimitReached, result)

	assert.Equal(t, 2, store.deviceCount(guest.ID))
}

func TestDeviceRegistry_Register_Idempotent(t *testing.T) {
	store := newMemStore()
	guest := store.addGuest(func(g *entity.Guest) { g.MaxDevicesAllowed = 1 })
	registry := newTestDeviceRegistry(store)
	ctx := context.Background()

	for range 3 {
		_, err := registry.Register(ctx, guest.ID, "fp-a")
		require.NoError(t, err)
	}

	// a known device is accepted even when the quota is full
	result, err := registry.Register(ctx, guest.ID, "fp-a")
	require.NoError(t, err)
	assert.Equal(t, usecase.RegisterResultAlreadyRegistered, result)
	assert.Equal(t, 1, store.deviceCount(guest.ID))
}

func TestDeviceRegistry_Register_Validation(t *testing.T) {
	store := newMemStore()
	registry := newTestDeviceRegistry(store)
	ctx := context.Background()

	_, err := registry.Register(ctx, uuid.New(), "")
	require.Error(t, err)

	_, err = registry.Register(ctx, uuid.New(), "fp")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrGuestNotFound))

	known, err := registry.IsKnown(ctx, uuid.New(), "")
	require.NoError(t, err)
	assert.False(t, known)
}

func TestDeviceRegistry_ConcurrentRegistrationsRespectQuota(t *testing.T) {
	const (
		attempts = 12
		quota    = 3
	)

	store := newMemStore()
	store.countDelay = 2 * time.Millisecond
	guest := store.addGuest(func(g *entity.Guest) { g.MaxDevicesAllowed = quota })
	registry := newTestDeviceRegistry(store)

	var registered, limited atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			result, err := registry.Register(context.Background(), guest.ID, fmt.Sprintf("fp-%d", i))
			if !assert.NoError(t, err) {
				return
			}
			switch result {
			case usecase.RegisterResultRegistered:
				registered.Add(1)
			case usecase.RegisterResultLimitReached:
				limited.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int64(quota), registered.Load())
	assert.Equal(t, int64(attempts-quota), limited.Load())
	assert.Equal(t, quota, store.deviceCount(guest.ID))
}

func TestDeviceRegistry_ConcurrentSameFingerprint(t *testing.T) {
	store := newMemStore()
	store.countDelay = time.Millisecond
	guest := store.addGuest(func(g *entity.Guest) { g.MaxDevicesAllowed = 5 })
	registry := newTestDeviceRegistry(store)

	var registered atomic.Int64
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := registry.Register(context.Background(), guest.ID, "same-tab")
			if assert.NoError(t, err) && result == usecase.RegisterResultRegistered {
				registered.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), registered.Load())
	assert.Equal(t, 1, store.deviceCount(guest.ID))
}

func TestDeviceRegistry_ConcurrentGuestsDoNotShareQuota(t *testing.T) {
	store := newMemStore()
	guests := []*entity.Guest{
		store.addGuest(func(g *entity.Guest) { g.MaxDevicesAllowed = 1 }),
		store.addGuest(func(g *entity.Guest) { g.MaxDevicesAllowed = 1 }),
	}
	registry := newTestDeviceRegistry(store)

	var wg sync.WaitGroup
	for _, g := range guests {
		for i := range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := registry.Register(context.Background(), g.ID, fmt.Sprintf("fp-%d", i))
				assert.NoError(t, err)
			}()
		}
	}
	wg.Wait()

	for _, g := range guests {
		assert.Equal(t, 1, store.deviceCount(g.ID))
	}
}

func TestDeviceRegistry_ClearAll(t *testing.T) {
	store := newMemStore()
	guest := store.addGuest(func(g *entity.Guest) { g.MaxDevicesAllowed = 1 })
	registry := newTestDeviceRegistry(store)
	ctx := context.Background()

	_, err := registry.Register(ctx, guest.ID, "fp-a")
	require.NoError(t, err)

	cleared, err := registry.ClearAll(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)

	result, err := registry.Register(ctx, guest.ID, "fp-b")
	require.NoError(t, err)
	assert.Equal(t, usecase.RegisterResultRegistered, result)
}

func TestDeviceRegistry_SetQuota(t *testing.T) {
	store := newMemStore()
	guest := store.addGuest(func(g *entity.Guest) { g.MaxDevicesAllowed = 3 })
	registry := newTestDeviceRegistry(store)
	ctx := context.Background()

	for _, fp := range []string{"a", "b", "c"} {
		_, err := registry.Register(ctx, guest.ID, fp)
		require.NoError(t, err)
	}

	require.NoError(t, registry.SetQuota(ctx, guest.ID, 1))
	assert.Equal(t, 1, store.guest(guest.ID).MaxDevicesAllowed)

	// lowering the quota keeps existing devices
	assert.Equal(t, 3, store.deviceCount(guest.ID))
	known, err := registry.IsKnown(ctx, guest.ID, "b")
	require.NoError(t, err)
	assert.True(t, known)

	result, err := registry.Register(ctx, guest.ID, "d")
	require.NoError(t, err)
	assert.Equal(t, usecase.RegisterResultLimitReached, result)
}

func TestDeviceRegistry_SetQuota_OutOfRange(t *testing.T) {
	registry := newTestDeviceRegistry(newMemStore())

	for _, quota := range []int{0, -1, 11} {
		err := registry.SetQuota(context.Background(), uuid.New(), quota)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuota), "quota %d", quota)
	}
}

func TestDeviceRegistry_Register_CountFailure(t *testing.T) {
	store := newMemStore()
	guest := store.addGuest(nil)

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	deviceRepo.EXPECT().Exists(mock.Anything, guest.ID, "fp").Return(false, nil)
	deviceRepo.EXPECT().CountByGuest(mock.Anything, guest.ID).Return(0, errors.New("connection reset"))

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().GuestRepo().Return(store.guestRepo())
	factory.EXPECT().DeviceRepo().Return(deviceRepo)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	registry := NewDeviceRegistry(DeviceRegistryParams{
		TxManager:  txManager,
		DeviceRepo: deviceRepo,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	_, err := registry.Register(context.Background(), guest.ID, "fp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestDeviceRegistry_SetQuota_RangeDetails(t *testing.T) {
	tests := []struct {
		name    string
		ceiling int
		quota   int
		want    string
	}{
		{name: "bounded", ceiling: 10, quota: 11, want: "quota must be between 1 and 10"},
		{name: "unbounded", ceiling: 0, quota: 0, want: "quota must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			cfg.Access.MaxDevicesCeiling = tt.ceiling
			registry := NewDeviceRegistry(DeviceRegistryParams{
				TxManager:  newMemStore().txManager(),
				DeviceRepo: newMemStore().deviceRepo(),
				Config:     cfg,
				Logger:     newDiscardLogger(),
			})

			err := registry.SetQuota(context.Background(), uuid.New(), tt.quota)
			var appErr *domainerrors.BaseError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.want, appErr.Details())
		})
	}
}
