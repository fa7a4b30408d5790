package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"guestpass/config"
	"guestpass/internal/domain/entity"
	"guestpass/internal/domain/repository"
	"guestpass/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			Admins: []config.AdminUser{
				{Username: "host", PasswordHash: "hashed-secret"},
				{Username: "usher", PasswordHash: "hashed-usher", Role: "viewer"},
				{Username: "broken", PasswordHash: "hashed-broken", Role: "root"},
			},
		},
		Access: &config.AccessConfig{
			DefaultMaxDevices: 2,
			MaxDevicesCeiling: 10,
			TokenBytes:        24,
			InvitationBaseURL: "https://party.example.com/invite/",
		},
		Firebase: &config.FirebaseConfig{HostAlertTopic: "host-alerts"},
	}
}

// memStore is an in-memory guest directory. Transactions do not roll back,
// but LockByID inside a transaction holds a per-guest mutex until Execute
// returns, the way a row lock is held until commit.
type memStore struct {
	mu       sync.Mutex
	guests   map[uuid.UUID]*entity.Guest
	devices  map[uuid.UUID][]*entity.GuestDevice
	events   []*entity.AccessEvent
	rowLocks map[uuid.UUID]*sync.Mutex

	// countDelay widens the window between counting and appending a device.
	countDelay time.Duration
}

func newMemStore() *memStore {
	return &memStore{
		guests:   make(map[uuid.UUID]*entity.Guest),
		devices:  make(map[uuid.UUID][]*entity.GuestDevice),
		rowLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *memStore) addGuest(mutate func(g *entity.Guest)) *entity.Guest {
	guest := &entity.Guest{
		ID:                uuid.New(),
		Token:             uuid.NewString(),
		Name:              "Test Guest",
		EventAccess:       []string{"ceremony", "dinner"},
		MaxDevicesAllowed: 2,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
	if mutate != nil {
		mutate(guest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.guests[guest.ID] = guest

	return copyGuest(guest)
}

func (s *memStore) guest(id uuid.UUID) *entity.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyGuest(s.guests[id])
}

func (s *memStore) deviceCount(guestID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.devices[guestID])
}

func (s *memStore) rowLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.rowLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.rowLocks[id] = lock
	}

	return lock
}

func copyGuest(g *entity.Guest) *entity.Guest {
	if g == nil {
		return nil
	}
	cp := *g
	cp.EventAccess = slices.Clone(g.EventAccess)

	return &cp
}

func (s *memStore) txManager() repository.TransactionManager {
	return &memTxManager{store: s}
}

func (s *memStore) guestRepo() repository.GuestRepository {
	return &memGuestRepo{store: s}
}

func (s *memStore) deviceRepo() repository.DeviceRepository {
	return &memDeviceRepo{store: s}
}

type memTx struct {
	unlocks []func()
}

type memTxManager struct {
	store *memStore
}

func (tm *memTxManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tx := &memTx{}
	defer func() {
		for i := len(tx.unlocks) - 1; i >= 0; i-- {
			tx.unlocks[i]()
		}
	}()

	return fn(&memRepoFactory{store: tm.store, tx: tx})
}

type memRepoFactory struct {
	store *memStore
	tx    *memTx
}

func (f *memRepoFactory) GuestRepo() repository.GuestRepository {
	return &memGuestRepo{store: f.store, tx: f.tx}
}

func (f *memRepoFactory) DeviceRepo() repository.DeviceRepository {
	return &memDeviceRepo{store: f.store}
}

func (f *memRepoFactory) AccessEventRepo() repository.AccessEventRepository {
	return nil
}

type memGuestRepo struct {
	store *memStore
	tx    *memTx
}

func (r *memGuestRepo) FindByToken(_ context.Context, token string) (*entity.Guest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, g := range r.store.guests {
		if g.Token == token {
			return copyGuest(g), nil
		}
	}

	return nil, repository.ErrGuestNotFound
}

func (r *memGuestRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Guest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	g, ok := r.store.guests[id]
	if !ok {
		return nil, repository.ErrGuestNotFound
	}

	return copyGuest(g), nil
}

func (r *memGuestRepo) Create(_ context.Context, guest *entity.Guest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.guests[guest.ID] = copyGuest(guest)

	return nil
}

func (r *memGuestRepo) LockByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	if r.tx != nil {
		lock := r.store.rowLock(id)
		lock.Lock()
		r.tx.unlocks = append(r.tx.unlocks, lock.Unlock)
	}

	return r.FindByID(ctx, id)
}

func (r *memGuestRepo) update(id uuid.UUID, fn func(g *entity.Guest)) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	g, ok := r.store.guests[id]
	if !ok {
		return repository.ErrGuestNotFound
	}
	fn(g)
	g.UpdatedAt = time.Now().UTC()

	return nil
}

func (r *memGuestRepo) UpdateIdentity(_ context.Context, id uuid.UUID, phone, email string) error {
	return r.update(id, func(g *entity.Guest) { g.Phone, g.Email = phone, email })
}

func (r *memGuestRepo) UpdateToken(_ context.Context, id uuid.UUID, token string) error {
	return r.update(id, func(g *entity.Guest) { g.Token = token })
}

func (r *memGuestRepo) UpdateQuota(_ context.Context, id uuid.UUID, maxDevices int) error {
	return r.update(id, func(g *entity.Guest) { g.MaxDevicesAllowed = maxDevices })
}

func (r *memGuestRepo) MarkFirstAccess(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	marked := false
	err := r.update(id, func(g *entity.Guest) {
		if g.FirstAccessAt == nil {
			g.FirstAccessAt = &at
			marked = true
		}
	})

	return marked, err
}

type memDeviceRepo struct {
	store *memStore
}

func (r *memDeviceRepo) Exists(_ context.Context, guestID uuid.UUID, fingerprint string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return slices.ContainsFunc(r.store.devices[guestID], func(d *entity.GuestDevice) bool {
		return d.Fingerprint == fingerprint
	}), nil
}

func (r *memDeviceRepo) CountByGuest(_ context.Context, guestID uuid.UUID) (int, error) {
	r.store.mu.Lock()
	count := len(r.store.devices[guestID])
	r.store.mu.Unlock()

	if r.store.countDelay > 0 {
		time.Sleep(r.store.countDelay)
	}

	return count, nil
}

func (r *memDeviceRepo) ListByGuest(_ context.Context, guestID uuid.UUID) ([]*entity.GuestDevice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return slices.Clone(r.store.devices[guestID]), nil
}

func (r *memDeviceRepo) Create(_ context.Context, device *entity.GuestDevice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if slices.ContainsFunc(r.store.devices[device.GuestID], func(d *entity.GuestDevice) bool {
		return d.Fingerprint == device.Fingerprint
	}) {
		return repository.ErrDuplicateDevice
	}
	r.store.devices[device.GuestID] = append(r.store.devices[device.GuestID], device)

	return nil
}

func (r *memDeviceRepo) DeleteByGuest(_ context.Context, guestID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n := int64(len(r.store.devices[guestID]))
	delete(r.store.devices, guestID)

	return n, nil
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.AccessEventMessage
}

func (p *recordingPublisher) PublishAccessEvent(_ context.Context, event *service.AccessEventMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}

	return types
}
