package postgres

import (
	"io"
	"log/slog"
	"testing"

	"guestpass/config"
	"guestpass/internal/domain/entity"
	"guestpass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the guestpass schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	db = configureSession(db, slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{})
	require.NoError(t, db.AutoMigrate(&model.GuestModel{}, &model.GuestDeviceModel{}, &model.AccessEventModel{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps transactions and plain reads from contending for SQLite's table lock.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func seedGuest(t *testing.T, db *gorm.DB, mutate func(g *entity.Guest)) *entity.Guest {
	t.Helper()

	guest := &entity.Guest{
		Token:             "tok-" + uuid.NewString(),
		Name:              "Test Guest",
		EventAccess:       []string{"ceremony", "dinner"},
		MaxDevicesAllowed: 2,
	}
	if mutate != nil {
		mutate(guest)
	}

	require.NoError(t, NewGuestRepository(db).Create(t.Context(), guest))

	return guest
}
