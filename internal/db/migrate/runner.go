// Package migrate runs database migrations from embedded SQL files using golang-migrate.
package migrate

import (
	"guestpass/internal/db"
	"guestpass/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// ErrNoChange is returned when Up/Down has nothing to do.
var ErrNoChange = migrate.ErrNoChange

// Source opens the embedded migrations as a golang-migrate source driver.
func Source() (source.Driver, error) {
	driver, err := iofs.New(db.MigrationFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "migrate source")
	}

	return driver, nil
}

// Run applies migrations in the given direction against dsn.
func Run(dsn, direction string) error {
	if dsn == "" {
		return errors.New("migrate.databaseUrl is not set")
	}
	if direction != DirectionUp && direction != DirectionDown {
		return errors.Errorf("direction must be up or down, got %q", direction)
	}

	sourceDriver, err := Source()
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, dsn)
	if err != nil {
		return errors.Wrap(err, "migrate")
	}
	defer func() { _, _ = m.Close() }()

	if direction == DirectionUp {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "migrate %s", direction)
	}

	return nil
}
