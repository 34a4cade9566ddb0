package database

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// migrateInstance is the part of *migrate.Migrate the runners use.
type migrateInstance interface {
	Up() error
	Down() error
}

// Injectable seams for tests.
var (
	pgxpoolNew             = pgxpool.New
	sqlOpenDB              = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn              = func(f fs.FS, dir string) (src.Driver, error) { return iofs.New(f, dir) }
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		return migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
	}
)

func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

//go:embed migrations/*.sql
var migrationsFS embed.FS

func newMigrator(dbURL string) (migrateInstance, func(), error) {
	sqlDB, err := sqlOpenDB("pgx", dbURL)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if sqlDB != nil {
			sqlDB.Close()
		}
	}

	driver, err := postgresWithInstanceFn(sqlDB, &postgres.Config{})
	if err != nil {
		closer()
		return nil, nil, err
	}

	sourceDriver, err := iofsNewFn(migrationsFS, "migrations")
	if err != nil {
		closer()
		return nil, nil, err
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return m, closer, nil
}

// RunMigrations applies the embedded SQL migrations (up all).
func RunMigrations(dbURL string) error {
	m, closer, err := newMigrator(dbURL)
	if err != nil {
		return err
	}
	defer closer()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// RollbackAll reverts every migration (down to version 0).
func RollbackAll(dbURL string) error {
	m, closer, err := newMigrator(dbURL)
	if err != nil {
		return err
	}
	defer closer()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
