// Package storage opens the configured key/value backend and brings its
// schema up to date.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobhunt/internal/client/config"
	"github.com/dmitrijs2005/jobhunt/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobhunt/internal/client/storage/migrations"
	"github.com/dmitrijs2005/jobhunt/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Storage is an opened backend. DB is nil for the memory driver.
type Storage struct {
	DB       *sql.DB
	Metadata metadata.Repository
}

// Close releases the database handle, if any.
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for dialect ("sqlite3" or
// "postgres") to db.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	dir := "sqlite"
	if dialect == "postgres" {
		dir = "postgres"
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Open connects to the backend selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return &Storage{Metadata: metadata.NewMemoryRepository()}, nil

	case config.DriverPostgres:
		db, err := openAndMigrate(ctx, "pgx", cfg.DSN, "postgres")
		if err != nil {
			return nil, err
		}
		return &Storage{DB: db, Metadata: metadata.NewPostgresRepository(db)}, nil

	case config.DriverSQLite:
		if cfg.DSN == "" {
			if _, err := filex.EnsureDir(cfg.DataDir); err != nil {
				return nil, err
			}
		}
		db, err := openAndMigrate(ctx, "sqlite", cfg.SQLitePath(), "sqlite3")
		if err != nil {
			return nil, err
		}
		// One writer keeps sqlite from reporting SQLITE_BUSY between the stores.
		db.SetMaxOpenConns(1)
		return &Storage{DB: db, Metadata: metadata.NewSQLiteRepository(db)}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func openAndMigrate(ctx context.Context, driver, dsn, dialect string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
