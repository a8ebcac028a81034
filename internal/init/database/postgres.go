package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	ps "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"torneos/config"
)

//go:embed migrations/*.sql
var sqlFiles embed.FS

// Storage owns the connection pool. Repositories receive Storage.Db at
// construction and never reach for a global handle.
type Storage struct {
	Db *gorm.DB
}

func DSN(cfg config.DbConfig, password string) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.Username, password, cfg.DbName, cfg.Port, cfg.SSLMode,
	)
}

func NewStorage(cfg config.DbConfig, log *slog.Logger) (*Storage, error) {
	return Open(DSN(cfg, os.Getenv("DB_PASSWORD")), cfg, log)
}

// Open connects with dsn, sizes the pool from cfg and applies the embedded
// migrations.
func Open(dsn string, cfg config.DbConfig, log *slog.Logger) (*Storage, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	migrator := MustGetNewMigrator(sqlFiles, "migrations")
	if err := migrator.ApplyMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.Info("migrations applied")

	return &Storage{Db: db}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	sqlDB, err := s.Db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Storage) Close() error {
	sqlDB, err := s.Db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type Migrator struct {
	srcDriver source.Driver
}

func MustGetNewMigrator(sqlFiles embed.FS, dirName string) *Migrator {
	srcDriver, err := iofs.New(sqlFiles, dirName)
	if err != nil {
		panic(fmt.Errorf("failed to initialize source driver: %w", err))
	}
	return &Migrator{srcDriver: srcDriver}
}

func (m *Migrator) ApplyMigrations(db *sql.DB) error {
	driver, err := ps.WithInstance(db, &ps.Config{})
	if err != nil {
		return fmt.Errorf("unable to create postgres driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance(
		"iofs", m.srcDriver, "postgres", driver,
	)
	if err != nil {
		return fmt.Errorf("unable to create migrator: %w", err)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	return nil
}
