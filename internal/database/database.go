package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"expense-client/internal/config"
	"expense-client/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the local credential database
type DB struct {
	*gorm.DB
	config *config.StorageConfig
}

// New opens (creating if needed) the SQLite file at cfg.Path. The file is
// restricted to the current user.
func New(cfg *config.StorageConfig) (*DB, error) {
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create credential store directory: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// SQLite allows one writer; a single connection also keeps :memory: stable.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping credential store: %w", err)
	}

	if cfg.Path != ":memory:" {
		if err := os.Chmod(cfg.Path, 0o600); err != nil {
			return nil, fmt.Errorf("failed to restrict credential store permissions: %w", err)
		}
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.StoredCredential{})
}

// AutoMigrateBackend creates the tables used by the development backend
func (db *DB) AutoMigrateBackend() error {
	return db.DB.AutoMigrate(
		&models.UserAccount{},
		&models.ExpenseRecord{},
		&models.RefreshToken{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Initialize opens the credential store and brings its schema up to date,
// falling back to GORM AutoMigrate when the migration runner fails.
func Initialize(cfg *config.StorageConfig, log *slog.Logger) (*DB, error) {
	db, err := New(cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.AutoMigrate {
		return db, nil
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := NewMigrationRunner(sqlDB, log)
	if err := runner.RunMigrations(); err != nil {
		log.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
		if err := db.AutoMigrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return db, nil
}
