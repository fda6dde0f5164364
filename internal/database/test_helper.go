package database

import (
	"testing"

	"expense-client/internal/config"
)

// SetupTestDB opens an in-memory credential store with the schema applied
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(&config.StorageConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// SetupBackendTestDB opens an in-memory database with the backend tables
func SetupBackendTestDB(t *testing.T) *DB {
	t.Helper()

	db := SetupTestDB(t)
	if err := db.AutoMigrateBackend(); err != nil {
		t.Fatalf("failed to migrate backend tables: %v", err)
	}
	return db
}

// CleanupTestDB removes every stored credential
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM credentials").Error; err != nil {
		t.Logf("failed to cleanup table credentials: %v", err)
	}
}
