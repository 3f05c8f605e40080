// Package testutil provides an isolated in-memory database for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/database"
	"gorm.io/gorm"
)

// NewDB opens a migrated sqlite database that lives only as long as t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}

	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access test database pool: %v", err)
	}
	// One connection keeps the memory database alive and avoids shared-cache table locks.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}
