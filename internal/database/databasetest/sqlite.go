// Package databasetest provides an in-memory database for tests that
// need real gorm queries without a running postgres server.
package databasetest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-manager/internal/database"
)

func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// Every new connection to :memory: is a separate empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = database.Migrate(db)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
