package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/tomato/internal/db"
)

// NewTestDB opens a migrated in-memory database that lives for the test.
// Each call gets its own database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
