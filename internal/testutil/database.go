package testutil

import (
	"testing"

	"hangar/internal/database"
	"hangar/internal/hangar"
)

// NewTestDatabase creates a new in-memory SQLite database with schema applied.
// The database is automatically closed when the test completes.
func NewTestDatabase(t *testing.T) hangar.Database {
	t.Helper()
	return NewTestSQLiteDatabase(t, nil, nil)
}

// NewTestSQLiteDatabase is NewTestDatabase with explicit clock and id
// generator for tests that drive time or need predictable row ids.
func NewTestSQLiteDatabase(t *testing.T, clock hangar.Clock, idgen hangar.IDGenerator) *database.SQLiteDatabase {
	t.Helper()

	sqlDB, err := database.OpenConnection(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if _, err := sqlDB.Exec(database.Schema); err != nil {
		sqlDB.Close()
		t.Fatalf("failed to apply schema: %v", err)
	}

	db := database.NewSQLiteDatabaseFromDB(sqlDB, clock, idgen)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
