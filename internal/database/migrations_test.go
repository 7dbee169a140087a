package database_test

import (
	"path/filepath"
	"testing"

	"hangar/internal/database"
)

func TestMigrations(t *testing.T) {
	t.Run("fresh database fails the check until migrated", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hangar.db")
		db, err := database.NewSQLiteDatabase(path, nil, nil)
		if err != nil {
			t.Fatalf("NewSQLiteDatabase() error = %v", err)
		}
		defer db.Close()

		if err := db.CheckMigrations(); err == nil {
			t.Error("CheckMigrations() passed on an empty database")
		}

		if err := db.MigrateUp(); err != nil {
			t.Fatalf("MigrateUp() error = %v", err)
		}
		if err := db.CheckMigrations(); err != nil {
			t.Errorf("CheckMigrations() after migrate error = %v", err)
		}
	})

	t.Run("migrate up is idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hangar.db")
		db, err := database.NewSQLiteDatabase(path, nil, nil)
		if err != nil {
			t.Fatalf("NewSQLiteDatabase() error = %v", err)
		}
		defer db.Close()

		if err := db.MigrateUp(); err != nil {
			t.Fatalf("first MigrateUp() error = %v", err)
		}
		if err := db.MigrateUp(); err != nil {
			t.Errorf("second MigrateUp() error = %v", err)
		}
	})
}
