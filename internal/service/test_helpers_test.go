package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Oleh-Rudko/TrackerFood/internal/db"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mealtracker.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

// newUninitializedDB opens a database without applying migrations.
func newUninitializedDB(t *testing.T) *sql.DB {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "mealtracker.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return sqldb
}

func createTestPeriod(t *testing.T, sqldb *sql.DB, name, start, end string) int64 {
	t.Helper()
	id, err := service.CreatePeriod(sqldb, service.CreatePeriodInput{
		Name:      name,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		t.Fatalf("create period %q: %v", name, err)
	}
	return id
}
