package service_test

import (
	"errors"
	"testing"

	"github.com/Oleh-Rudko/TrackerFood/internal/db"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

func TestCreatePeriodDeactivatesPrevious(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	firstID := createTestPeriod(t, sqldb, "January", "2024-01-01", "2024-01-31")
	secondID := createTestPeriod(t, sqldb, "February", "2024-02-01", "2024-02-29")

	active, err := service.ActivePeriod(sqldb)
	if err != nil {
		t.Fatalf("get active period: %v", err)
	}
	if active == nil || active.ID != secondID {
		t.Fatalf("expected period %d active, got %+v", secondID, active)
	}
	if !active.IsActive {
		t.Fatalf("active period must report is_active = true")
	}

	first, err := service.PeriodByID(sqldb, firstID)
	if err != nil {
		t.Fatalf("get first period: %v", err)
	}
	if first == nil || first.IsActive {
		t.Fatalf("expected first period deactivated, got %+v", first)
	}

	var activeCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM periods WHERE is_active = 1`).Scan(&activeCount); err != nil {
		t.Fatalf("count active periods: %v", err)
	}
	if activeCount != 1 {
		t.Fatalf("expected exactly one active period, got %d", activeCount)
	}
}

func TestActivePeriodEmptyStore(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	active, err := service.ActivePeriod(sqldb)
	if err != nil {
		t.Fatalf("get active period on empty store: %v", err)
	}
	if active != nil {
		t.Fatalf("expected nil active period, got %+v", active)
	}
}

func TestCreatePeriodRejectsInvertedRange(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	_, err := service.CreatePeriod(sqldb, service.CreatePeriodInput{
		StartDate: "2024-02-01",
		EndDate:   "2024-01-01",
	})
	if err == nil {
		t.Fatalf("expected error when start date is after end date")
	}
}

func TestUpdatePeriodPartialFields(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id := createTestPeriod(t, sqldb, "Original", "2024-01-01", "2024-01-31")

	name := "Renamed"
	if err := service.UpdatePeriod(sqldb, id, service.UpdatePeriodInput{Name: &name}); err != nil {
		t.Fatalf("update period name: %v", err)
	}

	p, err := service.PeriodByID(sqldb, id)
	if err != nil {
		t.Fatalf("get period: %v", err)
	}
	if p.Name != "Renamed" {
		t.Fatalf("expected renamed period, got %q", p.Name)
	}
	if p.StartDate != "2024-01-01" || p.EndDate != "2024-01-31" {
		t.Fatalf("dates must be untouched by partial update, got %+v", p)
	}

	// No fields supplied: no write, no error.
	if err := service.UpdatePeriod(sqldb, id, service.UpdatePeriodInput{}); err != nil {
		t.Fatalf("empty update should be a no-op: %v", err)
	}
}

func TestUpdatePeriodUnknownID(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	name := "Ghost"
	if err := service.UpdatePeriod(sqldb, 999, service.UpdatePeriodInput{Name: &name}); err == nil {
		t.Fatalf("expected not-found error for unknown period id")
	}
}

func TestUpdatePeriodActivationKeepsSingleActive(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	firstID := createTestPeriod(t, sqldb, "First", "2024-01-01", "2024-01-31")
	createTestPeriod(t, sqldb, "Second", "2024-02-01", "2024-02-29")

	activate := true
	if err := service.UpdatePeriod(sqldb, firstID, service.UpdatePeriodInput{IsActive: &activate}); err != nil {
		t.Fatalf("reactivate first period: %v", err)
	}

	active, err := service.ActivePeriod(sqldb)
	if err != nil {
		t.Fatalf("get active period: %v", err)
	}
	if active == nil || active.ID != firstID {
		t.Fatalf("expected period %d active, got %+v", firstID, active)
	}
	var activeCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM periods WHERE is_active = 1`).Scan(&activeCount); err != nil {
		t.Fatalf("count active periods: %v", err)
	}
	if activeCount != 1 {
		t.Fatalf("expected exactly one active period, got %d", activeCount)
	}
}

func TestMutationsFailBeforeInit(t *testing.T) {
	t.Parallel()
	sqldb := newUninitializedDB(t)
	defer sqldb.Close()

	_, err := service.CreatePeriod(sqldb, service.CreatePeriodInput{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	if !errors.Is(err, db.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}

	// Reads degrade to empty results instead of failing.
	active, err := service.ActivePeriod(sqldb)
	if err != nil {
		t.Fatalf("read before init should not error: %v", err)
	}
	if active != nil {
		t.Fatalf("expected no active period before init, got %+v", active)
	}
	entries, err := service.EntriesForDay(sqldb, 1, "2024-01-10")
	if err != nil {
		t.Fatalf("entries read before init should not error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries before init")
	}
}
