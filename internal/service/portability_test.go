package service_test

import (
	"testing"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	source := newTestDB(t)
	defer source.Close()

	periodID := createTestPeriod(t, source, "January", "2024-01-01", "2024-01-31")
	if err := service.UpsertMealEntry(source, service.UpsertMealEntryInput{
		PeriodID: periodID, Date: "2024-01-10", MealType: model.MealBreakfast, Ate: true, Price: 5,
	}); err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	if err := service.UpsertMealEntry(source, service.UpsertMealEntryInput{
		PeriodID: periodID, Date: "2024-01-11", MealType: model.MealLunch, Ate: false, Price: 0,
	}); err != nil {
		t.Fatalf("seed skipped entry: %v", err)
	}
	if err := service.SaveScheduleItem(source, service.SaveScheduleItemInput{
		PeriodID: periodID, DayOfWeek: 1, MealType: model.MealDinner, Time: "18:00",
	}); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	if err := service.DisableDay(source, periodID, "2024-01-15"); err != nil {
		t.Fatalf("seed disabled day: %v", err)
	}

	data, err := service.ExportDataSnapshot(source)
	if err != nil {
		t.Fatalf("export snapshot: %v", err)
	}

	target := newTestDB(t)
	defer target.Close()

	report, err := service.ImportDataSnapshot(target, data, false)
	if err != nil {
		t.Fatalf("import snapshot: %v", err)
	}
	if report.Periods != 1 || report.Entries != 2 || report.Schedule != 1 || report.DisabledDays != 1 {
		t.Fatalf("unexpected import report: %+v", report)
	}

	active, err := service.ActivePeriod(target)
	if err != nil {
		t.Fatalf("active period after import: %v", err)
	}
	if active == nil || active.Name != "January" {
		t.Fatalf("expected imported period to be active, got %+v", active)
	}

	entry, err := service.MealEntryFor(target, active.ID, "2024-01-11", model.MealLunch)
	if err != nil {
		t.Fatalf("get imported entry: %v", err)
	}
	if entry == nil || entry.Ate {
		t.Fatalf("not-eaten entry must stay not-eaten after import, got %+v", entry)
	}

	disabled, err := service.IsDayDisabled(target, active.ID, "2024-01-15")
	if err != nil {
		t.Fatalf("check imported disabled day: %v", err)
	}
	if !disabled {
		t.Fatalf("expected disabled day to survive import")
	}

	items, err := service.ScheduleForDay(target, active.ID, 1)
	if err != nil {
		t.Fatalf("imported schedule: %v", err)
	}
	if len(items) != 1 || items[0].Time != "18:00" {
		t.Fatalf("unexpected imported schedule: %+v", items)
	}
}

func TestImportReplaceClearsExistingData(t *testing.T) {
	t.Parallel()
	source := newTestDB(t)
	defer source.Close()
	createTestPeriod(t, source, "Fresh", "2024-03-01", "2024-03-31")
	data, err := service.ExportDataSnapshot(source)
	if err != nil {
		t.Fatalf("export snapshot: %v", err)
	}

	target := newTestDB(t)
	defer target.Close()
	oldID := createTestPeriod(t, target, "Stale", "2024-01-01", "2024-01-31")
	if err := service.UpsertMealEntry(target, service.UpsertMealEntryInput{
		PeriodID: oldID, Date: "2024-01-10", MealType: model.MealLunch, Ate: true, Price: 10,
	}); err != nil {
		t.Fatalf("seed stale entry: %v", err)
	}

	if _, err := service.ImportDataSnapshot(target, data, true); err != nil {
		t.Fatalf("replace import: %v", err)
	}

	var periodCount, entryCount int
	if err := target.QueryRow(`SELECT COUNT(1) FROM periods`).Scan(&periodCount); err != nil {
		t.Fatalf("count periods: %v", err)
	}
	if err := target.QueryRow(`SELECT COUNT(1) FROM meal_entries`).Scan(&entryCount); err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if periodCount != 1 || entryCount != 0 {
		t.Fatalf("expected replace to clear old data: periods=%d entries=%d", periodCount, entryCount)
	}

	active, err := service.ActivePeriod(target)
	if err != nil {
		t.Fatalf("active after replace: %v", err)
	}
	if active == nil || active.Name != "Fresh" {
		t.Fatalf("expected Fresh period active, got %+v", active)
	}
}
