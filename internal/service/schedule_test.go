package service_test

import (
	"testing"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

func TestSaveScheduleItemReplacesSlot(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	periodID := createTestPeriod(t, sqldb, "Test", "2024-01-01", "2024-01-31")

	if err := service.SaveScheduleItem(sqldb, service.SaveScheduleItemInput{
		PeriodID:  periodID,
		DayOfWeek: 1,
		MealType:  model.MealBreakfast,
		Time:      "08:00",
	}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := service.SaveScheduleItem(sqldb, service.SaveScheduleItemInput{
		PeriodID:  periodID,
		DayOfWeek: 1,
		MealType:  model.MealBreakfast,
		Time:      "08:30",
	}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	items, err := service.ScheduleForDay(sqldb, periodID, 1)
	if err != nil {
		t.Fatalf("schedule for day: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one slot after replacement, got %d", len(items))
	}
	if items[0].Time != "08:30" {
		t.Fatalf("expected latest time 08:30, got %q", items[0].Time)
	}
}

func TestScheduleForDayOrderedByTime(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	periodID := createTestPeriod(t, sqldb, "Test", "2024-01-01", "2024-01-31")

	seed := []service.SaveScheduleItemInput{
		{PeriodID: periodID, DayOfWeek: 3, MealType: model.MealDinner, Time: "18:30"},
		{PeriodID: periodID, DayOfWeek: 3, MealType: model.MealBreakfast, Time: "07:45"},
		{PeriodID: periodID, DayOfWeek: 3, MealType: model.MealLunch, Time: "12:15"},
		{PeriodID: periodID, DayOfWeek: 4, MealType: model.MealLunch, Time: "13:00"},
	}
	for _, in := range seed {
		if err := service.SaveScheduleItem(sqldb, in); err != nil {
			t.Fatalf("seed schedule: %v", err)
		}
	}

	items, err := service.ScheduleForDay(sqldb, periodID, 3)
	if err != nil {
		t.Fatalf("schedule for day: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 slots for Wednesday, got %d", len(items))
	}
	want := []string{"07:45", "12:15", "18:30"}
	for i, time := range want {
		if items[i].Time != time {
			t.Fatalf("slot %d: expected time %s, got %s", i, time, items[i].Time)
		}
	}

	all, err := service.Schedule(sqldb, periodID)
	if err != nil {
		t.Fatalf("full schedule: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 slots total, got %d", len(all))
	}
}

func TestSaveScheduleItemValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	periodID := createTestPeriod(t, sqldb, "Test", "2024-01-01", "2024-01-31")

	cases := []struct {
		name string
		in   service.SaveScheduleItemInput
	}{
		{"weekday too high", service.SaveScheduleItemInput{PeriodID: periodID, DayOfWeek: 7, MealType: model.MealLunch, Time: "12:00"}},
		{"negative weekday", service.SaveScheduleItemInput{PeriodID: periodID, DayOfWeek: -1, MealType: model.MealLunch, Time: "12:00"}},
		{"bad meal type", service.SaveScheduleItemInput{PeriodID: periodID, DayOfWeek: 1, MealType: "supper", Time: "12:00"}},
		{"bad time", service.SaveScheduleItemInput{PeriodID: periodID, DayOfWeek: 1, MealType: model.MealLunch, Time: "25:99"}},
	}
	for _, tc := range cases {
		if err := service.SaveScheduleItem(sqldb, tc.in); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestClearScheduleAndDeleteItem(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	periodID := createTestPeriod(t, sqldb, "Test", "2024-01-01", "2024-01-31")

	for day := 0; day < 3; day++ {
		if err := service.SaveScheduleItem(sqldb, service.SaveScheduleItemInput{
			PeriodID:  periodID,
			DayOfWeek: day,
			MealType:  model.MealLunch,
			Time:      "12:00",
		}); err != nil {
			t.Fatalf("seed day %d: %v", day, err)
		}
	}

	if err := service.DeleteScheduleItem(sqldb, periodID, 1, model.MealLunch); err != nil {
		t.Fatalf("delete one slot: %v", err)
	}
	items, err := service.Schedule(sqldb, periodID)
	if err != nil {
		t.Fatalf("schedule after delete: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 slots after delete, got %d", len(items))
	}

	if err := service.ClearSchedule(sqldb, periodID); err != nil {
		t.Fatalf("clear schedule: %v", err)
	}
	items, err = service.Schedule(sqldb, periodID)
	if err != nil {
		t.Fatalf("schedule after clear: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty schedule after clear, got %d slots", len(items))
	}
}
