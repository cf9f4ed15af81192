package notify_test

import (
	"testing"

	"github.com/Oleh-Rudko/TrackerFood/internal/config"
	"github.com/Oleh-Rudko/TrackerFood/internal/model"
	"github.com/Oleh-Rudko/TrackerFood/internal/notify"
)

func TestBuildPlanTwoRegistrationsPerSlot(t *testing.T) {
	t.Parallel()

	items := []model.ScheduleItem{
		{DayOfWeek: 1, MealType: model.MealBreakfast, Time: "08:00"},
		{DayOfWeek: 1, MealType: model.MealDinner, Time: "00:03"},
	}
	prices := config.Default().Prices

	plan, err := notify.BuildPlan(items, prices)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if len(plan) != 4 {
		t.Fatalf("expected 4 registrations, got %d", len(plan))
	}

	check, reminder := plan[0], plan[1]
	if check.Kind != notify.KindMealCheck || check.Time != "08:00" {
		t.Fatalf("unexpected meal check registration: %+v", check)
	}
	if check.Price != prices.Breakfast {
		t.Fatalf("expected breakfast price %v, got %v", prices.Breakfast, check.Price)
	}
	if reminder.Kind != notify.KindReminder || reminder.Time != "07:55" {
		t.Fatalf("unexpected reminder registration: %+v", reminder)
	}
	if reminder.Weekday != check.Weekday {
		t.Fatalf("reminder moved to weekday %d, expected %d", reminder.Weekday, check.Weekday)
	}

	// The dinner reminder rolls under midnight but stays on Monday.
	dinnerReminder := plan[3]
	if dinnerReminder.Time != "23:58" || dinnerReminder.Weekday != 1 {
		t.Fatalf("unexpected rolled-under reminder: %+v", dinnerReminder)
	}

	seen := make(map[string]bool)
	for _, reg := range plan {
		if reg.ID == "" || seen[reg.ID] {
			t.Fatalf("registration IDs must be unique and non-empty: %+v", reg)
		}
		seen[reg.ID] = true
	}
}

func TestBuildPlanRejectsBadTime(t *testing.T) {
	t.Parallel()

	items := []model.ScheduleItem{{DayOfWeek: 2, MealType: model.MealLunch, Time: "25:00"}}
	if _, err := notify.BuildPlan(items, config.Default().Prices); err == nil {
		t.Fatalf("expected error for invalid slot time")
	}
}

func TestCronSpec(t *testing.T) {
	t.Parallel()

	reg := notify.Registration{Weekday: 3, Time: "07:55"}
	spec, err := reg.CronSpec()
	if err != nil {
		t.Fatalf("CronSpec: %v", err)
	}
	if spec != "55 7 * * 3" {
		t.Fatalf("expected %q, got %q", "55 7 * * 3", spec)
	}

	if _, err := (notify.Registration{Weekday: 0, Time: "bad"}).CronSpec(); err == nil {
		t.Fatalf("expected error for unparseable time")
	}
}
