package service_test

import (
	"encoding/json"
	"testing"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

func TestRangeReportRowPerDate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	periodID := createTestPeriod(t, sqldb, "Test", "2024-01-01", "2024-01-31")

	seed := []service.UpsertMealEntryInput{
		{PeriodID: periodID, Date: "2024-01-10", MealType: model.MealBreakfast, Ate: true, Price: 5},
		{PeriodID: periodID, Date: "2024-01-10", MealType: model.MealDinner, Ate: true, Price: 7},
		{PeriodID: periodID, Date: "2024-01-11", MealType: model.MealLunch, Ate: false, Price: 10},
	}
	for _, in := range seed {
		if err := service.UpsertMealEntry(sqldb, in); err != nil {
			t.Fatalf("seed entry: %v", err)
		}
	}

	report, err := service.RangeReport(sqldb, periodID, "2024-01-10", "2024-01-12")
	if err != nil {
		t.Fatalf("range report: %v", err)
	}
	if len(report.Days) != 3 {
		t.Fatalf("expected 3 rows for 3 calendar dates, got %d", len(report.Days))
	}

	first := report.Days[0]
	if first.Date != "2024-01-10" {
		t.Fatalf("unexpected first row date %s", first.Date)
	}
	if first.Breakfast != model.StatusAte || first.Lunch != model.StatusUnmarked || first.Dinner != model.StatusAte {
		t.Fatalf("unexpected first row statuses: %+v", first)
	}
	if first.Total != 12 {
		t.Fatalf("expected first row total 12, got %v", first.Total)
	}

	second := report.Days[1]
	if second.Lunch != model.StatusDidNotEat {
		t.Fatalf("marked-not-eaten must stay distinct from unmarked: %+v", second)
	}
	if second.Total != 0 {
		t.Fatalf("expected second row total 0, got %v", second.Total)
	}

	third := report.Days[2]
	if third.Breakfast != model.StatusUnmarked || third.Lunch != model.StatusUnmarked || third.Dinner != model.StatusUnmarked {
		t.Fatalf("expected empty date to be all unmarked: %+v", third)
	}

	if report.Total != 12 {
		t.Fatalf("expected grand total 12, got %v", report.Total)
	}
}

func TestRangeReportTriStateRoundTripsThroughJSON(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	periodID := createTestPeriod(t, sqldb, "Test", "2024-01-01", "2024-01-31")
	if err := service.UpsertMealEntry(sqldb, service.UpsertMealEntryInput{
		PeriodID: periodID, Date: "2024-01-10", MealType: model.MealLunch, Ate: false, Price: 0,
	}); err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	report, err := service.RangeReport(sqldb, periodID, "2024-01-10", "2024-01-10")
	if err != nil {
		t.Fatalf("range report: %v", err)
	}

	encoded, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	var decoded service.Report
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}

	row := decoded.Days[0]
	if row.Lunch != model.StatusDidNotEat {
		t.Fatalf("not_ate must survive the round trip, got %v", row.Lunch)
	}
	if row.Breakfast != model.StatusUnmarked || row.Dinner != model.StatusUnmarked {
		t.Fatalf("unmarked must survive the round trip, got %+v", row)
	}
}

func TestRangeReportRejectsInvertedRange(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	periodID := createTestPeriod(t, sqldb, "Test", "2024-01-01", "2024-01-31")
	if _, err := service.RangeReport(sqldb, periodID, "2024-01-12", "2024-01-10"); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}
