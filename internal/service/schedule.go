package service

import (
	"database/sql"
	"fmt"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
)

type SaveScheduleItemInput struct {
	PeriodID  int64
	DayOfWeek int
	MealType  model.MealType
	Time      string
}

// SaveScheduleItem sets the reminder time for one (weekday, meal) slot.
// A single upsert keeps exactly one row per slot even if interrupted.
func SaveScheduleItem(db *sql.DB, in SaveScheduleItemInput) error {
	if err := requireReady(db); err != nil {
		return err
	}
	if in.PeriodID <= 0 {
		return fmt.Errorf("period id must be > 0")
	}
	if err := validateWeekday(in.DayOfWeek); err != nil {
		return err
	}
	if _, err := model.ParseMealType(string(in.MealType)); err != nil {
		return err
	}
	hour, minute, err := parseClock("time", in.Time)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
INSERT INTO schedule(period_id, day_of_week, meal_type, time)
VALUES(?, ?, ?, ?)
ON CONFLICT(period_id, day_of_week, meal_type) DO UPDATE SET
  time = excluded.time
`, in.PeriodID, in.DayOfWeek, string(in.MealType), fmt.Sprintf("%02d:%02d", hour, minute))
	if err != nil {
		return fmt.Errorf("save schedule item: %w", err)
	}
	return nil
}

func DeleteScheduleItem(db *sql.DB, periodID int64, dayOfWeek int, meal model.MealType) error {
	if err := requireReady(db); err != nil {
		return err
	}
	if err := validateWeekday(dayOfWeek); err != nil {
		return err
	}
	if _, err := db.Exec(`
DELETE FROM schedule WHERE period_id = ? AND day_of_week = ? AND meal_type = ?
`, periodID, dayOfWeek, string(meal)); err != nil {
		return fmt.Errorf("delete schedule item: %w", err)
	}
	return nil
}

func ClearSchedule(db *sql.DB, periodID int64) error {
	if err := requireReady(db); err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM schedule WHERE period_id = ?`, periodID); err != nil {
		return fmt.Errorf("clear schedule: %w", err)
	}
	return nil
}

// Schedule returns every configured slot for a period, ordered by
// weekday then meal type.
func Schedule(db *sql.DB, periodID int64) ([]model.ScheduleItem, error) {
	return querySchedule(db, `
SELECT id, period_id, day_of_week, meal_type, time
FROM schedule
WHERE period_id = ?
ORDER BY day_of_week, meal_type
`, periodID)
}

// ScheduleForDay returns one weekday's slots ordered by time.
func ScheduleForDay(db *sql.DB, periodID int64, dayOfWeek int) ([]model.ScheduleItem, error) {
	if err := validateWeekday(dayOfWeek); err != nil {
		return nil, err
	}
	return querySchedule(db, `
SELECT id, period_id, day_of_week, meal_type, time
FROM schedule
WHERE period_id = ? AND day_of_week = ?
ORDER BY time
`, periodID, dayOfWeek)
}

func querySchedule(db *sql.DB, query string, args ...any) ([]model.ScheduleItem, error) {
	if !isReady(db) {
		return []model.ScheduleItem{}, nil
	}
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	defer rows.Close()

	items := make([]model.ScheduleItem, 0)
	for rows.Next() {
		var item model.ScheduleItem
		var mealType string
		if err := rows.Scan(&item.ID, &item.PeriodID, &item.DayOfWeek, &mealType, &item.Time); err != nil {
			return nil, fmt.Errorf("scan schedule item: %w", err)
		}
		item.MealType = model.MealType(mealType)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule: %w", err)
	}
	return items, nil
}
