package service

import (
	"database/sql"
	"fmt"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
)

// GetDayMeals assembles the display view of one day: the up-to-three
// entries split by meal kind, the disabled flag, and the day total.
// Entries marked not eaten contribute nothing to the total.
func GetDayMeals(db *sql.DB, periodID int64, date string) (*model.DayMeals, error) {
	entries, err := EntriesForDay(db, periodID, date)
	if err != nil {
		return nil, err
	}
	disabled, err := IsDayDisabled(db, periodID, date)
	if err != nil {
		return nil, err
	}

	day := &model.DayMeals{Date: date, IsDisabled: disabled}
	for i := range entries {
		e := &entries[i]
		switch e.MealType {
		case model.MealBreakfast:
			day.Breakfast = e
		case model.MealLunch:
			day.Lunch = e
		case model.MealDinner:
			day.Dinner = e
		}
		if e.Ate {
			day.Total += e.Price
		}
	}
	return day, nil
}

// TotalForRange sums the price of eaten meals between from and to
// inclusive. It agrees with summing GetDayMeals totals over the range.
func TotalForRange(db *sql.DB, periodID int64, from, to string) (float64, error) {
	if _, err := parseDate("from date", from); err != nil {
		return 0, err
	}
	if _, err := parseDate("to date", to); err != nil {
		return 0, err
	}
	if !isReady(db) {
		return 0, nil
	}
	var total sql.NullFloat64
	err := db.QueryRow(`
SELECT SUM(price)
FROM meal_entries
WHERE period_id = ? AND date >= ? AND date <= ? AND ate = 1
`, periodID, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum range total: %w", err)
	}
	return total.Float64, nil
}
