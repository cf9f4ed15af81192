package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
)

type UpsertMealEntryInput struct {
	PeriodID int64
	Date     string
	MealType model.MealType
	Ate      bool
	Price    float64
}

// UpsertMealEntry inserts or overwrites the single entry for
// (period, date, meal). An existing row keeps its id and created_at;
// only ate and price are replaced.
func UpsertMealEntry(db *sql.DB, in UpsertMealEntryInput) error {
	if err := requireReady(db); err != nil {
		return err
	}
	if in.PeriodID <= 0 {
		return fmt.Errorf("period id must be > 0")
	}
	if _, err := model.ParseMealType(string(in.MealType)); err != nil {
		return err
	}
	date, err := parseDate("date", in.Date)
	if err != nil {
		return err
	}
	if err := validateNonNegativePrice(in.Price); err != nil {
		return err
	}

	_, err = db.Exec(`
INSERT INTO meal_entries(period_id, date, meal_type, ate, price)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(period_id, date, meal_type) DO UPDATE SET
  ate = excluded.ate,
  price = excluded.price
`, in.PeriodID, date.Format(dateLayout), string(in.MealType), boolToInt(in.Ate), in.Price)
	if err != nil {
		return fmt.Errorf("upsert meal entry: %w", err)
	}
	return nil
}

// MealEntryFor returns the entry for one (period, date, meal) key, or nil.
func MealEntryFor(db *sql.DB, periodID int64, date string, meal model.MealType) (*model.MealEntry, error) {
	if !isReady(db) {
		return nil, nil
	}
	row := db.QueryRow(`
SELECT id, period_id, date, meal_type, ate, price, created_at
FROM meal_entries
WHERE period_id = ? AND date = ? AND meal_type = ?
`, periodID, date, string(meal))
	entry, err := scanMealEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query meal entry: %w", err)
	}
	return entry, nil
}

// EntriesForDay returns the 0-3 entries recorded for one date.
func EntriesForDay(db *sql.DB, periodID int64, date string) ([]model.MealEntry, error) {
	return queryEntries(db, `
SELECT id, period_id, date, meal_type, ate, price, created_at
FROM meal_entries
WHERE period_id = ? AND date = ?
`, periodID, date)
}

// EntriesInRange returns entries between from and to inclusive, ordered
// by date then meal type.
func EntriesInRange(db *sql.DB, periodID int64, from, to string) ([]model.MealEntry, error) {
	if _, err := parseDate("from date", from); err != nil {
		return nil, err
	}
	if _, err := parseDate("to date", to); err != nil {
		return nil, err
	}
	return queryEntries(db, `
SELECT id, period_id, date, meal_type, ate, price, created_at
FROM meal_entries
WHERE period_id = ? AND date >= ? AND date <= ?
ORDER BY date, meal_type
`, periodID, from, to)
}

func queryEntries(db *sql.DB, query string, args ...any) ([]model.MealEntry, error) {
	if !isReady(db) {
		return []model.MealEntry{}, nil
	}
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query meal entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.MealEntry, 0)
	for rows.Next() {
		entry, err := scanMealEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan meal entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal entries: %w", err)
	}
	return entries, nil
}

func scanMealEntry(scan func(...any) error) (*model.MealEntry, error) {
	var e model.MealEntry
	var mealType string
	var ate int
	var createdAtRaw string
	if err := scan(&e.ID, &e.PeriodID, &e.Date, &mealType, &ate, &e.Price, &createdAtRaw); err != nil {
		return nil, err
	}
	e.MealType = model.MealType(mealType)
	e.Ate = ate != 0
	if t, err := time.Parse("2006-01-02 15:04:05", createdAtRaw); err == nil {
		e.CreatedAt = t
	}
	return &e, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
