package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Oleh-Rudko/TrackerFood/internal/db"
)

const dateLayout = "2006-01-02"

func parseDate(name, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD", name, value)
	}
	return t, nil
}

func parseClock(name, value string) (int, int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid %s %q, expected HH:MM", name, value)
	}
	return t.Hour(), t.Minute(), nil
}

func validateWeekday(weekday int) error {
	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("weekday must be between 0 (Sunday) and 6 (Saturday), got %d", weekday)
	}
	return nil
}

func validateNonNegativePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("price must be >= 0")
	}
	return nil
}

// requireReady guards mutating operations: before the schema exists they
// fail with a typed error instead of a raw sqlite "no such table".
func requireReady(sqldb *sql.DB) error {
	ready, err := db.Initialized(sqldb)
	if err != nil {
		return err
	}
	if !ready {
		return db.ErrNotInitialized
	}
	return nil
}

// isReady backs the read-side degradation: reads against an
// uninitialized store return empty results rather than errors.
func isReady(sqldb *sql.DB) bool {
	ready, err := db.Initialized(sqldb)
	return err == nil && ready
}
