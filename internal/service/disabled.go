package service

import (
	"database/sql"
	"fmt"
)

func IsDayDisabled(db *sql.DB, periodID int64, date string) (bool, error) {
	if !isReady(db) {
		return false, nil
	}
	var count int
	err := db.QueryRow(`SELECT COUNT(1) FROM disabled_days WHERE period_id = ? AND date = ?`, periodID, date).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check disabled day: %w", err)
	}
	return count > 0, nil
}

// DisableDay excludes a date from tracking. Already-disabled dates are
// left untouched.
func DisableDay(db *sql.DB, periodID int64, date string) error {
	if err := requireReady(db); err != nil {
		return err
	}
	parsed, err := parseDate("date", date)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT OR IGNORE INTO disabled_days(period_id, date) VALUES(?, ?)`, periodID, parsed.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("disable day: %w", err)
	}
	return nil
}

// EnableDay removes the disabled marker; a no-op when the date was not
// disabled.
func EnableDay(db *sql.DB, periodID int64, date string) error {
	if err := requireReady(db); err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM disabled_days WHERE period_id = ? AND date = ?`, periodID, date); err != nil {
		return fmt.Errorf("enable day: %w", err)
	}
	return nil
}

// ToggleDisabledDay flips the disabled state of a date and reports the
// new state. Dates outside the period's range cannot be toggled.
func ToggleDisabledDay(db *sql.DB, periodID int64, date string) (bool, error) {
	if err := requireReady(db); err != nil {
		return false, err
	}
	if _, err := parseDate("date", date); err != nil {
		return false, err
	}
	period, err := PeriodByID(db, periodID)
	if err != nil {
		return false, err
	}
	if period == nil {
		return false, fmt.Errorf("period %d not found", periodID)
	}
	if !InPeriodRange(period, date) {
		return false, fmt.Errorf("date %s is outside period range %s..%s", date, period.StartDate, period.EndDate)
	}

	disabled, err := IsDayDisabled(db, periodID, date)
	if err != nil {
		return false, err
	}
	if disabled {
		if err := EnableDay(db, periodID, date); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := DisableDay(db, periodID, date); err != nil {
		return false, err
	}
	return true, nil
}

// DisabledDays lists the disabled dates of a period in ascending order.
func DisabledDays(db *sql.DB, periodID int64) ([]string, error) {
	if !isReady(db) {
		return []string{}, nil
	}
	rows, err := db.Query(`SELECT date FROM disabled_days WHERE period_id = ? ORDER BY date`, periodID)
	if err != nil {
		return nil, fmt.Errorf("list disabled days: %w", err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan disabled day: %w", err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate disabled days: %w", err)
	}
	return dates, nil
}
