package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
)

type CreatePeriodInput struct {
	Name      string
	StartDate string
	EndDate   string
}

type UpdatePeriodInput struct {
	Name      *string
	StartDate *string
	EndDate   *string
	IsActive  *bool
}

// ActivePeriod returns the single active period, or nil when none exists.
func ActivePeriod(db *sql.DB) (*model.Period, error) {
	if !isReady(db) {
		return nil, nil
	}
	var p model.Period
	var name sql.NullString
	err := db.QueryRow(`
SELECT id, name, start_date, end_date, is_active
FROM periods
WHERE is_active = 1
LIMIT 1
`).Scan(&p.ID, &name, &p.StartDate, &p.EndDate, &p.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query active period: %w", err)
	}
	p.Name = name.String
	return &p, nil
}

func PeriodByID(db *sql.DB, id int64) (*model.Period, error) {
	if !isReady(db) {
		return nil, nil
	}
	var p model.Period
	var name sql.NullString
	err := db.QueryRow(`
SELECT id, name, start_date, end_date, is_active
FROM periods
WHERE id = ?
`, id).Scan(&p.ID, &name, &p.StartDate, &p.EndDate, &p.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query period %d: %w", id, err)
	}
	p.Name = name.String
	return &p, nil
}

// CreatePeriod inserts a new active period, deactivating any previously
// active one in the same transaction.
func CreatePeriod(db *sql.DB, in CreatePeriodInput) (int64, error) {
	if err := requireReady(db); err != nil {
		return 0, err
	}
	start, err := parseDate("start date", in.StartDate)
	if err != nil {
		return 0, err
	}
	end, err := parseDate("end date", in.EndDate)
	if err != nil {
		return 0, err
	}
	if start.After(end) {
		return 0, fmt.Errorf("start date %s must not be after end date %s", in.StartDate, in.EndDate)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin create period tx: %w", err)
	}
	if _, err := tx.Exec(`UPDATE periods SET is_active = 0 WHERE is_active = 1`); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("deactivate previous period: %w", err)
	}
	res, err := tx.Exec(`
INSERT INTO periods(name, start_date, end_date, is_active)
VALUES(?, ?, ?, 1)
`, nullableName(in.Name), start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert period: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("resolve inserted period id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create period tx: %w", err)
	}
	return id, nil
}

// UpdatePeriod applies only the supplied fields. Supplying no fields is a
// no-op. An unknown id is an error. Activating a period deactivates the
// others so at most one stays active.
func UpdatePeriod(db *sql.DB, id int64, in UpdatePeriodInput) error {
	if err := requireReady(db); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("period id must be > 0")
	}

	fields := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if in.Name != nil {
		fields = append(fields, "name = ?")
		args = append(args, nullableName(*in.Name))
	}
	if in.StartDate != nil {
		start, err := parseDate("start date", *in.StartDate)
		if err != nil {
			return err
		}
		fields = append(fields, "start_date = ?")
		args = append(args, start.Format(dateLayout))
	}
	if in.EndDate != nil {
		end, err := parseDate("end date", *in.EndDate)
		if err != nil {
			return err
		}
		fields = append(fields, "end_date = ?")
		args = append(args, end.Format(dateLayout))
	}
	if in.IsActive != nil {
		fields = append(fields, "is_active = ?")
		if *in.IsActive {
			args = append(args, 1)
		} else {
			args = append(args, 0)
		}
	}
	if len(fields) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin update period tx: %w", err)
	}
	if in.IsActive != nil && *in.IsActive {
		if _, err := tx.Exec(`UPDATE periods SET is_active = 0 WHERE is_active = 1 AND id != ?`, id); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("deactivate other periods: %w", err)
		}
	}
	args = append(args, id)
	res, err := tx.Exec(`UPDATE periods SET `+strings.Join(fields, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update period %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("read rows affected for period %d: %w", id, err)
	}
	if affected == 0 {
		_ = tx.Rollback()
		return fmt.Errorf("period %d not found", id)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update period tx: %w", err)
	}
	return nil
}

// InPeriodRange reports whether date falls inside the period's inclusive
// date range. YYYY-MM-DD strings compare correctly as text.
func InPeriodRange(p *model.Period, date string) bool {
	if p == nil {
		return false
	}
	return date >= p.StartDate && date <= p.EndDate
}

func nullableName(name string) any {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return name
}
