package service

import (
	"database/sql"
	"fmt"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
)

type ExportPeriod struct {
	ID        int64  `json:"id"`
	Name      string `json:"name,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
}

type ExportScheduleItem struct {
	PeriodID  int64  `json:"period_id"`
	DayOfWeek int    `json:"day_of_week"`
	MealType  string `json:"meal_type"`
	Time      string `json:"time"`
}

type ExportMealEntry struct {
	PeriodID int64   `json:"period_id"`
	Date     string  `json:"date"`
	MealType string  `json:"meal_type"`
	Ate      bool    `json:"ate"`
	Price    float64 `json:"price"`
}

type ExportData struct {
	Periods      []ExportPeriod       `json:"periods"`
	Schedule     []ExportScheduleItem `json:"schedule"`
	Entries      []ExportMealEntry    `json:"meal_entries"`
	DisabledDays []ExportDisabledDay  `json:"disabled_days"`
}

type ExportDisabledDay struct {
	PeriodID int64  `json:"period_id"`
	Date     string `json:"date"`
}

type ImportReport struct {
	Periods      int `json:"periods"`
	Schedule     int `json:"schedule"`
	Entries      int `json:"meal_entries"`
	DisabledDays int `json:"disabled_days"`
}

// ExportDataSnapshot reads every table into a portable structure. Entry
// ids and timestamps are not exported; the (period, date, meal) key is
// what identifies an entry across databases.
func ExportDataSnapshot(db *sql.DB) (*ExportData, error) {
	data := &ExportData{
		Periods:      make([]ExportPeriod, 0),
		Schedule:     make([]ExportScheduleItem, 0),
		Entries:      make([]ExportMealEntry, 0),
		DisabledDays: make([]ExportDisabledDay, 0),
	}

	rows, err := db.Query(`SELECT id, IFNULL(name, ''), start_date, end_date, is_active FROM periods ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("export periods: %w", err)
	}
	for rows.Next() {
		var p ExportPeriod
		var active int
		if err := rows.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &active); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan exported period: %w", err)
		}
		p.IsActive = active != 0
		data.Periods = append(data.Periods, p)
	}
	_ = rows.Close()

	rows, err = db.Query(`SELECT period_id, day_of_week, meal_type, time FROM schedule ORDER BY period_id, day_of_week, meal_type`)
	if err != nil {
		return nil, fmt.Errorf("export schedule: %w", err)
	}
	for rows.Next() {
		var item ExportScheduleItem
		if err := rows.Scan(&item.PeriodID, &item.DayOfWeek, &item.MealType, &item.Time); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan exported schedule item: %w", err)
		}
		data.Schedule = append(data.Schedule, item)
	}
	_ = rows.Close()

	rows, err = db.Query(`SELECT period_id, date, meal_type, ate, price FROM meal_entries ORDER BY period_id, date, meal_type`)
	if err != nil {
		return nil, fmt.Errorf("export meal entries: %w", err)
	}
	for rows.Next() {
		var e ExportMealEntry
		var ate int
		if err := rows.Scan(&e.PeriodID, &e.Date, &e.MealType, &ate, &e.Price); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan exported meal entry: %w", err)
		}
		e.Ate = ate != 0
		data.Entries = append(data.Entries, e)
	}
	_ = rows.Close()

	rows, err = db.Query(`SELECT period_id, date FROM disabled_days ORDER BY period_id, date`)
	if err != nil {
		return nil, fmt.Errorf("export disabled days: %w", err)
	}
	for rows.Next() {
		var d ExportDisabledDay
		if err := rows.Scan(&d.PeriodID, &d.Date); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan exported disabled day: %w", err)
		}
		data.DisabledDays = append(data.DisabledDays, d)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("iterate exported disabled days: %w", err)
	}
	_ = rows.Close()

	return data, nil
}

// ImportDataSnapshot loads an exported snapshot into the store. Periods
// get fresh ids; child rows are remapped. Entries and schedule slots
// land via their natural-key upserts, so importing twice is harmless.
// With replace set, existing data is cleared first.
func ImportDataSnapshot(db *sql.DB, data *ExportData, replace bool) (ImportReport, error) {
	report := ImportReport{}
	if err := requireReady(db); err != nil {
		return report, err
	}
	if data == nil {
		return report, fmt.Errorf("no import data")
	}
	for _, e := range data.Entries {
		if _, err := model.ParseMealType(e.MealType); err != nil {
			return report, fmt.Errorf("import entry for %s: %w", e.Date, err)
		}
	}
	for _, s := range data.Schedule {
		if _, err := model.ParseMealType(s.MealType); err != nil {
			return report, fmt.Errorf("import schedule item: %w", err)
		}
		if err := validateWeekday(s.DayOfWeek); err != nil {
			return report, fmt.Errorf("import schedule item: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return report, fmt.Errorf("begin import tx: %w", err)
	}

	if replace {
		for _, table := range []string{"meal_entries", "schedule", "disabled_days", "periods"} {
			if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
				_ = tx.Rollback()
				return report, fmt.Errorf("clear %s before import: %w", table, err)
			}
		}
	}

	idMap := make(map[int64]int64, len(data.Periods))
	for _, p := range data.Periods {
		if p.IsActive {
			if _, err := tx.Exec(`UPDATE periods SET is_active = 0 WHERE is_active = 1`); err != nil {
				_ = tx.Rollback()
				return report, fmt.Errorf("deactivate periods during import: %w", err)
			}
		}
		res, err := tx.Exec(`
INSERT INTO periods(name, start_date, end_date, is_active)
VALUES(?, ?, ?, ?)
`, nullableName(p.Name), p.StartDate, p.EndDate, boolToInt(p.IsActive))
		if err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("import period %q: %w", p.Name, err)
		}
		newID, err := res.LastInsertId()
		if err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("resolve imported period id: %w", err)
		}
		idMap[p.ID] = newID
		report.Periods++
	}

	resolve := func(oldID int64) (int64, error) {
		newID, ok := idMap[oldID]
		if !ok {
			return 0, fmt.Errorf("row references unknown period %d", oldID)
		}
		return newID, nil
	}

	for _, item := range data.Schedule {
		periodID, err := resolve(item.PeriodID)
		if err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("import schedule item: %w", err)
		}
		if _, err := tx.Exec(`
INSERT INTO schedule(period_id, day_of_week, meal_type, time)
VALUES(?, ?, ?, ?)
ON CONFLICT(period_id, day_of_week, meal_type) DO UPDATE SET time = excluded.time
`, periodID, item.DayOfWeek, item.MealType, item.Time); err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("import schedule item: %w", err)
		}
		report.Schedule++
	}

	for _, e := range data.Entries {
		periodID, err := resolve(e.PeriodID)
		if err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("import meal entry: %w", err)
		}
		if _, err := tx.Exec(`
INSERT INTO meal_entries(period_id, date, meal_type, ate, price)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(period_id, date, meal_type) DO UPDATE SET ate = excluded.ate, price = excluded.price
`, periodID, e.Date, e.MealType, boolToInt(e.Ate), e.Price); err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("import meal entry for %s: %w", e.Date, err)
		}
		report.Entries++
	}

	for _, d := range data.DisabledDays {
		periodID, err := resolve(d.PeriodID)
		if err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("import disabled day: %w", err)
		}
		if _, err := tx.Exec(`
INSERT OR IGNORE INTO disabled_days(period_id, date) VALUES(?, ?)
`, periodID, d.Date); err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("import disabled day %s: %w", d.Date, err)
		}
		report.DisabledDays++
	}

	if err := tx.Commit(); err != nil {
		return report, fmt.Errorf("commit import tx: %w", err)
	}
	return report, nil
}
