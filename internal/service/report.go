package service

import (
	"database/sql"
	"fmt"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
)

// DayReport is one report row: the tri-state status of every meal kind
// for a calendar date plus the day's total.
type DayReport struct {
	Date      string           `json:"date"`
	Breakfast model.MealStatus `json:"breakfast"`
	Lunch     model.MealStatus `json:"lunch"`
	Dinner    model.MealStatus `json:"dinner"`
	Total     float64          `json:"total"`
}

type Report struct {
	FromDate string      `json:"from_date"`
	ToDate   string      `json:"to_date"`
	Days     []DayReport `json:"days"`
	Total    float64     `json:"total"`
}

// StatusFor returns the row's status for one meal kind.
func (r DayReport) StatusFor(meal model.MealType) model.MealStatus {
	switch meal {
	case model.MealBreakfast:
		return r.Breakfast
	case model.MealLunch:
		return r.Lunch
	case model.MealDinner:
		return r.Dinner
	}
	return model.StatusUnmarked
}

// RangeReport builds one row per calendar date in [from, to] inclusive.
// Dates without entries yield all-unmarked rows with a zero total.
func RangeReport(db *sql.DB, periodID int64, from, to string) (*Report, error) {
	start, err := parseDate("from date", from)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("to date", to)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, fmt.Errorf("from date %s must not be after to date %s", from, to)
	}

	entries, err := EntriesInRange(db, periodID, from, to)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string][]model.MealEntry)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	report := &Report{
		FromDate: start.Format(dateLayout),
		ToDate:   end.Format(dateLayout),
		Days:     make([]DayReport, 0, int(end.Sub(start).Hours()/24)+1),
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		row := DayReport{Date: date}
		for _, e := range byDate[date] {
			status := model.StatusDidNotEat
			if e.Ate {
				status = model.StatusAte
				row.Total += e.Price
			}
			switch e.MealType {
			case model.MealBreakfast:
				row.Breakfast = status
			case model.MealLunch:
				row.Lunch = status
			case model.MealDinner:
				row.Dinner = status
			}
		}
		report.Total += row.Total
		report.Days = append(report.Days, row)
	}
	return report, nil
}
