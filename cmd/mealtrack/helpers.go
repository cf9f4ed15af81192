package mealtrack

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Oleh-Rudko/TrackerFood/internal/app"
	"github.com/Oleh-Rudko/TrackerFood/internal/config"
	"github.com/Oleh-Rudko/TrackerFood/internal/db"
	"github.com/Oleh-Rudko/TrackerFood/internal/model"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := app.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.Load(path)
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// requireActivePeriod resolves the period most commands operate on.
func requireActivePeriod(sqldb *sql.DB) (*model.Period, error) {
	period, err := service.ActivePeriod(sqldb)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, fmt.Errorf("no active period (run 'mealtrack init' or 'mealtrack period create')")
	}
	return period, nil
}

func parseMealArg(value string) (model.MealType, error) {
	return model.ParseMealType(strings.ToLower(strings.TrimSpace(value)))
}

// dateOrToday defaults an empty --date flag to the device-local date.
func dateOrToday(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format("2006-01-02")
	}
	return date
}

func formatMoney(v float64, currency string) string {
	return fmt.Sprintf("%.2f %s", v, currency)
}
