package mealtrack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local mealtrack database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			period, err := service.ActivePeriod(sqldb)
			if err != nil {
				return err
			}
			if period == nil {
				// A fresh install starts with a period spanning one month
				// back to one month ahead so marking works immediately.
				now := time.Now()
				id, err := service.CreatePeriod(sqldb, service.CreatePeriodInput{
					Name:      "Default period",
					StartDate: now.AddDate(0, -1, 0).Format("2006-01-02"),
					EndDate:   now.AddDate(0, 1, 0).Format("2006-01-02"),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created default period #%d\n", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized mealtrack database at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
