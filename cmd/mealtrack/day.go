package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show and manage single days",
}

var dayDate string

var dayShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the meals of one day",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		date := dateOrToday(dayDate)
		return withDB(func(sqldb *sql.DB) error {
			period, err := requireActivePeriod(sqldb)
			if err != nil {
				return err
			}
			day, err := service.GetDayMeals(sqldb, period.ID, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", day.Date)
			if day.IsDisabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Day is disabled (not tracked)")
			}
			printMealLine(cmd, "Breakfast", day.Breakfast, cfg.Currency)
			printMealLine(cmd, "Lunch", day.Lunch, cfg.Currency)
			printMealLine(cmd, "Dinner", day.Dinner, cfg.Currency)
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", formatMoney(day.Total, cfg.Currency))
			return nil
		})
	},
}

func printMealLine(cmd *cobra.Command, label string, entry *model.MealEntry, currency string) {
	switch entry.Status() {
	case model.StatusAte:
		fmt.Fprintf(cmd.OutOrStdout(), "%s:\tate\t%s\n", label, formatMoney(entry.Price, currency))
	case model.StatusDidNotEat:
		fmt.Fprintf(cmd.OutOrStdout(), "%s:\tskipped\n", label)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%s:\tnot marked\n", label)
	}
}

var dayDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Exclude a day from tracking",
	RunE:  runSetDisabled(true),
}

var dayEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Re-include a disabled day",
	RunE:  runSetDisabled(false),
}

func runSetDisabled(disable bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		date := dateOrToday(dayDate)
		return withDB(func(sqldb *sql.DB) error {
			period, err := requireActivePeriod(sqldb)
			if err != nil {
				return err
			}
			if disable {
				if err := service.DisableDay(sqldb, period.ID, date); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Disabled %s\n", date)
			} else {
				if err := service.EnableDay(sqldb, period.ID, date); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Enabled %s\n", date)
			}
			return nil
		})
	}
}

var dayToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle a day's disabled state",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := dateOrToday(dayDate)
		return withDB(func(sqldb *sql.DB) error {
			period, err := requireActivePeriod(sqldb)
			if err != nil {
				return err
			}
			disabled, err := service.ToggleDisabledDay(sqldb, period.ID, date)
			if err != nil {
				return err
			}
			if disabled {
				fmt.Fprintf(cmd.OutOrStdout(), "Disabled %s\n", date)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Enabled %s\n", date)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.AddCommand(dayShowCmd, dayDisableCmd, dayEnableCmd, dayToggleCmd)

	dayCmd.PersistentFlags().StringVar(&dayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
