package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage the weekly reminder schedule",
}

var (
	scheduleDay  int
	scheduleMeal string
	scheduleTime string
)

var scheduleSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the time of one (weekday, meal) slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := parseMealArg(scheduleMeal)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			period, err := requireActivePeriod(sqldb)
			if err != nil {
				return err
			}
			if err := service.SaveScheduleItem(sqldb, service.SaveScheduleItemInput{
				PeriodID:  period.ID,
				DayOfWeek: scheduleDay,
				MealType:  meal,
				Time:      scheduleTime,
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s on weekday %d at %s\n", meal, scheduleDay, scheduleTime)
			return nil
		})
	},
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			period, err := requireActivePeriod(sqldb)
			if err != nil {
				return err
			}
			slots, err := service.Schedule(sqldb, period.ID)
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Schedule is empty")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DAY\tMEAL\tTIME")
			for _, s := range slots {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", s.DayOfWeek, s.MealType, s.Time)
			}
			return nil
		})
	},
}

var scheduleRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove one (weekday, meal) slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := parseMealArg(scheduleMeal)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			period, err := requireActivePeriod(sqldb)
			if err != nil {
				return err
			}
			if err := service.DeleteScheduleItem(sqldb, period.ID, scheduleDay, meal); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s on weekday %d\n", meal, scheduleDay)
			return nil
		})
	},
}

var scheduleClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every schedule slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			period, err := requireActivePeriod(sqldb)
			if err != nil {
				return err
			}
			if err := service.ClearSchedule(sqldb, period.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared schedule")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleSetCmd, scheduleListCmd, scheduleRemoveCmd, scheduleClearCmd)

	scheduleSetCmd.Flags().IntVar(&scheduleDay, "day", 0, "Weekday 0-6 (0 = Sunday)")
	scheduleSetCmd.Flags().StringVar(&scheduleMeal, "meal", "", "Meal kind (breakfast, lunch, dinner)")
	scheduleSetCmd.Flags().StringVar(&scheduleTime, "time", "", "Time HH:MM")
	_ = scheduleSetCmd.MarkFlagRequired("meal")
	_ = scheduleSetCmd.MarkFlagRequired("time")

	scheduleRemoveCmd.Flags().IntVar(&scheduleDay, "day", 0, "Weekday 0-6 (0 = Sunday)")
	scheduleRemoveCmd.Flags().StringVar(&scheduleMeal, "meal", "", "Meal kind (breakfast, lunch, dinner)")
	_ = scheduleRemoveCmd.MarkFlagRequired("meal")
}
