package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb, doctorFix)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Extra active periods: %d\n", report.ExtraActivePeriods)
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan meal entries: %d\n", report.OrphanEntries)
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan schedule items: %d\n", report.OrphanScheduleItems)
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan disabled days: %d\n", report.OrphanDisabledDays)
			fmt.Fprintf(cmd.OutOrStdout(), "Out-of-range disabled days: %d\n", report.OutOfRangeDisabled)
			if doctorFix {
				fmt.Fprintf(cmd.OutOrStdout(), "Fixed active periods: %d\n", report.FixedActivePeriods)
				fmt.Fprintf(cmd.OutOrStdout(), "Removed orphan rows: %d\n", report.RemovedOrphanRows)
				fmt.Fprintf(cmd.OutOrStdout(), "Removed out-of-range rows: %d\n", report.RemovedOutOfRangeRow)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(sqldb, false)
				if err != nil {
					return err
				}
			}
			if report.ExtraActivePeriods > 0 || report.OrphanEntries > 0 ||
				report.OrphanScheduleItems > 0 || report.OrphanDisabledDays > 0 ||
				report.OutOfRangeDisabled > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
