package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Manage billing periods",
}

var (
	periodName  string
	periodStart string
	periodEnd   string
)

var periodCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new period and make it active",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreatePeriod(sqldb, service.CreatePeriodInput{
				Name:      periodName,
				StartDate: periodStart,
				EndDate:   periodEnd,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created period #%d (%s - %s)\n", id, periodStart, periodEnd)
			return nil
		})
	},
}

var periodShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active period",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			period, err := service.ActivePeriod(sqldb)
			if err != nil {
				return err
			}
			if period == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No active period")
				return nil
			}
			name := period.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Period #%d: %s\nRange: %s - %s\n", period.ID, name, period.StartDate, period.EndDate)
			return nil
		})
	},
}

var (
	updatePeriodID int64
	updateName     string
	updateStart    string
	updateEnd      string
	updateActivate bool
)

var periodUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update fields of an existing period",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.UpdatePeriodInput{}
		if cmd.Flags().Changed("name") {
			in.Name = &updateName
		}
		if cmd.Flags().Changed("start") {
			in.StartDate = &updateStart
		}
		if cmd.Flags().Changed("end") {
			in.EndDate = &updateEnd
		}
		if cmd.Flags().Changed("activate") {
			in.IsActive = &updateActivate
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpdatePeriod(sqldb, updatePeriodID, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated period #%d\n", updatePeriodID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(periodCmd)
	periodCmd.AddCommand(periodCreateCmd, periodShowCmd, periodUpdateCmd)

	periodCreateCmd.Flags().StringVar(&periodName, "name", "", "Period name")
	periodCreateCmd.Flags().StringVar(&periodStart, "start", "", "Start date YYYY-MM-DD")
	periodCreateCmd.Flags().StringVar(&periodEnd, "end", "", "End date YYYY-MM-DD")
	_ = periodCreateCmd.MarkFlagRequired("start")
	_ = periodCreateCmd.MarkFlagRequired("end")

	periodUpdateCmd.Flags().Int64Var(&updatePeriodID, "id", 0, "Period id")
	periodUpdateCmd.Flags().StringVar(&updateName, "name", "", "New name")
	periodUpdateCmd.Flags().StringVar(&updateStart, "start", "", "New start date YYYY-MM-DD")
	periodUpdateCmd.Flags().StringVar(&updateEnd, "end", "", "New end date YYYY-MM-DD")
	periodUpdateCmd.Flags().BoolVar(&updateActivate, "activate", false, "Make this period the active one")
	_ = periodUpdateCmd.MarkFlagRequired("id")
}
