package mealtrack

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Oleh-Rudko/TrackerFood/internal/report"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

var (
	reportFrom string
	reportTo   string
	reportOut  string
	reportJSON bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a day-by-day report for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			period, err := requireActivePeriod(sqldb)
			if err != nil {
				return err
			}
			from, to := reportFrom, reportTo
			if from == "" {
				from = period.StartDate
			}
			if to == "" {
				to = period.EndDate
			}
			rep, err := service.RangeReport(sqldb, period.ID, from, to)
			if err != nil {
				return err
			}

			if reportOut != "" {
				f, err := os.Create(reportOut)
				if err != nil {
					return fmt.Errorf("create report file: %w", err)
				}
				defer f.Close()
				if strings.HasSuffix(strings.ToLower(reportOut), ".json") {
					enc := json.NewEncoder(f)
					enc.SetIndent("", "  ")
					if err := enc.Encode(rep); err != nil {
						return fmt.Errorf("write report json: %w", err)
					}
				} else {
					if err := report.WritePDF(f, rep, cfg.Currency); err != nil {
						return fmt.Errorf("write report pdf: %w", err)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote report to %s\n", reportOut)
				return nil
			}

			if reportJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tBREAKFAST\tLUNCH\tDINNER\tTOTAL")
			for _, day := range rep.Days {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
					day.Date, day.Breakfast, day.Lunch, day.Dinner,
					formatMoney(day.Total, cfg.Currency))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", formatMoney(rep.Total, cfg.Currency))
			return nil
		})
	},
}

var (
	totalFrom string
	totalTo   string
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Show the spend total for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			period, err := requireActivePeriod(sqldb)
			if err != nil {
				return err
			}
			from, to := totalFrom, totalTo
			if from == "" {
				from = period.StartDate
			}
			if to == "" {
				to = period.EndDate
			}
			total, err := service.TotalForRange(sqldb, period.ID, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total %s - %s: %s\n", from, to, formatMoney(total, cfg.Currency))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd, totalCmd)

	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date YYYY-MM-DD (default period start)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "End date YYYY-MM-DD (default period end)")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Write the report to a file (.pdf or .json)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Print the report as JSON")

	totalCmd.Flags().StringVar(&totalFrom, "from", "", "Start date YYYY-MM-DD (default period start)")
	totalCmd.Flags().StringVar(&totalTo, "to", "", "End date YYYY-MM-DD (default period end)")
}
