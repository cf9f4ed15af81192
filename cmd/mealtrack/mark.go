package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

var (
	markDate    string
	markMeal    string
	markSkipped bool
	markPrice   float64
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Mark a meal as eaten or skipped",
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := parseMealArg(markMeal)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		price := markPrice
		if !cmd.Flags().Changed("price") {
			price = cfg.Prices.DefaultPrice(meal)
		}
		if markSkipped {
			price = 0
		}
		date := dateOrToday(markDate)

		return withDB(func(sqldb *sql.DB) error {
			period, err := requireActivePeriod(sqldb)
			if err != nil {
				return err
			}
			if err := service.UpsertMealEntry(sqldb, service.UpsertMealEntryInput{
				PeriodID: period.ID,
				Date:     date,
				MealType: meal,
				Ate:      !markSkipped,
				Price:    price,
			}); err != nil {
				return err
			}
			if markSkipped {
				fmt.Fprintf(cmd.OutOrStdout(), "Marked %s on %s as skipped\n", meal, date)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Marked %s on %s as eaten (%s)\n", meal, date, formatMoney(price, cfg.Currency))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(markCmd)

	markCmd.Flags().StringVar(&markMeal, "meal", "", "Meal kind (breakfast, lunch, dinner)")
	markCmd.Flags().StringVar(&markDate, "date", "", "Date YYYY-MM-DD (default today)")
	markCmd.Flags().BoolVar(&markSkipped, "skipped", false, "Record the meal as not eaten")
	markCmd.Flags().Float64Var(&markPrice, "price", 0, "Price paid (default: configured price for the meal)")
	_ = markCmd.MarkFlagRequired("meal")
}
