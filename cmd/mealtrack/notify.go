package mealtrack

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Oleh-Rudko/TrackerFood/internal/notify"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Run and inspect the reminder daemon",
}

var notifyRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reminder daemon until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		return withDB(func(sqldb *sql.DB) error {
			bot, err := notify.NewBot(sqldb, cfg, log)
			if err != nil {
				return err
			}
			sched := notify.NewScheduler(sqldb, cfg.Prices, bot, log)
			if err := sched.Sync(); err != nil {
				return err
			}
			sched.Start()
			go bot.Start()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop

			log.Info("shutting down")
			bot.Stop()
			sched.Stop()
			return nil
		})
	},
}

var notifyPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the registrations the daemon would create",
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
			items, err := service.Schedule(sqldb, period.ID)
			if err != nil {
				return err
			}
			plan, err := notify.BuildPlan(items, cfg.Prices)
			if err != nil {
				return err
			}
			if len(plan) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing scheduled")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "KIND\tMEAL\tDAY\tTIME")
			for _, reg := range plan {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%s\n", reg.Kind, reg.Meal, reg.Weekday, reg.Time)
			}
			return nil
		})
	},
}

var notifyTestMeal string

var notifyTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a test meal-check prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := parseMealArg(notifyTestMeal)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		return withDB(func(sqldb *sql.DB) error {
			bot, err := notify.NewBot(sqldb, cfg, log)
			if err != nil {
				return err
			}
			if err := bot.PromptMealCheck(meal, cfg.Prices.DefaultPrice(meal)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent test prompt for %s\n", meal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifyRunCmd, notifyPlanCmd, notifyTestCmd)

	notifyTestCmd.Flags().StringVar(&notifyTestMeal, "meal", "", "Meal kind (breakfast, lunch, dinner)")
	_ = notifyTestCmd.MarkFlagRequired("meal")
}
