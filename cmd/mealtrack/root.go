package mealtrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "mealtrack",
	Short: "mealtrack tracks meals, prices, and reminders from your terminal",
	Long:  "mealtrack is a local-first meal tracking CLI with billing periods, per-meal prices, disabled days, range reports, and Telegram meal reminders.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config YAML")
}
