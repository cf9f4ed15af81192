package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
)

// Prices are the default meal prices offered when the user marks a meal
// without an explicit price. Dinner has two fixed price options.
type Prices struct {
	Breakfast         float64 `yaml:"breakfast"`
	Lunch             float64 `yaml:"lunch"`
	DinnerDefault     float64 `yaml:"dinner_default"`
	DinnerAlternative float64 `yaml:"dinner_alternative"`
}

type Telegram struct {
	Token  string `yaml:"token"`
	ChatID int64  `yaml:"chat_id"`
}

type Config struct {
	Currency string   `yaml:"currency"`
	Prices   Prices   `yaml:"prices"`
	Telegram Telegram `yaml:"telegram"`
}

func Default() *Config {
	return &Config{
		Currency: "zł",
		Prices: Prices{
			Breakfast:         5,
			Lunch:             10,
			DinnerDefault:     7,
			DinnerAlternative: 10,
		},
	}
}

// Load builds the effective configuration: compiled defaults, overridden
// by the YAML file at path (if present), overridden by environment
// variables. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	// .env is optional; system environment still applies without it.
	_ = godotenv.Load()

	if token, ok := os.LookupEnv("TG_TOKEN"); ok {
		cfg.Telegram.Token = token
	}
	if raw, ok := os.LookupEnv("TG_CHAT_ID"); ok {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TG_CHAT_ID %q: %w", raw, err)
		}
		cfg.Telegram.ChatID = chatID
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for name, price := range map[string]float64{
		"breakfast":          c.Prices.Breakfast,
		"lunch":              c.Prices.Lunch,
		"dinner_default":     c.Prices.DinnerDefault,
		"dinner_alternative": c.Prices.DinnerAlternative,
	} {
		if price < 0 {
			return fmt.Errorf("price %s must be >= 0", name)
		}
	}
	return nil
}

// DefaultPrice returns the standard price for a meal kind; dinner uses
// its default option.
func (p Prices) DefaultPrice(meal model.MealType) float64 {
	switch meal {
	case model.MealBreakfast:
		return p.Breakfast
	case model.MealLunch:
		return p.Lunch
	case model.MealDinner:
		return p.DinnerDefault
	}
	return 0
}
