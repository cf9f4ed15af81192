package notify

import (
	"database/sql"
	"time"

	"github.com/Oleh-Rudko/TrackerFood/internal/config"
	"github.com/Oleh-Rudko/TrackerFood/internal/model"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

// ActionID identifies a notification button press.
type ActionID string

const (
	ActionAte            ActionID = "ate"
	ActionNotAte         ActionID = "not_ate"
	ActionAteDefault     ActionID = "ate_default"
	ActionAteAlternative ActionID = "ate_alternative"
	ActionAck            ActionID = "ok"
)

// ResolveAction maps a button press to the (ate, price) pair that should
// be persisted. actionable is false for the reminder acknowledgment and
// for unknown actions (a plain tap); those write nothing.
func ResolveAction(id ActionID, meal model.MealType, payloadPrice float64, prices config.Prices) (ate bool, price float64, actionable bool) {
	switch id {
	case ActionAte:
		if payloadPrice > 0 {
			return true, payloadPrice, true
		}
		return true, prices.DefaultPrice(meal), true
	case ActionAteDefault:
		return true, prices.DinnerDefault, true
	case ActionAteAlternative:
		return true, prices.DinnerAlternative, true
	case ActionNotAte:
		return false, 0, true
	}
	return false, 0, false
}

// RecordAction persists a meal-check answer as a MealEntry for today's
// device-local date against the active period. Non-actionable responses
// and responses with no active period are dropped silently.
func RecordAction(db *sql.DB, prices config.Prices, id ActionID, meal model.MealType, payloadPrice float64) error {
	ate, price, actionable := ResolveAction(id, meal, payloadPrice, prices)
	if !actionable {
		return nil
	}
	period, err := service.ActivePeriod(db)
	if err != nil {
		return err
	}
	if period == nil {
		return nil
	}
	return service.UpsertMealEntry(db, service.UpsertMealEntryInput{
		PeriodID: period.ID,
		Date:     time.Now().Format("2006-01-02"),
		MealType: meal,
		Ate:      ate,
		Price:    price,
	})
}
