package notify

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Oleh-Rudko/TrackerFood/internal/config"
	"github.com/Oleh-Rudko/TrackerFood/internal/model"
)

type Kind int

const (
	// KindMealCheck asks whether the meal was eaten, with action buttons
	// that write the answer back to the store.
	KindMealCheck Kind = iota
	// KindReminder is the heads-up 5 minutes before the meal; it never
	// writes anything.
	KindReminder
)

func (k Kind) String() string {
	if k == KindReminder {
		return "reminder"
	}
	return "meal_check"
}

// Registration is one recurring notification slot owned by the
// scheduler: a weekday, a clock time, and the payload delivered.
type Registration struct {
	ID      string
	Kind    Kind
	Meal    model.MealType
	Weekday int
	Time    string
	Price   float64
}

// CronSpec renders the registration as a standard 5-field cron line.
func (r Registration) CronSpec() (string, error) {
	hour, minute, err := parseClock(r.Time)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * %d", minute, hour, r.Weekday), nil
}

// BuildPlan expands every schedule slot into two registrations: the
// meal check at the stored time and the reminder 5 minutes earlier.
// Both recur on the slot's weekday.
func BuildPlan(items []model.ScheduleItem, prices config.Prices) ([]Registration, error) {
	plan := make([]Registration, 0, len(items)*2)
	for _, item := range items {
		if _, _, err := parseClock(item.Time); err != nil {
			return nil, fmt.Errorf("schedule slot (weekday %d, %s): %w", item.DayOfWeek, item.MealType, err)
		}
		reminderAt, err := ReminderTime(item.Time)
		if err != nil {
			return nil, err
		}
		plan = append(plan,
			Registration{
				ID:      uuid.New().String(),
				Kind:    KindMealCheck,
				Meal:    item.MealType,
				Weekday: item.DayOfWeek,
				Time:    item.Time,
				Price:   prices.DefaultPrice(item.MealType),
			},
			Registration{
				ID:      uuid.New().String(),
				Kind:    KindReminder,
				Meal:    item.MealType,
				Weekday: item.DayOfWeek,
				Time:    reminderAt,
			},
		)
	}
	return plan, nil
}
