package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
)

// Reminders fire this many minutes before the meal time.
const reminderLeadMinutes = 5

func parseClock(value string) (int, int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	return t.Hour(), t.Minute(), nil
}

// ReminderTime returns the clock time 5 minutes before mealTime. The
// minute rolls under into the previous hour, and hour 0 wraps to 23.
// The wrap stays within a single day: a 00:02 meal yields a 23:57
// reminder that still recurs on the meal's own weekday.
func ReminderTime(mealTime string) (string, error) {
	hour, minute, err := parseClock(mealTime)
	if err != nil {
		return "", err
	}
	minute -= reminderLeadMinutes
	if minute < 0 {
		minute += 60
		hour--
		if hour < 0 {
			hour = 23
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// TimeForMeal looks up the configured time for one (weekday, meal)
// slot. A false result means no reminder is configured for the slot.
func TimeForMeal(items []model.ScheduleItem, weekday int, meal model.MealType) (string, bool) {
	for _, item := range items {
		if item.DayOfWeek == weekday && item.MealType == meal {
			return item.Time, true
		}
	}
	return "", false
}
