package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// MealType is one of the three tracked meals.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealTypes lists all meal kinds in day order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner}

func ParseMealType(value string) (MealType, error) {
	switch MealType(value) {
	case MealBreakfast, MealLunch, MealDinner:
		return MealType(value), nil
	}
	return "", fmt.Errorf("invalid meal type %q (expected breakfast, lunch, or dinner)", value)
}

// MealStatus distinguishes "marked as not eaten" from "never marked".
type MealStatus int

const (
	StatusUnmarked MealStatus = iota
	StatusAte
	StatusDidNotEat
)

func (s MealStatus) String() string {
	switch s {
	case StatusAte:
		return "ate"
	case StatusDidNotEat:
		return "not_ate"
	default:
		return "not_marked"
	}
}

// MarshalJSON keeps the three states distinct in exports: "ate",
// "not_ate", and "not_marked" never collapse into one another.
func (s MealStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *MealStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw {
	case "ate":
		*s = StatusAte
	case "not_ate":
		*s = StatusDidNotEat
	case "not_marked":
		*s = StatusUnmarked
	default:
		return fmt.Errorf("invalid meal status %q", raw)
	}
	return nil
}

type Period struct {
	ID        int64
	Name      string
	StartDate string
	EndDate   string
	IsActive  bool
}

type MealEntry struct {
	ID        int64
	PeriodID  int64
	Date      string
	MealType  MealType
	Ate       bool
	Price     float64
	CreatedAt time.Time
}

// Status reports the tri-state status of a possibly absent entry.
func (e *MealEntry) Status() MealStatus {
	if e == nil {
		return StatusUnmarked
	}
	if e.Ate {
		return StatusAte
	}
	return StatusDidNotEat
}

type ScheduleItem struct {
	ID        int64
	PeriodID  int64
	DayOfWeek int
	MealType  MealType
	Time      string
}

type DisabledDay struct {
	ID       int64
	PeriodID int64
	Date     string
}

// DayMeals is the display-ready view of one tracked day.
type DayMeals struct {
	Date       string
	Breakfast  *MealEntry
	Lunch      *MealEntry
	Dinner     *MealEntry
	IsDisabled bool
	Total      float64
}
