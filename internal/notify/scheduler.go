package notify

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Oleh-Rudko/TrackerFood/internal/config"
	"github.com/Oleh-Rudko/TrackerFood/internal/model"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

// Delivery sends the actual notifications. The Telegram bot implements
// it; tests use a recording stub.
type Delivery interface {
	PromptMealCheck(meal model.MealType, price float64) error
	RemindUpcoming(meal model.MealType) error
}

// Scheduler keeps the cron runner's registrations in step with the
// schedule table.
type Scheduler struct {
	db       *sql.DB
	prices   config.Prices
	delivery Delivery
	log      *zap.Logger
	cron     *cron.Cron

	mu      sync.Mutex
	entries map[string]cron.EntryID
	plan    []Registration
}

func NewScheduler(db *sql.DB, prices config.Prices, delivery Delivery, log *zap.Logger) *Scheduler {
	return &Scheduler{
		db:       db,
		prices:   prices,
		delivery: delivery,
		log:      log,
		cron:     cron.New(),
		entries:  make(map[string]cron.EntryID),
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Sync replaces every registration with the current schedule: cancel
// all, rebuild the plan from the store, register again. Safe to call on
// every schedule edit and on startup; calling it twice in a row leaves
// an equivalent set of registrations.
func (s *Scheduler) Sync() error {
	period, err := service.ActivePeriod(s.db)
	if err != nil {
		return err
	}

	var plan []Registration
	if period != nil {
		items, err := service.Schedule(s.db, period.ID)
		if err != nil {
			return err
		}
		plan, err = BuildPlan(items, s.prices)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entryID := range s.entries {
		s.cron.Remove(entryID)
		delete(s.entries, id)
	}
	s.plan = nil

	for _, reg := range plan {
		spec, err := reg.CronSpec()
		if err != nil {
			return err
		}
		entryID, err := s.cron.AddFunc(spec, s.jobFor(reg))
		if err != nil {
			return fmt.Errorf("register %s for %s at %s: %w", reg.Kind, reg.Meal, reg.Time, err)
		}
		s.entries[reg.ID] = entryID
		s.plan = append(s.plan, reg)
	}

	s.log.Info("notification sync complete",
		zap.Int("registrations", len(plan)),
		zap.Bool("active_period", period != nil))
	return nil
}

// Scheduled returns a copy of the current registrations.
func (s *Scheduler) Scheduled() []Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Registration, len(s.plan))
	copy(out, s.plan)
	return out
}

func (s *Scheduler) jobFor(reg Registration) func() {
	return func() {
		var err error
		switch reg.Kind {
		case KindReminder:
			err = s.delivery.RemindUpcoming(reg.Meal)
		default:
			err = s.delivery.PromptMealCheck(reg.Meal, reg.Price)
		}
		if err != nil {
			s.log.Error("notification delivery failed",
				zap.String("kind", reg.Kind.String()),
				zap.String("meal", string(reg.Meal)),
				zap.Error(err))
		}
	}
}
