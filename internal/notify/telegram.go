package notify

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"

	"github.com/Oleh-Rudko/TrackerFood/internal/config"
	"github.com/Oleh-Rudko/TrackerFood/internal/model"
)

var mealNames = map[model.MealType]string{
	model.MealBreakfast: "Сніданок",
	model.MealLunch:     "Обід",
	model.MealDinner:    "Вечеря",
}

const (
	btnMealAte      = "meal_ate"
	btnMealNotAte   = "meal_not_ate"
	btnDinnerAteDef = "dinner_ate_default"
	btnDinnerAteAlt = "dinner_ate_alternative"
	btnReminderAck  = "reminder_ok"
)

// Bot delivers reminders and meal-check prompts over Telegram and
// writes button answers back to the store.
type Bot struct {
	bot *tele.Bot
	db  *sql.DB
	cfg *config.Config
	log *zap.Logger
}

func NewBot(db *sql.DB, cfg *config.Config, log *zap.Logger) (*Bot, error) {
	if strings.TrimSpace(cfg.Telegram.Token) == "" {
		return nil, fmt.Errorf("telegram token is not configured (set TG_TOKEN or telegram.token)")
	}
	if cfg.Telegram.ChatID == 0 {
		return nil, fmt.Errorf("telegram chat id is not configured (set TG_CHAT_ID or telegram.chat_id)")
	}

	pref := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	bot := &Bot{bot: b, db: db, cfg: cfg, log: log}

	b.Handle(&tele.Btn{Unique: btnMealAte}, bot.mealAnswer(ActionAte))
	b.Handle(&tele.Btn{Unique: btnMealNotAte}, bot.mealAnswer(ActionNotAte))
	b.Handle(&tele.Btn{Unique: btnDinnerAteDef}, bot.mealAnswer(ActionAteDefault))
	b.Handle(&tele.Btn{Unique: btnDinnerAteAlt}, bot.mealAnswer(ActionAteAlternative))
	b.Handle(&tele.Btn{Unique: btnReminderAck}, func(c tele.Context) error {
		// Acknowledgment only; nothing is written.
		_ = c.Edit("🔔 Ок")
		return c.Respond(&tele.CallbackResponse{})
	})

	return bot, nil
}

// Start begins long-polling for button presses. It blocks.
func (b *Bot) Start() {
	b.log.Info("telegram bot started")
	b.bot.Start()
}

func (b *Bot) Stop() {
	b.bot.Stop()
}

// PromptMealCheck sends the "did you eat?" question. Breakfast and
// lunch get two buttons; dinner gets the three-way price choice.
func (b *Bot) PromptMealCheck(meal model.MealType, price float64) error {
	markup := &tele.ReplyMarkup{}
	payload := string(meal) + "|" + strconv.FormatFloat(price, 'f', -1, 64)

	if meal == model.MealDinner {
		btnDef := markup.Data(fmt.Sprintf("✅ %s %s", formatPrice(b.cfg.Prices.DinnerDefault), b.cfg.Currency), btnDinnerAteDef, payload)
		btnAlt := markup.Data(fmt.Sprintf("✅ %s %s", formatPrice(b.cfg.Prices.DinnerAlternative), b.cfg.Currency), btnDinnerAteAlt, payload)
		btnNo := markup.Data("❌ Не їв", btnMealNotAte, payload)
		markup.Inline(markup.Row(btnDef, btnAlt), markup.Row(btnNo))
	} else {
		btnYes := markup.Data("✅ Їв", btnMealAte, payload)
		btnNo := markup.Data("❌ Не їв", btnMealNotAte, payload)
		markup.Inline(markup.Row(btnYes, btnNo))
	}

	_, err := b.bot.Send(&tele.User{ID: b.cfg.Telegram.ChatID}, fmt.Sprintf("🍽️ %s?", mealNames[meal]), markup)
	if err != nil {
		return fmt.Errorf("send meal check for %s: %w", meal, err)
	}
	return nil
}

// RemindUpcoming sends the 5-minutes-before heads-up with a single
// acknowledgment button.
func (b *Bot) RemindUpcoming(meal model.MealType) error {
	markup := &tele.ReplyMarkup{}
	btnOK := markup.Data("Ок", btnReminderAck, string(meal))
	markup.Inline(markup.Row(btnOK))

	msg := fmt.Sprintf("🔔 Скоро %s! Через 5 хвилин", strings.ToLower(mealNames[meal]))
	if _, err := b.bot.Send(&tele.User{ID: b.cfg.Telegram.ChatID}, msg, markup); err != nil {
		return fmt.Errorf("send reminder for %s: %w", meal, err)
	}
	return nil
}

func (b *Bot) mealAnswer(action ActionID) func(c tele.Context) error {
	return func(c tele.Context) error {
		meal, payloadPrice, err := parsePayload(c.Data())
		if err != nil {
			b.log.Warn("bad callback payload", zap.String("data", c.Data()), zap.Error(err))
			return c.Respond(&tele.CallbackResponse{Text: "Помилка даних"})
		}
		if err := RecordAction(b.db, b.cfg.Prices, action, meal, payloadPrice); err != nil {
			b.log.Error("record meal action failed",
				zap.String("action", string(action)),
				zap.String("meal", string(meal)),
				zap.Error(err))
			return c.Respond(&tele.CallbackResponse{Text: "Не вдалося зберегти"})
		}
		_ = c.Edit("✅ Збережено!")
		return c.Respond(&tele.CallbackResponse{Text: "Готово"})
	}
}

func parsePayload(data string) (model.MealType, float64, error) {
	parts := strings.SplitN(data, "|", 2)
	meal, err := model.ParseMealType(parts[0])
	if err != nil {
		return "", 0, err
	}
	price := 0.0
	if len(parts) == 2 && parts[1] != "" {
		price, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return "", 0, fmt.Errorf("invalid payload price %q: %w", parts[1], err)
		}
	}
	return meal, price, nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
