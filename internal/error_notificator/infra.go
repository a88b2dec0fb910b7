package error_notificator

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender — часть *tgbotapi.BotAPI, которая нужна для отправки
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Infra шлёт текст ошибки в админский чат.
type Infra struct {
	bot         Sender
	adminChatID int64
}

func NewInfra(bot Sender, adminChatID int64) *Infra {
	return &Infra{bot: bot, adminChatID: adminChatID}
}

// SetBot — бот создаётся позже инфры, передаём после инициализации
func (i *Infra) SetBot(bot Sender) {
	i.bot = bot
}

func (i *Infra) Enabled() bool {
	return i.bot != nil && i.adminChatID != 0
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	if !i.Enabled() {
		return nil
	}

	text := fmt.Sprintf("❗ Error in moodflix\n\n%s\n\nError: %v", details, err)

	if _, sendErr := i.bot.Send(tgbotapi.NewMessage(i.adminChatID, text)); sendErr != nil {
		return fmt.Errorf("send to admin chat: %w", sendErr)
	}
	return nil
}
