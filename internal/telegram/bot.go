package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	MsgWelcome        = "Welcome! Type /recommend to get movie recommendations based on your mood."
	MsgBye            = "Bye! Have a great day."
	MsgMoodPrompt     = "How are you feeling today?"
	MsgUnknownCommand = "Sorry, I didn't understand that command."
	MsgSorry          = "Sorry, something went wrong. Please try again later."
)

// dispatchUpdate — ровно одна ветка на апдейт
func (app *BotApp) dispatchUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			app.log.Error("panic in update handler",
				zap.Int("update_id", update.UpdateID),
				zap.Any("panic", r),
			)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		app.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		app.handleCommand(ctx, update.Message)
	case update.Message != nil && update.Message.Text != "":
		app.handleText(ctx, update.Message)
	default:
		app.log.Debug("update skipped", zap.Int("update_id", update.UpdateID))
	}
}

func (app *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	cmd := msg.Command()

	app.log.Info("command",
		zap.Int64("chat_id", chatID),
		zap.String("command", cmd),
	)

	switch cmd {
	case "start":
		app.send(tgbotapi.NewMessage(chatID, MsgWelcome))
	case "bye":
		app.send(tgbotapi.NewMessage(chatID, MsgBye))
	case "recommend":
		out := tgbotapi.NewMessage(chatID, MsgMoodPrompt)
		out.ReplyMarkup = MoodKeyboard()
		app.send(out)
	default:
		app.send(tgbotapi.NewMessage(chatID, MsgUnknownCommand))
	}
}

func (app *BotApp) send(c tgbotapi.Chattable) error {
	if _, err := app.bot.Send(c); err != nil {
		app.log.Warn("telegram send failed", zap.Error(err))
		return err
	}
	return nil
}

func (app *BotApp) request(c tgbotapi.Chattable) error {
	if _, err := app.bot.Request(c); err != nil {
		app.log.Warn("telegram request failed", zap.Error(err))
		return err
	}
	return nil
}

// fail — лог + уведомление админу; пользователю причина не показывается
func (app *BotApp) fail(ctx context.Context, err error, format string, args ...any) {
	details := fmt.Sprintf(format, args...)
	if app.ErrorNotify == nil {
		app.log.Error(details, zap.Error(err))
		return
	}
	if nErr := app.ErrorNotify.Notify(ctx, err, details); nErr != nil {
		app.log.Warn("error notify failed", zap.Error(nErr))
	}
}
