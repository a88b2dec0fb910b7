package telegram

import (
	"context"

	"github.com/Vovarama1992/moodflix/internal/movies"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (app *BotApp) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// всегда отвечаем Telegram, иначе у кнопки крутятся часики
	app.request(tgbotapi.NewCallback(cb.ID, ""))

	if cb.Message == nil || cb.Message.Chat == nil {
		app.log.Warn("callback without message", zap.String("data", cb.Data))
		return
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	app.log.Info("callback",
		zap.Int64("chat_id", chatID),
		zap.String("data", cb.Data),
	)

	mood, err := movies.ParseMood(cb.Data)
	if err != nil {
		app.fail(ctx, err, "unknown callback data %q, chat=%d", cb.Data, chatID)
		app.editSorry(ctx, chatID, messageID)
		return
	}

	rec, err := app.MovieService.Recommend(ctx, mood)
	if err != nil {
		app.fail(ctx, err, "recommendations failed, mood=%s chat=%d", mood, chatID)
		app.editSorry(ctx, chatID, messageID)
		return
	}

	// меню заменяется списком фильмов
	edit := tgbotapi.NewEditMessageText(chatID, messageID, rec.Text())
	edit.ParseMode = tgbotapi.ModeHTML
	if err := app.request(edit); err != nil {
		app.fail(ctx, err, "menu edit failed, mood=%s chat=%d message=%d", mood, chatID, messageID)
		app.editSorry(ctx, chatID, messageID)
	}
}

// editSorry — заменяет меню извинением; если и это не прошло (сообщение
// слишком старое), остаётся только уведомление админу
func (app *BotApp) editSorry(ctx context.Context, chatID int64, messageID int) {
	if err := app.request(tgbotapi.NewEditMessageText(chatID, messageID, MsgSorry)); err != nil {
		app.fail(ctx, err, "apology edit failed, chat=%d message=%d", chatID, messageID)
	}
}
