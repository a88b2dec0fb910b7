package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

var errEmptyReply = errors.New("responder returned empty text")

func (app *BotApp) handleText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	app.log.Info("free text", zap.Int64("chat_id", chatID), zap.Int("len", len(msg.Text)))

	// индикатор "печатает…", пока ждём модель
	app.request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))

	reply := app.Responder.Respond(ctx, msg.Text)

	switch {
	case reply.Failed():
		app.fail(ctx, reply.Err, "free text reply failed, chat=%d text=%q", chatID, msg.Text)
		app.send(tgbotapi.NewMessage(chatID, MsgSorry))

	case strings.TrimSpace(reply.Text) == "":
		// Telegram не принимает пустые сообщения
		app.fail(ctx, errEmptyReply, "free text reply empty, chat=%d", chatID)
		app.send(tgbotapi.NewMessage(chatID, MsgSorry))

	default:
		// например, ответ длиннее 4096 символов
		if err := app.send(tgbotapi.NewMessage(chatID, reply.Text)); err != nil {
			app.fail(ctx, err, "free text reply not delivered, chat=%d len=%d", chatID, len(reply.Text))
			app.send(tgbotapi.NewMessage(chatID, MsgSorry))
		}
	}
}
