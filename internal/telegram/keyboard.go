package telegram

import (
	"github.com/Vovarama1992/moodflix/internal/movies"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MoodKeyboard — по кнопке на строку, callback data = имя настроения
func MoodKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, m := range movies.Moods() {
		btn := tgbotapi.NewInlineKeyboardButtonData(m.Label(), m.String())
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
