package telegram

import (
	"context"
	"sync"

	"github.com/Vovarama1992/moodflix/internal/ai"
	"github.com/Vovarama1992/moodflix/internal/error_notificator"
	"github.com/Vovarama1992/moodflix/internal/movies"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender — то, что нужно от *tgbotapi.BotAPI
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type BotApp struct {
	MovieService movies.Service
	Responder    ai.Responder
	ErrorNotify  error_notificator.Notificator

	bot Sender
	log *zap.Logger
}

func NewBotApp(
	bot Sender,
	movieSvc movies.Service,
	responder ai.Responder,
	errNotify error_notificator.Notificator,
	log *zap.Logger,
) *BotApp {
	if log == nil {
		log = zap.NewNop()
	}
	return &BotApp{
		MovieService: movieSvc,
		Responder:    responder,
		ErrorNotify:  errNotify,
		bot:          bot,
		log:          log,
	}
}

// Poll — long polling до отмены ctx.
func (app *BotApp) Poll(ctx context.Context, bot *tgbotapi.BotAPI) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := bot.GetUpdatesChan(u)
	app.log.Info("bot loop started", zap.String("username", bot.Self.UserName))

	go func() {
		<-ctx.Done()
		bot.StopReceivingUpdates()
	}()

	app.Run(ctx, updates)
}

// Run обрабатывает каждый апдейт в своей горутине и ждёт их завершения
// перед выходом. Общего изменяемого состояния между апдейтами нет.
func (app *BotApp) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				app.dispatchUpdate(ctx, update)
			}()
		}
	}
}
