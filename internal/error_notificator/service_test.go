package error_notificator

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap/zaptest"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestService_NotifySendsToAdmin(t *testing.T) {
	bot := &fakeSender{}
	svc := NewService(NewInfra(bot, 777), zaptest.NewLogger(t))

	if err := svc.Notify(context.Background(), errors.New("tmdb down"), "mood=happy"); err != nil {
		t.Fatalf("Notify unexpected error: %v", err)
	}

	if len(bot.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(bot.sent))
	}
	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("sent %T, want MessageConfig", bot.sent[0])
	}
	if msg.ChatID != 777 {
		t.Fatalf("ChatID = %d, want 777", msg.ChatID)
	}
	for _, want := range []string{"Incident: ", "mood=happy", "tmdb down"} {
		if !strings.Contains(msg.Text, want) {
			t.Fatalf("text %q does not contain %q", msg.Text, want)
		}
	}
}

func TestService_NotifyDisabled(t *testing.T) {
	bot := &fakeSender{}
	svc := NewService(NewInfra(bot, 0), zaptest.NewLogger(t))

	if err := svc.Notify(context.Background(), errors.New("x"), "y"); err != nil {
		t.Fatalf("Notify unexpected error: %v", err)
	}
	if len(bot.sent) != 0 {
		t.Fatalf("sent %d messages with admin chat disabled", len(bot.sent))
	}

	infra := NewInfra(nil, 777)
	if infra.Enabled() {
		t.Fatalf("infra without bot must be disabled")
	}
	infra.SetBot(bot)
	if !infra.Enabled() {
		t.Fatalf("infra must be enabled after SetBot")
	}
}

func TestService_NotifySendFailure(t *testing.T) {
	bot := &fakeSender{err: errors.New("telegram 403")}
	svc := NewService(NewInfra(bot, 777), zaptest.NewLogger(t))

	if err := svc.Notify(context.Background(), errors.New("x"), "y"); err == nil {
		t.Fatalf("expected send error")
	}
}
