package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/moodflix/internal/ai"
	"github.com/Vovarama1992/moodflix/internal/config"
	"github.com/Vovarama1992/moodflix/internal/delivery"
	"github.com/Vovarama1992/moodflix/internal/error_notificator"
	"github.com/Vovarama1992/moodflix/internal/movies"
	"github.com/Vovarama1992/moodflix/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// CLIENTS (TMDB / OpenAI)
	// =========================================================================

	tmdbClient := movies.NewTMDBClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey, cfg.HTTPTimeout())
	openAIClient := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	errInfra := error_notificator.NewInfra(nil, cfg.AdminChatID)
	errService := error_notificator.NewService(errInfra, baseLogger.Named("errors"))

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	movieService := movies.NewService(tmdbClient)
	aiService := ai.NewAiService(openAIClient, baseLogger.Named("ai"))

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}
	bot.Debug = cfg.BotDebug

	errInfra.SetBot(bot)

	botApp := telegram.NewBotApp(
		bot,
		movieService,
		aiService,
		errService,
		baseLogger.Named("telegram"),
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	movieHandler := delivery.NewMovieHandler(movieService, zl)
	r := delivery.NewRouter(movieHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// =========================================================================
	// START
	// =========================================================================

	go func() {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "listening at " + srv.Addr,
			Service: "moodflix",
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "bot ready: @" + bot.Self.UserName,
		Service: "moodflix",
	})

	botApp.Poll(ctx, bot)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
}
