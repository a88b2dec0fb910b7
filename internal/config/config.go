package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config — всё, что читается из окружения при старте.
type Config struct {
	BotToken     string
	TMDBAPIKey   string
	OpenAIAPIKey string

	TMDBBaseURL     string
	OpenAIBaseURL   string
	OpenAIModel     string
	AdminChatID     int64
	Port            string
	BotDebug        bool
	HTTPTimeoutSecs int
}

// Load reads configuration from environment variables, applying defaults and validation.
func Load() (Config, error) {
	cfg := Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		TMDBAPIKey:    os.Getenv("TMDB_API_KEY"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		TMDBBaseURL:   getEnv("TMDB_BASE_URL", "https://api.themoviedb.org"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		Port:          getEnv("PORT", "8080"),
	}

	var err error
	if cfg.BotDebug, err = getEnvBool("BOT_DEBUG", false); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeoutSecs, err = getEnvInt("HTTP_TIMEOUT_SECS", 15); err != nil {
		return Config{}, err
	}

	if cfg.BotToken == "" {
		return Config{}, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.TMDBAPIKey == "" {
		return Config{}, fmt.Errorf("TMDB_API_KEY is required")
	}
	if cfg.OpenAIAPIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.HTTPTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("HTTP_TIMEOUT_SECS must be positive")
	}

	if raw := os.Getenv("ADMIN_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("ADMIN_CHAT_ID: %w", err)
		}
		cfg.AdminChatID = id
	}

	return cfg, nil
}

func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSecs) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvInt/getEnvBool: пусто — дефолт, мусор — ошибка старта
func getEnvInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}
