package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Load() *config {
	// .env is optional; running from plain environment variables is the
	// normal deployment mode.
	_ = godotenv.Load()

	return &config{
		Telegram: TelegramConfig{
			BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
			ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		},
		Database: DatabaseConfig{
			URL:        os.Getenv("DATABASE_URL"),
			SQLitePath: getEnv("SQLITE_PATH", "balance_monitor.db"),
		},
		Auth: AuthConfig{
			DashboardPassword: getEnv("DASHBOARD_PASSWORD", "admin123"),
			SessionSecret:     getEnv("SECRET_KEY", "dev-secret-key-change-in-production"),
		},
		Server: ServerConfig{
			Port:     EnvtoInt(os.Getenv("PORT"), 5000),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// helper env(string) to int
func EnvtoInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// helper env with default
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
