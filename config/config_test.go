package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "DASHBOARD_PASSWORD",
		"DATABASE_URL", "SECRET_KEY", "PORT", "LOG_LEVEL", "SQLITE_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Empty(t, cfg.Telegram.BotToken)
	require.Empty(t, cfg.Database.URL)
	require.Equal(t, "balance_monitor.db", cfg.Database.SQLitePath)
	require.Equal(t, "admin123", cfg.Auth.DashboardPassword)
	require.Equal(t, 5000, cfg.Server.Port)
	require.Equal(t, "info", cfg.Server.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("DATABASE_URL", "postgres://u:p@host/db")
	t.Setenv("DASHBOARD_PASSWORD", "hunter2")
	t.Setenv("PORT", "8080")

	cfg := Load()
	require.Equal(t, "tok", cfg.Telegram.BotToken)
	require.Equal(t, "42", cfg.Telegram.ChatID)
	require.Equal(t, "postgres://u:p@host/db", cfg.Database.URL)
	require.Equal(t, "hunter2", cfg.Auth.DashboardPassword)
	require.Equal(t, 8080, cfg.Server.Port)
}

func TestEnvtoInt(t *testing.T) {
	require.Equal(t, 9000, EnvtoInt("9000", 5000))
	require.Equal(t, 5000, EnvtoInt("", 5000))
	require.Equal(t, 5000, EnvtoInt("not-a-number", 5000))
}
