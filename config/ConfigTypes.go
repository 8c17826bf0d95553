package config

type config struct {
	Telegram TelegramConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Server   ServerConfig
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
}

type DatabaseConfig struct {
	// URL selects the networked PostgreSQL backend when set; otherwise the
	// embedded SQLite file at SQLitePath is used.
	URL        string
	SQLitePath string
}

type AuthConfig struct {
	DashboardPassword string
	SessionSecret     string
}

type ServerConfig struct {
	Port     int
	LogLevel string
}
