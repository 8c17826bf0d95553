package storage

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DialectPostgres = "PostgreSQL"
	DialectSQLite   = "SQLite"
)

// Open connects to the backing store. A DATABASE_URL containing "postgres"
// selects the networked PostgreSQL dialect; anything else falls back to the
// embedded SQLite file. The dialect is chosen exactly once here; callers
// never branch on it.
func Open(databaseURL, sqlitePath string) (*gorm.DB, string, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	if databaseURL != "" && strings.Contains(databaseURL, "postgres") {
		// Some hosting providers hand out postgres:// connection strings.
		dsn := strings.Replace(databaseURL, "postgres://", "postgresql://", 1)
		db, err := gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			return nil, "", fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return db, DialectPostgres, nil
	}

	db, err := gorm.Open(sqlite.Open(sqlitePath), gormCfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return db, DialectSQLite, nil
}
