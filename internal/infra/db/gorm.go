package db

import (
	"fmt"

	"app/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect は設定に従ってDBに接続して *gorm.DB を返す。
// デモのデフォルトはsqliteファイル。DATABASE_URLがあればpostgres。
func Connect(cfg config.Config) (*gorm.DB, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	case config.DriverSQLite:
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
}
