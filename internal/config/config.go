package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// 保存先の種類
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	StorageDriver string // カート保存先（sqlite/postgres/redis）
	SQLitePath    string // sqliteのファイルパス
	DatabaseURL   string // postgres接続文字列（DATABASE_URL）
	RedisAddr     string // redisアドレス
	RedisDB       int    // redisのDB番号

	NotifyTTL time.Duration // トーストの表示時間

	GoEnv string // dev/prod
}

// Loadは環境変数から設定を組み立てる。デモ用途なので未設定はデフォルトで埋める。
func Load() (Config, error) {
	redisDB, err := atoiOr("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}

	ttlSec, err := atoiOr("NOTIFY_TTL_SECONDS", 3)
	if err != nil {
		return Config{}, err
	}
	if ttlSec <= 0 {
		return Config{}, fmt.Errorf("NOTIFY_TTL_SECONDS must be > 0")
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		StorageDriver: getenv("STORAGE_DRIVER", DriverSQLite),
		SQLitePath:    getenv("SQLITE_PATH", "storefront.db"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       redisDB,

		NotifyTTL: time.Duration(ttlSec) * time.Second,

		GoEnv: getenv("GO_ENV", "dev"),
	}

	//保存先チェック
	switch cfg.StorageDriver {
	case DriverSQLite, DriverPostgres, DriverRedis:
	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER must be sqlite, postgres or redis")
	}
	if cfg.StorageDriver == DriverPostgres && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required for postgres")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
