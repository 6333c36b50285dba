package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int

	JWTSecret     string        // JWT署名シークレット
	TokenAudience string        // アクセストークンのaud
	AccessTTL     time.Duration // アクセストークン寿命（既定1h）
	RefreshTTL    time.Duration // リフレッシュトークン寿命（既定2h）

	// 永続化する日時すべてに適用する業務タイムゾーン
	Timezone *time.Location

	// 一覧の並び順。trueなら新しい順（既定）。
	ListNewestFirst bool

	FEURL string // フロントURL（CORS）
}

// Loadは環境変数から設定を組み立てる
func Load() (Config, error) {
	pgPort, err := mustAtoi("POSTGRES_PORT")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     pgPort,

		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenAudience: getenv("TOKEN_AUDIENCE", "store_management_api"),

		AccessTTL:  getenvDuration("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTTL: getenvDuration("REFRESH_TOKEN_TTL", 2*time.Hour),

		ListNewestFirst: getenvBool("LIST_NEWEST_FIRST", true),

		FEURL: os.Getenv("FE_URL"),
	}

	loc, err := time.LoadLocation(getenv("APP_TIMEZONE", "Asia/Ho_Chi_Minh"))
	if err != nil {
		return Config{}, fmt.Errorf("APP_TIMEZONE is invalid: %w", err)
	}
	cfg.Timezone = loc

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.PostgresUser == "" {
		return Config{}, fmt.Errorf("POSTGRES_USER is required")
	}
	if cfg.PostgresPassword == "" {
		return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if cfg.PostgresDB == "" {
		return Config{}, fmt.Errorf("POSTGRES_DB is required")
	}
	if cfg.PostgresHost == "" {
		return Config{}, fmt.Errorf("POSTGRES_HOST is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
