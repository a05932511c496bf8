// Package config loads the runtime settings of the notes service from an
// optional env file overlaid by the process environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Supported values of SESSION_STORE.
const (
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

// Config holds every setting the service reads at startup.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	DBDriver   string
	SQLitePath string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	SessionStore      string
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	SecretKey           string
	SessionTTL          time.Duration
	SessionCookieName   string
	SessionCookieSecure bool
}

// Load reads path with godotenv (a missing file is fine) and then builds a
// Config from the environment, falling back to defaults for unset keys.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		DBDriver:   getEnv("DB_DRIVER", DriverSQLite),
		SQLitePath: getEnv("SQLITE_PATH", "notes.db"),

		PgHost:     getEnv("POSTGRES_HOST", "localhost"),
		PgUser:     getEnv("POSTGRES_USER", "user"),
		PgPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PgDB:       getEnv("POSTGRES_DB", "notes"),

		SessionStore:  getEnv("SESSION_STORE", SessionStoreMemory),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		SecretKey:         getEnv("SECRET_KEY", "your_secret_key"),
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "session"),
	}

	var err error
	if cfg.PgPort, err = getEnvAsInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PgMaxOpenConns, err = getEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PgMaxIdleConns, err = getEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.RedisPort, err = getEnvAsInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvAsInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvAsInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}

	ttl, err := getEnvAsInt("SESSION_TTL_SECOND", 86400)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = time.Duration(ttl) * time.Second

	if cfg.SessionCookieSecure, err = getEnvAsBool("SESSION_COOKIE_SECURE", false); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.SessionStore {
	case SessionStoreRedis, SessionStoreMemory:
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.SessionStore)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL_SECOND must be positive")
	}
	return nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// RedisAddr is the host:port of the Redis session store.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return "file:" + c.SQLitePath + "?_foreign_keys=on"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PgUser, c.PgPassword),
		Host:     fmt.Sprintf("%s:%d", c.PgHost, c.PgPort),
		Path:     c.PgDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
