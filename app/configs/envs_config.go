package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type ENV struct {
	AppEnv   string
	Port     string
	LogLevel string

	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPath        string
	DBMaxRetries  int
	DBRetryDelay  time.Duration
	DBAutoMigrate bool

	CurrencySymbol string

	RateLimitRPS   float64
	RateLimitBurst int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// LoadEnv reads .env (when present) and the process environment, falling back
// to defaults that run the API against a local SQLite file.
func LoadEnv(log logrus.FieldLogger) ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug("no .env file found, using process environment")
	}

	return ENV{
		AppEnv:   getEnv("APP_ENV", "development"),
		Port:     getEnv("APP_PORT", ":8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "shoppinglist"),
		DBPath:        getEnv("DB_PATH", "app.db"),
		DBMaxRetries:  getEnvInt(log, "DB_MAX_RETRIES", 10),
		DBRetryDelay:  getEnvDuration(log, "DB_RETRY_DELAY", 5*time.Second),
		DBAutoMigrate: getEnvBool(log, "DB_AUTO_MIGRATE", true),

		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "$"),

		RateLimitRPS:   getEnvFloat(log, "RATE_LIMIT_RPS", 0),
		RateLimitBurst: getEnvInt(log, "RATE_LIMIT_BURST", 20),

		ReadTimeout:     getEnvDuration(log, "HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getEnvDuration(log, "HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     getEnvDuration(log, "HTTP_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: getEnvDuration(log, "HTTP_SHUTDOWN_TIMEOUT", 20*time.Second),
	}
}

func (e ENV) IsProduction() bool {
	return e.AppEnv == "production" || e.AppEnv == "prod"
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getEnvInt(log logrus.FieldLogger, key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.WithField("key", key).Warnf("invalid integer %q, using default %d", raw, def)
		return def
	}
	return v
}

func getEnvFloat(log logrus.FieldLogger, key string, def float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.WithField("key", key).Warnf("invalid number %q, using default %v", raw, def)
		return def
	}
	return v
}

func getEnvBool(log logrus.FieldLogger, key string, def bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.WithField("key", key).Warnf("invalid boolean %q, using default %v", raw, def)
		return def
	}
	return v
}

func getEnvDuration(log logrus.FieldLogger, key string, def time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.WithField("key", key).Warnf("invalid duration %q, using default %s", raw, def)
		return def
	}
	return v
}
