package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port string
	// Price feed
	PricesURL    string
	IconBasePath string
	FetchTimeout time.Duration
	// Swap confirmation
	ConfirmDelay time.Duration
	WorkerPoll   time.Duration
	// Redis (idempotency)
	IdempotencyBackend string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RedisTTL           time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func durMS(key string, defMS int) time.Duration {
	return time.Duration(atoiDef(getEnv(key, strconv.Itoa(defMS)), defMS)) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:                getEnv("ENV", "local"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Port:               getEnv("PORT", "8080"),
		PricesURL:          getEnv("PRICES_URL", "https://interview.switcheo.com/prices.json"),
		IconBasePath:       getEnv("ICON_BASE_PATH", "/icons"),
		FetchTimeout:       durMS("FETCH_TIMEOUT_MS", 4000),
		ConfirmDelay:       durMS("SWAP_CONFIRM_DELAY_MS", 2000),
		WorkerPoll:         durMS("WORKER_POLL_MS", 250),
		IdempotencyBackend: getEnv("IDEMPOTENCY_BACKEND", "none"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            atoiDef(getEnv("REDIS_DB", "0"), 0),
		RedisTTL:           durMS("IDEMPOTENCY_TTL_MS", 86400000),
	}
}
