package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	APIBaseURL  string // the one tunable the client core depends on
	StoreDriver string // memory | mysql — explicit selection, no env sniffing elsewhere
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration
	DebounceMS  int
	ApproveRate float64
	SeedWorkers int
}

func Load() Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		APIBaseURL:  env("API_BASE_URL", "http://localhost:8080"),
		StoreDriver: env("STORE_DRIVER", "memory"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/stays?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		DebounceMS:  atoi("SEARCH_DEBOUNCE_MS", 300),
		ApproveRate: 0.9,
		SeedWorkers: atoi("SEED_WORKERS", 4),
	}
	if v := os.Getenv("PAYMENT_APPROVE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			c.ApproveRate = f
		}
	}
	if c.StoreDriver != "memory" && c.StoreDriver != "mysql" {
		log.Warn().Str("driver", c.StoreDriver).Msg("unknown STORE_DRIVER, falling back to memory")
		c.StoreDriver = "memory"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
