package shared

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	NoroffBase     string
	NoroffKey      string
	NoroffRPS      int
	CacheTTL       time.Duration
	WarmWorkers    int
	WarmPages      int
	WarmPageSize   int
	SessionHash    string
	SessionBlock   string
	RequestTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first; real environment variables win over it.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg(".env not loaded")
	}

	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		MySQLDSN:       env("MYSQL_DSN", ""),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPass:      env("REDIS_PASSWORD", ""),
		NoroffBase:     env("NOROFF_BASE_URL", "https://v2.api.noroff.dev"),
		NoroffKey:      env("NOROFF_API_KEY", ""),
		NoroffRPS:      atoi("NOROFF_RPS", 5),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		WarmWorkers:    atoi("WARM_WORKERS", 8),
		WarmPages:      atoi("WARM_PAGES", 3),
		WarmPageSize:   atoi("WARM_PAGE_SIZE", 100),
		SessionHash:    env("SESSION_HASH_KEY", ""),
		SessionBlock:   env("SESSION_BLOCK_KEY", ""),
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
	}
	if c.NoroffKey == "" {
		log.Warn().Msg("NOROFF_API_KEY is empty")
	}
	if c.SessionHash == "" {
		log.Warn().Msg("SESSION_HASH_KEY is empty; sessions will not survive a restart")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
