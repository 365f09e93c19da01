package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Security SecurityConfig
	Planner  PlannerConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	BodyLimit        string
	CORSAllowOrigins []string
}

// CacheConfig controls the derived-result cache. An empty RedisAddr falls
// back to the in-process cache.
type CacheConfig struct {
	Enabled           bool
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	TTL               time.Duration
	MemoryMaxEntries  int
	OperationTimeout  time.Duration
	BreakerMaxFailure int
	BreakerTimeout    time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// PlannerConfig holds the defaults applied when a transfer-plan request
// omits a parameter, and the per-request snapshot size limit
type PlannerConfig struct {
	DefaultFeePct      decimal.Decimal
	DefaultIntroMonths decimal.Decimal
	MaxAccounts        int
	DashboardTopN      int
}

// Load reads an optional .env file and then the process environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, using process environment", "error", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			BodyLimit:       getEnv("SERVER_BODY_LIMIT", "1M"),
		},
		Cache: CacheConfig{
			Enabled:           getBoolEnv("CACHE_ENABLED", true),
			RedisAddr:         getEnv("REDIS_ADDR", ""),
			RedisPassword:     getEnv("REDIS_PASSWORD", ""),
			RedisDB:           getIntEnv("REDIS_DB", 0),
			TTL:               getDurationEnv("CACHE_TTL", 5*time.Minute),
			MemoryMaxEntries:  getIntEnv("CACHE_MEMORY_MAX_ENTRIES", 1024),
			OperationTimeout:  getDurationEnv("CACHE_OPERATION_TIMEOUT", 200*time.Millisecond),
			BreakerMaxFailure: getIntEnv("CACHE_BREAKER_MAX_FAILURES", 3),
			BreakerTimeout:    getDurationEnv("CACHE_BREAKER_TIMEOUT", 30*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getFloatEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Planner: PlannerConfig{
			DefaultFeePct:      getDecimalEnv("PLANNER_DEFAULT_FEE_PCT", decimal.NewFromInt(3)),
			DefaultIntroMonths: getDecimalEnv("PLANNER_DEFAULT_INTRO_MONTHS", decimal.NewFromInt(12)),
			MaxAccounts:        getIntEnv("PLANNER_MAX_ACCOUNTS", 200),
			DashboardTopN:      getIntEnv("DASHBOARD_TOP_N", 6),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Address is the host:port the server listens on
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// UsesRedis reports whether the cache should talk to Redis
func (c *CacheConfig) UsesRedis() bool {
	return c.Enabled && c.RedisAddr != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if decVal, err := decimal.NewFromString(strings.TrimSpace(value)); err == nil {
			return decVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	slog.Info("CORS allowed origins configured", "origins", origins)
	return origins
}
