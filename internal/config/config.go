package config

import (
	"os"
	"strconv"
	"time"
)

// APIKeyPlaceholder is the default value shipped in example configs; the
// health endpoint reports the key as unconfigured while it is still set.
const APIKeyPlaceholder = "YOUR_API_KEY_HERE"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	JWTExpiration  time.Duration
	WeatherAPIKey  string
	WeatherBaseURL string
	WeatherTimeout time.Duration
	CacheTTL       time.Duration
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		JWTExpiration:  getEnvDuration("JWT_EXPIRATION", 60*time.Minute),
		WeatherAPIKey:  getEnv("WEATHER_API_KEY", APIKeyPlaceholder),
		WeatherBaseURL: getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		WeatherTimeout: getEnvDuration("WEATHER_TIMEOUT", 10*time.Second),
		CacheTTL:       getEnvDuration("CACHE_TTL", 5*time.Minute),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

// WeatherAPIConfigured reports whether a real provider API key is set.
// Used for health reporting only; provider calls are attempted regardless.
func (c *Config) WeatherAPIConfigured() bool {
	return c.WeatherAPIKey != "" && c.WeatherAPIKey != APIKeyPlaceholder
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
