package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrMissingDatabaseURL được trả về khi DATABASE_URL chưa được set.
// Service không được start nếu thiếu connection string.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL must be set")

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	Redis RedisConfig
	Cache CacheConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	APIPrefix   string // e.g. /api/v1
}

type MongoConfig struct {
	URI        string // DATABASE_URL, required
	Database   string
	Collection string
}

type RedisConfig struct {
	Host     string // empty = cache disabled
	Password string
	DB       int
}

type CacheConfig struct {
	PostTTL time.Duration
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Post API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			APIPrefix:   getEnv("API_PREFIX", "/api/v1"),
		},
		Mongo: MongoConfig{
			URI:        os.Getenv("DATABASE_URL"),
			Database:   getEnv("MONGO_DATABASE", "blog"),
			Collection: getEnv("MONGO_COLLECTION", "posts"),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			PostTTL: getEnvDuration("CACHE_POST_TTL", 5*time.Minute),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return ErrMissingDatabaseURL
	}
	if c.Mongo.Database == "" || c.Mongo.Collection == "" {
		return fmt.Errorf("MONGO_DATABASE and MONGO_COLLECTION must not be empty")
	}
	if c.Cache.PostTTL <= 0 {
		return fmt.Errorf("CACHE_POST_TTL must be positive, got %s", c.Cache.PostTTL)
	}
	return nil
}

// CacheEnabled báo Redis có được cấu hình hay không
func (c *Config) CacheEnabled() bool {
	return c.Redis.Host != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
