package config

import (
	"fmt"
	"strconv"
	"time"

	"blog-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig đọc Mongo config từ environment variables và trả về DBConfig
func LoadDatabaseConfig(mongo MongoConfig) (*database.DBConfig, error) {
	maxPoolSize, err := strconv.ParseUint(getEnv("DB_MAX_POOL_SIZE", "100"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_POOL_SIZE: %w", err)
	}

	minPoolSize, err := strconv.ParseUint(getEnv("DB_MIN_POOL_SIZE", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_POOL_SIZE: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}
	if maxRetries < 1 {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: must be >= 1, got %d", maxRetries)
	}

	// Parse durations
	retryDelay, err := time.ParseDuration(getEnv("DB_RETRY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_RETRY_DELAY: %w", err)
	}

	connectTimeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	return &database.DBConfig{
		URI:            mongo.URI,
		DBName:         mongo.Database,
		Collection:     mongo.Collection,
		AppName:        getEnv("APP_NAME", "Post API"),
		MaxPoolSize:    maxPoolSize,
		MinPoolSize:    minPoolSize,
		MaxRetries:     maxRetries,
		RetryDelay:     retryDelay,
		ConnectTimeout: connectTimeout,
	}, nil
}
