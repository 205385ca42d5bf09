package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("APP_PORT", "")
	t.Setenv("API_PREFIX", "")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("MONGO_COLLECTION", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("CACHE_POST_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "/api/v1", cfg.App.APIPrefix)
	assert.Equal(t, "blog", cfg.Mongo.Database)
	assert.Equal(t, "posts", cfg.Mongo.Collection)
	assert.Equal(t, 5*time.Minute, cfg.Cache.PostTTL)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://db:27017")
	t.Setenv("MONGO_DATABASE", "firstDb")
	t.Setenv("REDIS_HOST", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_POST_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "firstDb", cfg.Mongo.Database)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 30*time.Second, cfg.Cache.PostTTL)
	assert.True(t, cfg.CacheEnabled())
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_MAX_RETRIES", "5")
	t.Setenv("DB_RETRY_DELAY", "250ms")

	dbCfg, err := LoadDatabaseConfig(MongoConfig{URI: "mongodb://localhost:27017", Database: "blog", Collection: "posts"})
	require.NoError(t, err)

	assert.Equal(t, 5, dbCfg.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, dbCfg.RetryDelay)
	assert.Equal(t, "posts", dbCfg.Collection)
}

func TestLoadDatabaseConfig_InvalidValues(t *testing.T) {
	t.Setenv("DB_MAX_RETRIES", "0")
	_, err := LoadDatabaseConfig(MongoConfig{URI: "mongodb://localhost:27017"})
	assert.Error(t, err)

	t.Setenv("DB_MAX_RETRIES", "2")
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")
	_, err = LoadDatabaseConfig(MongoConfig{URI: "mongodb://localhost:27017"})
	assert.Error(t, err)
}
