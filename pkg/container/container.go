package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"

	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application.
// Mọi field là singleton dùng chung cho mọi request.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.MongoDB
	Cache  cache.Cache

	// Repository → Service → Handler
	PostRepo    postRepo.PostRepository
	PostService postService.ServiceInterface
	PostHandler *postHandler.PostHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph.
// Thứ tự: Config → Database (+ indexes) → Cache → Repository → Service → Handler.
// Lỗi kết nối database wrap database.ErrConnection, caller phải dừng process.
func NewContainer(ctx context.Context) (*Container, error) {
	log.Info().Msg("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("✅ Config loaded")

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewMongoDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Unique index trên title chỉ tạo 1 lần lúc startup
	if err := db.EnsureIndexes(connectCtx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	log.Info().Msg("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	c.Cache = c.initCache(ctx)

	// ========================================
	// STEP 4-6: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

// initCache: Redis failure không critical - log warning và chạy với NoopCache
func (c *Container) initCache(ctx context.Context) cache.Cache {
	if !c.Config.CacheEnabled() {
		log.Info().Msg("Redis not configured, post cache disabled")
		return cache.NoopCache{}
	}

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisCache.Connect(pingCtx); err != nil {
		log.Warn().Err(err).Msg("⚠️  Redis connection failed (non-critical), post cache disabled")
		_ = redisCache.Close()
		return cache.NoopCache{}
	}

	log.Info().Msg("✅ Redis connected")
	return redisCache
}

func (c *Container) initRepositories() {
	c.PostRepo = postRepo.NewMongoRepository(c.DB.Collection())
}

func (c *Container) initServices() {
	c.PostService = postService.NewPostService(
		c.PostRepo,
		c.Cache,
		c.Config.Cache.PostTTL,
	)
}

func (c *Container) initHandlers() {
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up container resources...")

	if c.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := c.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close MongoDB")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close Redis")
		} else {
			log.Info().Msg("✅ Redis connections closed")
		}
	}

	log.Info().Msg("✅ Container cleanup completed")
}
