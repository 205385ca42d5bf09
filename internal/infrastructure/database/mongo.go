package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrConnection đánh dấu lỗi không thể kết nối tới MongoDB lúc startup.
// Caller dùng errors.Is(err, ErrConnection) để phân biệt với lỗi config.
var ErrConnection = errors.New("database connection error")

// DBConfig chứa tất cả các thông tin cấu hình để kết nối MongoDB
type DBConfig struct {
	URI        string // Connection string, không hardcode credentials
	DBName     string
	Collection string
	AppName    string

	// Connection Pool Configuration
	// Driver tự quản lý pool, struct chỉ truyền giới hạn xuống
	MaxPoolSize uint64
	MinPoolSize uint64

	// Retry Configuration (chỉ áp dụng lúc startup)
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// MongoDB là wrapper quản lý client và lifecycle của database.
// *mongo.Client an toàn cho nhiều goroutine, cả app dùng chung 1 instance.
type MongoDB struct {
	Client *mongo.Client
	Config *DBConfig
}

// NewMongoDB tạo instance mới của MongoDB
func NewMongoDB(config *DBConfig) *MongoDB {
	return &MongoDB{
		Config: config,
		Client: nil, // Client sẽ được set khi Connect() được gọi
	}
}

// clientOptions build options từ URI và pool config
func (db *MongoDB) clientOptions() *options.ClientOptions {
	opts := options.Client().
		ApplyURI(db.Config.URI).
		SetConnectTimeout(db.Config.ConnectTimeout).
		SetServerSelectionTimeout(db.Config.ConnectTimeout)

	if db.Config.AppName != "" {
		opts.SetAppName(db.Config.AppName)
	}
	if db.Config.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(db.Config.MaxPoolSize)
	}
	opts.SetMinPoolSize(db.Config.MinPoolSize)

	return opts
}

// connectWithRetry thực hiện retry logic với exponential backoff
// Formula: delay = base_delay * (2 ^ (attempt - 1))
func (db *MongoDB) connectWithRetry(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	var lastErr error

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		log.Info().
			Int("attempt", attempt).
			Int("max_retries", db.Config.MaxRetries).
			Msg("[DATABASE] Connection attempt")

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		client, err := mongo.Connect(connectCtx, opts)
		if err == nil {
			// mongo.Connect không dial ngay, phải ping để chắc chắn server reachable
			err = client.Ping(connectCtx, readpref.Primary())
			if err != nil {
				_ = client.Disconnect(context.Background())
			}
		}
		cancel()

		if err == nil {
			log.Info().Int("attempt", attempt).Msg("[DATABASE] Successfully connected")
			return client, nil
		}

		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("[DATABASE] Attempt failed")

		if attempt < db.Config.MaxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info().Dur("delay", delay).Msg("[DATABASE] Retrying")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", db.Config.MaxRetries, lastErr)
}

// Connect là entry point chính để establish database connection
func (db *MongoDB) Connect(ctx context.Context) error {
	log.Info().Str("database", db.Config.DBName).Msg("[DATABASE] Initializing MongoDB connection...")

	if db.Config.URI == "" {
		return fmt.Errorf("%w: empty connection URI", ErrConnection)
	}
	if db.Config.MaxRetries < 1 {
		db.Config.MaxRetries = 1
	}

	client, err := db.connectWithRetry(ctx, db.clientOptions())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	db.Client = client

	log.Info().Msg("[DATABASE] MongoDB connection established successfully")
	return nil
}

// Collection trả về handle tới collection đã cấu hình
func (db *MongoDB) Collection() *mongo.Collection {
	return db.Client.Database(db.Config.DBName).Collection(db.Config.Collection)
}

// EnsureIndexes tạo unique index trên title. Idempotent: MongoDB bỏ qua
// nếu index cùng keys/options đã tồn tại. Gọi 1 lần lúc startup.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	if db.Client == nil {
		return fmt.Errorf("database client is not initialized")
	}

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	name, err := db.Collection().Indexes().CreateOne(ctx, index)
	if err != nil {
		return fmt.Errorf("create title index: %w", err)
	}

	log.Info().Str("index", name).Msg("[DATABASE] Index ensured")
	return nil
}

// Close đóng client và toàn bộ connections trong pool.
// Safe to call multiple times.
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}

	err := db.Client.Disconnect(ctx)
	db.Client = nil
	if err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}

	log.Info().Msg("[DATABASE] MongoDB connection closed")
	return nil
}
