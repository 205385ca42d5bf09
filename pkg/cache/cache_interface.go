package cache

import (
	"context"
	"time"
)

// Cache interface định nghĩa contract cho cache layer
// Cho phép swap implementation (Redis, in-memory cho test)
type Cache interface {
	// Get lấy data từ cache và unmarshal vào dest
	// Returns: (found bool, error)
	// - found = true: cache hit, data đã unmarshal vào dest
	// - found = false: cache miss, dest không bị thay đổi
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set lưu data vào cache với TTL, ghi đè giá trị cũ
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// SetNX chỉ lưu khi key chưa tồn tại
	// Returns: stored = false nếu key đã có giá trị
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
}

// NoopCache dùng khi không có Redis: mọi Get đều miss, các lệnh ghi không làm gì
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (NoopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (NoopCache) SetNX(context.Context, string, interface{}, time.Duration) (bool, error) {
	return false, nil
}
