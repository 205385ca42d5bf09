package model

import "time"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"

	// List pagination
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultPage  = 1

	CacheKeyPrefix = "post:"

	// Tombstone giữ key sau edit/delete để read đang chạy không ghi lại bản cũ.
	// Phải dài hơn thời gian tối đa của một lần đọc DB.
	CacheTombstoneTTL = 30 * time.Second
)

// CacheKey trả về Redis key cho một PostView
func CacheKey(id string) string {
	return CacheKeyPrefix + id
}

// CacheEntry là value lưu dưới CacheKey. Post nil = tombstone.
type CacheEntry struct {
	Post *PostView `json:"post,omitempty"`
}

func (e CacheEntry) IsTombstone() bool {
	return e.Post == nil
}
