package repository

import (
	"context"
	"time"

	"blog-backend/internal/domains/post/model"
)

// =====================================================
// POST REPOSITORY INTERFACE
// =====================================================

// PostRepository là owner duy nhất của collection posts.
// Mọi lỗi trả về đều là *model.PostError.
type PostRepository interface {
	// List trả về tối đa limit posts sau khi bỏ qua skip, theo thứ tự tự nhiên của store
	List(ctx context.Context, limit, skip int64) ([]*model.Post, error)

	// Create inserts post then re-reads it by the generated _id
	// Errors: ErrDuplicateTitle, ErrDatabaseQuery, ErrPostNotFound
	Create(ctx context.Context, post *model.Post) (*model.Post, error)

	// GetByID parses id and fetches the document
	// Errors: ErrInvalidID, ErrPostNotFound
	GetByID(ctx context.Context, id string) (*model.Post, error)

	// Update $set các field có trong req cộng updatedAt=now, trả về document sau update
	// Errors: ErrInvalidID, ErrPostNotFound, ErrDuplicateTitle
	Update(ctx context.Context, id string, req *model.UpdatePostRequest, now time.Time) (*model.Post, error)

	// Delete removes by id
	// Errors: ErrInvalidID, ErrPostNotFound
	Delete(ctx context.Context, id string) error
}
