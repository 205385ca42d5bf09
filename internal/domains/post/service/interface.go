package service

import (
	"context"

	"blog-backend/internal/domains/post/model"
)

// =====================================================
// POST SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// ListPosts lists posts page by page (page 1-indexed)
	ListPosts(ctx context.Context, query model.ListPostsQuery) (*model.PostListResponse, error)

	// CreatePost creates new post, published mặc định false
	CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.SinglePostResponse, error)

	// GetPost gets post by hex ID (cache-aside)
	GetPost(ctx context.Context, id string) (*model.SinglePostResponse, error)

	// EditPost partially updates post và refresh updatedAt
	EditPost(ctx context.Context, id string, req model.UpdatePostRequest) (*model.SinglePostResponse, error)

	// DeletePost deletes post by ID
	DeletePost(ctx context.Context, id string) error
}
