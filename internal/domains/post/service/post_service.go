package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/repository"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

type postService struct {
	postRepo repository.PostRepository
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

// NewPostService wires the repository with an optional cache.
// cache nil = NoopCache.
func NewPostService(
	postRepo repository.PostRepository,
	c cache.Cache,
	cacheTTL time.Duration,
) ServiceInterface {
	if c == nil {
		c = cache.NoopCache{}
	}
	return &postService{
		postRepo: postRepo,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      defaultNow,
	}
}

// BSON datetime chỉ giữ millisecond; truncate để response của create
// bằng đúng với response khi đọc lại.
func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// =====================================================
// LIST POSTS
// =====================================================

func (s *postService) ListPosts(ctx context.Context, query model.ListPostsQuery) (*model.PostListResponse, error) {
	query.Normalize()

	posts, err := s.postRepo.List(ctx, int64(query.Limit), query.Skip())
	if err != nil {
		return nil, err
	}

	return model.NewPostListResponse(posts), nil
}

// =====================================================
// CREATE POST
// =====================================================

func (s *postService) CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.SinglePostResponse, error) {
	post, err := s.postRepo.Create(ctx, req.ToEntity(s.now()))
	if err != nil {
		return nil, err
	}

	logger.Info("Post created", map[string]interface{}{
		"post_id": post.ID.Hex(),
		"title":   post.Title,
	})

	return model.NewSinglePostResponse(post), nil
}

// =====================================================
// GET POST
// =====================================================

func (s *postService) GetPost(ctx context.Context, id string) (*model.SinglePostResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.NewInvalidIDError(id)
	}
	cacheKey := model.CacheKey(oid.Hex())

	// Step 1: Check cache
	var entry model.CacheEntry
	found, err := s.cache.Get(ctx, cacheKey, &entry)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Cache get failed")
		found = false
	}
	if found && !entry.IsTombstone() {
		logger.Debug("Post served from cache")
		return &model.SinglePostResponse{
			Status: model.StatusSuccess,
			Data:   model.PostData{Post: *entry.Post},
		}, nil
	}

	// Step 2: Cache miss hoặc tombstone - load from database
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := model.NewSinglePostResponse(post)

	// Step 3: Populate cache bằng SetNX: nếu edit/delete đã ghi tombstone
	// trong lúc đọc DB thì bản vừa đọc có thể đã cũ, bỏ qua.
	if !found {
		view := resp.Data.Post
		if _, err := s.cache.SetNX(ctx, cacheKey, model.CacheEntry{Post: &view}, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("Cache set failed")
		}
	}

	return resp, nil
}

// =====================================================
// EDIT POST
// =====================================================

func (s *postService) EditPost(ctx context.Context, id string, req model.UpdatePostRequest) (*model.SinglePostResponse, error) {
	post, err := s.postRepo.Update(ctx, id, &req, s.now())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, post.ID.Hex())

	return model.NewSinglePostResponse(post), nil
}

// =====================================================
// DELETE POST
// =====================================================

func (s *postService) DeletePost(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Delete thành công nghĩa là id hợp lệ
	oid, _ := primitive.ObjectIDFromHex(id)
	s.invalidate(ctx, oid.Hex())

	logger.Info("Post deleted", map[string]interface{}{"post_id": id})
	return nil
}

// invalidate ghi đè key bằng tombstone ngắn hạn thay vì xóa,
// để GetPost đang đọc song song không populate lại bản cũ.
func (s *postService) invalidate(ctx context.Context, id string) {
	key := model.CacheKey(id)
	if err := s.cache.Set(ctx, key, model.CacheEntry{}, model.CacheTombstoneTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache invalidation failed")
	}
}
