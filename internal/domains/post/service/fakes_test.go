package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/post/model"
)

// memRepo là PostRepository in-memory giữ thứ tự insert như natural order
type memRepo struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	posts map[primitive.ObjectID]model.Post
	calls int
}

func newMemRepo() *memRepo {
	return &memRepo{posts: make(map[primitive.ObjectID]model.Post)}
}

func (r *memRepo) List(_ context.Context, limit, skip int64) ([]*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	out := []*model.Post{}
	for i := skip; i < int64(len(r.order)) && int64(len(out)) < limit; i++ {
		p := r.posts[r.order[i]]
		out = append(out, &p)
	}
	return out, nil
}

func (r *memRepo) Create(_ context.Context, post *model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	for _, p := range r.posts {
		if p.Title == post.Title {
			return nil, model.NewDuplicateTitleError(errors.New("E11000 duplicate key error"))
		}
	}
	stored := *post
	stored.ID = primitive.NewObjectID()
	r.posts[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return &stored, nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.NewInvalidIDError(id)
	}
	p, ok := r.posts[oid]
	if !ok {
		return nil, model.NewNotFoundError(id)
	}
	return &p, nil
}

func (r *memRepo) Update(_ context.Context, id string, req *model.UpdatePostRequest, now time.Time) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.NewInvalidIDError(id)
	}
	p, ok := r.posts[oid]
	if !ok {
		return nil, model.NewNotFoundError(id)
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Body != nil {
		p.Body = *req.Body
	}
	if req.Author != nil {
		p.Author = *req.Author
	}
	if req.Published != nil {
		p.Published = *req.Published
	}
	p.UpdatedAt = now
	r.posts[oid] = p
	return &p, nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.NewInvalidIDError(id)
	}
	if _, ok := r.posts[oid]; !ok {
		return model.NewNotFoundError(id)
	}
	delete(r.posts, oid)
	for i, o := range r.order {
		if o == oid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// memCache giả lập Redis: lưu JSON để round-trip giống thật
type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	failing bool
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

var errCacheDown = errors.New("cache down")

func (c *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return false, errCacheDown
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errCacheDown
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return false, errCacheDown
	}
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	c.data[key] = raw
	return true, nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

func (c *memCache) isTombstone(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false
	}
	var entry model.CacheEntry
	return json.Unmarshal(raw, &entry) == nil && entry.IsTombstone()
}

// gatedRepo chặn GetByID sau khi đã đọc xong, để chen edit/delete vào
// giữa lúc đọc DB và lúc populate cache
type gatedRepo struct {
	*memRepo
	loaded  chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedRepo(inner *memRepo) *gatedRepo {
	return &gatedRepo{
		memRepo: inner,
		loaded:  make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (r *gatedRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	post, err := r.memRepo.GetByID(ctx, id)
	r.once.Do(func() {
		close(r.loaded)
		<-r.release
	})
	return post, err
}

// mockRepo dùng cho các case cần ép lỗi từ storage
type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) List(ctx context.Context, limit, skip int64) ([]*model.Post, error) {
	args := m.Called(ctx, limit, skip)
	posts, _ := args.Get(0).([]*model.Post)
	return posts, args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	args := m.Called(ctx, post)
	p, _ := args.Get(0).(*model.Post)
	return p, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Post)
	return p, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, id string, req *model.UpdatePostRequest, now time.Time) (*model.Post, error) {
	args := m.Called(ctx, id, req, now)
	p, _ := args.Get(0).(*model.Post)
	return p, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
