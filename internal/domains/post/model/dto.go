package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreatePostRequest - POST /posts
// Các field server-assigned (id, createdAt, updatedAt) không có ở đây nên bị bỏ qua.
// title/body/author phải có mặt trong body, chuỗi rỗng vẫn hợp lệ.
type CreatePostRequest struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	Author    *string `json:"author"`
	Published *bool   `json:"published,omitempty"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NotNil),
		validation.Field(&r.Body, validation.NotNil),
		validation.Field(&r.Author, validation.NotNil),
	)
}

// ToEntity builds a new document; now is used for both timestamps
func (r *CreatePostRequest) ToEntity(now time.Time) *Post {
	published := false
	if r.Published != nil {
		published = *r.Published
	}
	return &Post{
		Title:     deref(r.Title),
		Body:      deref(r.Body),
		Author:    deref(r.Author),
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// UpdatePostRequest - PATCH /posts/:id
// Field nil = giữ nguyên giá trị đang lưu (partial merge).
type UpdatePostRequest struct {
	Title     *string `json:"title,omitempty"`
	Body      *string `json:"body,omitempty"`
	Author    *string `json:"author,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// SetDocument trả về nội dung của $set: đúng các field non-nil cộng updatedAt.
func (r *UpdatePostRequest) SetDocument(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.Body != nil {
		set["body"] = *r.Body
	}
	if r.Author != nil {
		set["author"] = *r.Author
	}
	if r.Published != nil {
		set["published"] = *r.Published
	}
	return set
}

// ListPostsQuery - GET /posts?limit=&page=
type ListPostsQuery struct {
	Limit int `form:"limit,default=10"`
	Page  int `form:"page,default=1"`
}

// Normalize clamps page về 1 nếu < 1
func (q *ListPostsQuery) Normalize() {
	if q.Page < DefaultPage {
		q.Page = DefaultPage
	}
}

func (q ListPostsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Limit,
			validation.Required.Error("must be at least 1"),
			validation.Min(1),
			validation.Max(MaxLimit),
		),
	)
}

// Skip tính offset cho page 1-indexed
func (q ListPostsQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// PostView là projection read-only của Post, id dạng hex string
type PostView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PostData struct {
	Post PostView `json:"post"`
}

// SinglePostResponse - {status, data:{post}}
type SinglePostResponse struct {
	Status string   `json:"status"`
	Data   PostData `json:"data"`
}

// PostListResponse - {status, results, posts[]}
type PostListResponse struct {
	Status  string     `json:"status"`
	Results int        `json:"results"`
	Posts   []PostView `json:"posts"`
}

func NewSinglePostResponse(post *Post) *SinglePostResponse {
	return &SinglePostResponse{
		Status: StatusSuccess,
		Data:   PostData{Post: post.ToView()},
	}
}

func NewPostListResponse(posts []*Post) *PostListResponse {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, p.ToView())
	}
	return &PostListResponse{
		Status:  StatusSuccess,
		Results: len(views),
		Posts:   views,
	}
}
