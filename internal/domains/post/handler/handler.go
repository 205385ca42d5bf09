package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/service"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
)

const healthMessage = "RESTful API in Go using Gin Framework and MongoDB"

// =====================================================
// POST HANDLER
// =====================================================

type PostHandler struct {
	postService service.ServiceInterface
}

func NewPostHandler(postService service.ServiceInterface) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// HealthChecker
// GET /healthchecker
func (h *PostHandler) HealthChecker(c *gin.Context) {
	response.Message(c, http.StatusOK, healthMessage)
}

// ListPosts lists posts with offset pagination
// GET /posts?limit=&page=
func (h *PostHandler) ListPosts(c *gin.Context) {
	// Step 1: Bind query parameters (defaults limit=10, page=1)
	var query model.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	// Step 2: Validate bounds
	query.Normalize()
	if err := query.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Call service
	resp, err := h.postService.ListPosts(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// CreatePost creates new post
// POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	// Step 2: Required fields
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	// Step 3: Call service
	resp, err := h.postService.CreatePost(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// GetPost gets post by ID
// GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	resp, err := h.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// EditPost partially updates post
// PATCH /posts/:id
func (h *PostHandler) EditPost(c *gin.Context) {
	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.postService.EditPost(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// DeletePost deletes post
// DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	response.NoContent(c)
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

func (h *PostHandler) respondError(c *gin.Context, err error) {
	statusCode, message := mapPostError(err)

	switch statusCode {
	case http.StatusBadRequest:
		response.BadRequest(c, message)
	case http.StatusNotFound:
		response.NotFound(c, message)
	case http.StatusConflict:
		response.Conflict(c, message)
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Post request failed")
		response.InternalServerError(c)
	}
}

// mapPostError maps post error to HTTP status code and client message
func mapPostError(err error) (int, string) {
	var postErr *model.PostError
	if errors.As(err, &postErr) {
		switch postErr.Code {
		case model.ErrCodeInvalidID:
			return http.StatusBadRequest, postErr.PublicMessage()
		case model.ErrCodeNotFound:
			return http.StatusNotFound, postErr.PublicMessage()
		case model.ErrCodeDuplicateTitle:
			return http.StatusConflict, postErr.PublicMessage()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
