package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeInvalidID      = "POST_INVALID_ID"
	ErrCodeNotFound       = "POST_NOT_FOUND"
	ErrCodeDuplicateTitle = "POST_DUPLICATE_TITLE"
	ErrCodeQuery          = "POST_QUERY_ERROR"
	ErrCodeSerialization  = "POST_SERIALIZATION_ERROR"
)

// Errors
var (
	ErrInvalidID      = errors.New("invalid post id")
	ErrPostNotFound   = errors.New("post not found")
	ErrDuplicateTitle = errors.New("post with that title already exists")
	ErrDatabaseQuery  = errors.New("database query error")
	ErrSerialization  = errors.New("document serialization error")
)

// PostError mang theo code để handler map sang HTTP status
type PostError struct {
	Code    string
	Message string
	Err     error
}

func (e *PostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PostError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewInvalidIDError(id string) *PostError {
	return &PostError{
		Code:    ErrCodeInvalidID,
		Message: fmt.Sprintf("invalid ID: %s", id),
		Err:     ErrInvalidID,
	}
}

func NewNotFoundError(id string) *PostError {
	return &PostError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("Post with ID: %s not found", id),
		Err:     ErrPostNotFound,
	}
}

func NewDuplicateTitleError(cause error) *PostError {
	return &PostError{
		Code:    ErrCodeDuplicateTitle,
		Message: "Post with that title already exists",
		Err:     errors.Join(ErrDuplicateTitle, cause),
	}
}

func NewQueryError(cause error) *PostError {
	return &PostError{
		Code:    ErrCodeQuery,
		Message: "MongoDB error",
		Err:     errors.Join(ErrDatabaseQuery, cause),
	}
}

func NewSerializationError(cause error) *PostError {
	return &PostError{
		Code:    ErrCodeSerialization,
		Message: "MongoDB serialization error",
		Err:     errors.Join(ErrSerialization, cause),
	}
}

// PublicMessage là message trả về client. Lỗi 5xx bị redact,
// chi tiết chỉ nằm trong log.
func (e *PostError) PublicMessage() string {
	switch e.Code {
	case ErrCodeQuery, ErrCodeSerialization:
		return "internal server error"
	default:
		return e.Message
	}
}
