package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when an entity is absent or not owned by
	// the acting principal. The two cases are deliberately
	// indistinguishable to the caller.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned for any login failure.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned when registering a duplicate username.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrEmailTaken is returned when registering a duplicate email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrRoleNotFound is returned when a role name cannot be resolved.
	ErrRoleNotFound = errors.New("role not found")
	// ErrCategoryNameTaken is returned when a category name is already in use.
	ErrCategoryNameTaken = errors.New("category name is already in use")
	// ErrCategoryInUse is returned when deleting a category that still
	// has products or subcategories.
	ErrCategoryInUse = errors.New("category has products or subcategories")
	// ErrProfileExists is returned when a user already has a profile.
	ErrProfileExists = errors.New("profile already exists")
	// ErrInvalidSession is returned when a session token is invalid or expired.
	ErrInvalidSession = errors.New("invalid or expired session")
	// ErrInvalidInput is returned when a request value fails a domain
	// rule that binding and struct validation cannot express.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Infrastructure
// failures collapse to a generic 500 so no internal state leaks.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidSession):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_SESSION")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrCategoryNameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "CATEGORY_NAME_TAKEN")
	case errors.Is(err, ErrCategoryInUse):
		return NewHTTPError(http.StatusConflict, err.Error(), "CATEGORY_IN_USE")
	case errors.Is(err, ErrProfileExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "PROFILE_EXISTS")
	case errors.Is(err, ErrRoleNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROLE_NOT_FOUND")
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
