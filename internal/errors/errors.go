package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("you are not authorized to access this resource")
	// ErrInvalidCredentials is returned on a failed login. Unknown email and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrWrongPassword is returned when the current password does not match
	// during a password change.
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrUserDeactivated is returned when a deactivated account tries to log in.
	ErrUserDeactivated = errors.New("account is deactivated")
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrCategoryHasArticles is returned when deleting a category that still
	// owns articles.
	ErrCategoryHasArticles = errors.New("category has dependent articles")
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "WRONG_PASSWORD")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUserDeactivated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "USER_DEACTIVATED")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrCategoryHasArticles):
		return NewHTTPError(http.StatusConflict, err.Error(), "CATEGORY_HAS_ARTICLES")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
