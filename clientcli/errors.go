package clientcli

import (
	"errors"
	"net/http"
	"strconv"
)

// Errors for configuration validation.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
)

// Errors for session state.
var (
	// ErrNotSignedIn is returned by Upload when SignIn has not completed.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrNotAuthenticated is returned when the server redirects an
	// authenticated page, which it does when the session cookies were not
	// accepted. Bad credentials usually surface this way, since sign-in
	// itself does not inspect the response.
	ErrNotAuthenticated = errors.New("session is not authenticated")
)

// ErrTooManyRedirects is returned when the sign-in page keeps redirecting.
var ErrTooManyRedirects = errors.New("too many redirects")

// ErrEmptyPath is returned when Upload is called without a path.
var ErrEmptyPath = errors.New("path is required")

// TransportError wraps a network failure at one step of the exchange.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return e.Op + " " + e.URL + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError represents an unexpected response status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return "server error: " + strconv.Itoa(e.StatusCode) + " - " + e.Body
}

// Is reports whether target matches this error.
// It matches if target is an *APIError with the same StatusCode.
func (e *APIError) Is(target error) bool {
	var t *APIError
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return t.StatusCode == e.StatusCode
}

// Sentinel errors for common API error conditions.
// Use errors.Is() to check for these conditions.
var (
	// ErrNotFound is returned when the page does not exist (404), which for
	// the downloads page usually means the repository name is wrong.
	ErrNotFound = &APIError{StatusCode: http.StatusNotFound}

	// ErrUnauthorized is returned when authentication fails (401).
	ErrUnauthorized = &APIError{StatusCode: http.StatusUnauthorized}

	// ErrForbidden is returned when the request is not permitted (403).
	// Object storage answers 403 when the signed policy was rejected.
	ErrForbidden = &APIError{StatusCode: http.StatusForbidden}
)

// maxErrorBody caps how much of an error response is kept in APIError.
const maxErrorBody = 4 << 10

func parseServerError(statusCode int, body []byte) error {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}
}
