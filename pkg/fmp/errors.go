package fmp

import "fmt"

// APIError is the base error for all upstream FMP failures. The concrete
// error types below embed it so callers can match either the specific
// category or the whole family with errors.As.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fmp api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fmp api error: %s", e.Message)
}

// AuthenticationError indicates a missing or rejected API key (HTTP 401/403).
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("fmp authentication error (status %d): %s", e.StatusCode, e.Message)
}

func (e *AuthenticationError) Unwrap() error { return &e.APIError }

// RateLimitError indicates the upstream throttled the request (HTTP 429).
type RateLimitError struct {
	APIError
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("fmp rate limit exceeded (status %d): %s", e.StatusCode, e.Message)
}

func (e *RateLimitError) Unwrap() error { return &e.APIError }

// ResponseError covers every other non-2xx status and malformed JSON bodies.
type ResponseError struct {
	APIError
}

func (e *ResponseError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fmp response error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fmp response error: %s", e.Message)
}

func (e *ResponseError) Unwrap() error { return &e.APIError }

// classifyStatus maps an upstream HTTP status to the matching error category.
// Only 401, 403 and 429 are special-cased; everything else non-2xx is a
// plain response error.
func classifyStatus(status int, body string) error {
	switch status {
	case 401, 403:
		return &AuthenticationError{APIError{StatusCode: status, Message: body}}
	case 429:
		return &RateLimitError{APIError{StatusCode: status, Message: body}}
	default:
		return &ResponseError{APIError{StatusCode: status, Message: body}}
	}
}
