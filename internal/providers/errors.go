package providers

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidWeek is returned for weeks outside 1-22.
	ErrInvalidWeek = errors.New("invalid week")
	// ErrProviderUnavailable is returned when no provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// NetworkError wraps a failed or non-200 upstream request.
type NetworkError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError wraps an upstream body that could not be decoded.
type ParseError struct {
	Provider string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Provider, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RateLimitError captures 429 responses from upstream providers.
// It is reported, never retried.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
