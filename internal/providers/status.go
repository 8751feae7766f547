package providers

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// StatusError turns a non-200 upstream response into a typed error.
// The body is drained so the connection can be reused.
func StatusError(provider string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(body))

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    msg,
		}
	}
	return &NetworkError{Provider: provider, StatusCode: resp.StatusCode}
}

func parseRetryAfter(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
