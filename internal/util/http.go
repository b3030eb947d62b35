package util

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// GetBytes fetches url and returns the response body. The request is bounded
// by timeout as well as ctx; a non-200 status is an error, and so is a body
// longer than maxBytes.
func GetBytes(ctx context.Context, url string, timeout time.Duration, maxBytes int64) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	if maxBytes > 0 && resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("GET %s: %w", url, ErrTooLarge)
	}
	return ReadAllLimit(resp.Body, maxBytes)
}
