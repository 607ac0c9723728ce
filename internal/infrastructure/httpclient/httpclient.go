// Package httpclient holds the JSON-over-HTTP plumbing shared by the upstream adapters.
package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds every upstream round trip.
const DefaultTimeout = 30 * time.Second

// StatusError is returned for a non-2xx upstream response.
type StatusError struct {
	URL        string
	Status     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.URL, e.Status)
}

// New returns a client with the given timeout, or DefaultTimeout when it is not positive.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// CheckResponse returns a *StatusError unless r has a 2xx status.
func CheckResponse(r *http.Response) error {
	if r.StatusCode < 200 || r.StatusCode > 299 {
		return &StatusError{
			URL:        r.Request.URL.String(),
			Status:     r.Status,
			StatusCode: r.StatusCode,
		}
	}
	return nil
}

// DoJSON sends req and decodes a 2xx JSON body into a new T.
func DoJSON[T any](client *http.Client, req *http.Request) (*T, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if err := CheckResponse(resp); err != nil {
		io.Copy(io.Discard, resp.Body)
		return nil, err
	}

	content := new(T)
	if err := json.NewDecoder(resp.Body).Decode(content); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return content, nil
}
