package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const maxBodyBytes = 10 << 20 // 10MB

// Client talks to the external HR REST API that owns attendance, leave and user records.
type Client struct {
	baseURL    string
	httpClient *http.Client
	pageLimit  int
}

func NewClient(baseURL string, timeout time.Duration, pageLimit int) *Client {
	if pageLimit <= 0 {
		pageLimit = 100
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		pageLimit:  pageLimit,
	}
}

// APIError is a non-2xx response, or a 2xx envelope reporting success=false (StatusCode 0).
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("hr api %s %s: %s", e.Method, e.Path, e.Message)
	}
	return fmt.Sprintf("hr api %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// IsNotFound reports whether the upstream answered 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ListOptions are forwarded as query parameters. Zero values are omitted.
type ListOptions struct {
	Page   int
	Limit  int
	Date   string
	UserID string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Date != "" {
		q.Set("date", o.Date)
	}
	if o.UserID != "" {
		q.Set("userId", o.UserID)
	}
	return q
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hr api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("hr api %s %s: failed to read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw, resp.Status),
		}
	}

	return raw, nil
}

// errorMessage pulls "message" or "error" out of a JSON error body.
func errorMessage(raw []byte, fallback string) string {
	var body struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return fallback
	}
	if body.Message != "" {
		return body.Message
	}
	var text string
	if err := json.Unmarshal(body.Error, &text); err == nil && text != "" {
		return text
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Error, &nested); err == nil && nested.Message != "" {
		return nested.Message
	}
	return fallback
}
