// Package backend is the HTTP client for the core banking API. Every call
// carries the session's bearer token; responses use the uniform
// {status, data, message|error} envelope.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Pagination is the page metadata block inside a list envelope.
type Pagination struct {
	CurrentPage       int    `json:"current_page"`
	TotalPages        int    `json:"total_pages"`
	TotalTransactions *int64 `json:"total_transactions,omitempty"`
}

// Page is one fetched page of an opaque resource list.
type Page struct {
	Items      []map[string]any
	Pagination Pagination
}

// Envelope is the backend's uniform response wrapper.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// FailureMessage returns the backend-provided error text, preferring the
// message field, or empty when neither is set.
func (e *Envelope) FailureMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// CallError is a failed backend call. Message holds the backend's own text
// when it provided one.
type CallError struct {
	StatusCode int
	Message    string
}

func (e *CallError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend call failed with status %d", e.StatusCode)
}

// API is the surface the usecases depend on.
type API interface {
	FetchPage(ctx context.Context, token, path, pluralKey string, query url.Values) (*Page, error)
	FetchRecord(ctx context.Context, token, path, key string) (map[string]any, error)
	Send(ctx context.Context, token, method, path string, body any) (*Envelope, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body any) (*Envelope, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Error("Backend request failed")
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.logger.WithField("path", path).Error("Malformed backend envelope")
		return nil, &CallError{StatusCode: resp.StatusCode}
	}

	if resp.StatusCode != http.StatusOK || envelope.Status != http.StatusOK {
		return nil, &CallError{StatusCode: resp.StatusCode, Message: envelope.FailureMessage()}
	}

	return &envelope, nil
}

// FetchPage issues a list GET and extracts the pluralKey array plus the
// pagination block from the envelope's data object.
func (c *Client) FetchPage(ctx context.Context, token, path, pluralKey string, query url.Values) (*Page, error) {
	envelope, err := c.do(ctx, token, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, &CallError{StatusCode: http.StatusOK}
	}

	page := &Page{Items: []map[string]any{}}
	if rawItems, ok := data[pluralKey]; ok {
		if err := json.Unmarshal(rawItems, &page.Items); err != nil {
			return nil, &CallError{StatusCode: http.StatusOK}
		}
	}
	if rawPagination, ok := data["pagination"]; ok {
		if err := json.Unmarshal(rawPagination, &page.Pagination); err != nil {
			return nil, &CallError{StatusCode: http.StatusOK}
		}
	}
	if page.Pagination.CurrentPage == 0 {
		page.Pagination.CurrentPage = 1
	}
	return page, nil
}

// FetchRecord GETs a single record. When the data object wraps the record
// under key, that sub-object is returned, otherwise data itself.
func (c *Client) FetchRecord(ctx context.Context, token, path, key string) (map[string]any, error) {
	envelope, err := c.do(ctx, token, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, &CallError{StatusCode: http.StatusOK}
	}
	if key != "" {
		if wrapped, ok := data[key].(map[string]any); ok {
			return wrapped, nil
		}
	}
	return data, nil
}

// Send issues a mutating call with a JSON body.
func (c *Client) Send(ctx context.Context, token, method, path string, body any) (*Envelope, error) {
	return c.do(ctx, token, method, path, nil, body)
}
