// Package downstream relays chat and document calls to the backend service
// that owns them.
package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	gateway_errors "bents-gateway/pkg/errors"
)

// maxResponseBytes bounds how much of a downstream body is read.
const maxResponseBytes = 32 << 20

var errNotJSON = errors.New("response body is not JSON")

type Config struct {
	BaseURL string
	// Timeout of zero leaves the http.Client default (no timeout).
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Forward sends body (may be nil) to baseURL+path with method and returns the
// JSON response body unchanged, or {} when a 2xx carries no body. Any network
// failure, non-2xx status or non-JSON body is returned as a *DownstreamError.
func (c *Client) Forward(ctx context.Context, method, path string, body json.RawMessage) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, c.fail(method, path, 0, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, method, path)
}

// FilePart is one uploaded file re-sent as multipart form data.
type FilePart struct {
	Field    string
	FileName string
	Content  []byte
}

// ForwardMultipart re-encodes fields and file as multipart/form-data and posts
// them to baseURL+path.
func (c *Client) ForwardMultipart(ctx context.Context, path string, fields map[string]string, file FilePart) (json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, c.fail(http.MethodPost, path, 0, err)
		}
	}
	part, err := w.CreateFormFile(file.Field, file.FileName)
	if err != nil {
		return nil, c.fail(http.MethodPost, path, 0, err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, c.fail(http.MethodPost, path, 0, err)
	}
	if err := w.Close(); err != nil {
		return nil, c.fail(http.MethodPost, path, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, c.fail(http.MethodPost, path, 0, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	return c.do(req, http.MethodPost, path)
}

func (c *Client) do(req *http.Request, method, path string) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(method, path, 0, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.fail(method, path, resp.StatusCode, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(method, path, resp.StatusCode, fmt.Errorf("unexpected status: %s", snippet(data)))
	}
	// A 2xx with no body (e.g. 204) is relayed as an empty object.
	if len(bytes.TrimSpace(data)) == 0 {
		return json.RawMessage(`{}`), nil
	}
	if !json.Valid(data) {
		return nil, c.fail(method, path, resp.StatusCode, errNotJSON)
	}
	return json.RawMessage(data), nil
}

func (c *Client) fail(method, path string, status int, err error) error {
	return &gateway_errors.DownstreamError{Method: method, Path: path, StatusCode: status, Err: err}
}

func snippet(data []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(data))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	if s == "" {
		return "<empty body>"
	}
	return s
}
