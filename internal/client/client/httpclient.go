package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/logging"
	"github.com/google/uuid"
)

const (
	RequestIDHeaderName = "X-Request-ID"

	maxResponseBody = 4 << 20
)

// call is a single logical request. It may hit the wire twice: once with the
// current access token and, after a refresh, once more.
type call struct {
	method      string
	// path is relative to the base URL; segments taken from user input
	// must be url.PathEscape'd.
	path        string
	query       url.Values
	body        []byte
	contentType string

	// skipAuthRefresh opts the call out of the refresh protocol; only the
	// refresh request itself sets it.
	skipAuthRefresh bool
	// retried is set once the call has been resent after a 401.
	retried bool
}

type response struct {
	status int
	body   []byte
}

func (r *response) err() error {
	if r.status >= 200 && r.status < 300 {
		return nil
	}
	return newAPIError(r.status, r.body)
}

// HTTPClient talks to the UdharoGuru REST API. It attaches the bearer token
// to every call and recovers from access-token expiry with at most one
// refresh in flight (see refresh.go). Safe for concurrent use.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenStore
	log     logging.Logger

	mu         sync.Mutex
	refreshing bool
	queue      []chan refreshResult
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithTimeout sets the timeout of the default *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://127.0.0.1:8000/api/").
func NewHTTPClient(baseURL string, tokens TokenStore, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "http")
	return c, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// send puts cl on the wire once, authenticated with token when non-empty.
// Only transport failures are returned as errors.
func (c *HTTPClient) send(ctx context.Context, cl *call, token string) (*response, error) {
	ref, err := url.Parse(strings.TrimPrefix(cl.path, "/"))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	ref.RawQuery = cl.query.Encode()
	target := c.baseURL.ResolveReference(ref)

	var body io.Reader
	if cl.body != nil {
		body = bytes.NewReader(cl.body)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeaderName, requestID)
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", cl.method, "path", cl.path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, cl.method, cl.path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %w", ErrUnavailable, cl.method, cl.path, err)
	}

	c.log.Debug(ctx, "request done", "method", cl.method, "path", cl.path, "status", resp.StatusCode,
		"request_id", requestID, "retried", cl.retried)
	return &response{status: resp.StatusCode, body: data}, nil
}

// doJSON runs cl and decodes a successful body into out (if non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, cl *call, out any) error {
	resp, err := c.do(ctx, cl)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", cl.method, cl.path, err)
	}
	return nil
}

func jsonCall(method, path string, in any) (*call, error) {
	cl := &call{method: method, path: path}
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		cl.body = b
		cl.contentType = "application/json"
	}
	return cl, nil
}

// multipartCall buffers the whole form so the call can be replayed after a
// refresh.
func multipartCall(path string, fields map[string]string, files map[string]*models.Attachment) (*call, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(files))
	for k, f := range files {
		if f != nil && f.Content != nil {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	for _, k := range names {
		f := files[k]
		part, err := w.CreateFormFile(k, f.FileName)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, fmt.Errorf("read %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return &call{method: http.MethodPost, path: path, body: buf.Bytes(), contentType: w.FormDataContentType()}, nil
}
