package tutor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prober checks whether a server answers on its liveness endpoint.
type Prober interface {
	Probe(ctx context.Context, baseURL string) error
}

// Asker submits a question to a server's chat endpoint.
type Asker interface {
	Ask(ctx context.Context, baseURL, question string) (string, error)
}

// API is implemented by *Client and can be replaced in tests.
type API interface {
	Prober
	Asker
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// ErrNoResponse reports a successful chat reply without a usable response field.
var ErrNoResponse = errors.New("chat reply has no response text")

// ServerError reports a non-success HTTP status from the server.
type ServerError struct {
	Status int
	Detail string // "error" field of the reply body, when present
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("Server responded with status %d", e.Status)
}

// Client talks to the tutor inference server over HTTP. The base URL is
// passed per call because the selected candidate changes at runtime.
type Client struct {
	http      *http.Client
	userAgent string
	newID     func() string
	logger    *slog.Logger
}

const defaultUserAgent = "tutor/0.1"

// NewClient builds a Client. Deadlines come from the caller's context, so
// the underlying http.Client has no timeout of its own.
func NewClient() *Client {
	return &Client{
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		newID:     uuid.NewString,
		logger:    slog.Default(),
	}
}

// WithLogger returns a copy of the client logging to logger.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	dup := *c
	if logger != nil {
		dup.logger = logger
	}
	return &dup
}

// Probe issues GET / and succeeds on any 2xx status.
func (c *Client) Probe(ctx context.Context, baseURL string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	start := time.Now()
	resp, err := c.send(ctx, http.MethodGet, baseURL, "/", nil, "")
	if err != nil {
		c.logger.Warn("probe failed", "address", baseURL, "error", err, "elapsed", time.Since(start))
		return err
	}
	defer closeBody(resp)

	if !isSuccess(resp.StatusCode) {
		err := &ServerError{Status: resp.StatusCode}
		c.logger.Warn("probe rejected", "address", baseURL, "status", resp.StatusCode)
		return err
	}
	c.logger.Info("probe succeeded", "address", baseURL, "status", resp.StatusCode, "elapsed", time.Since(start))
	return nil
}

// Ask posts the question to /chat and returns the reply's response field.
// A reply without a non-empty string response yields ErrNoResponse.
func (c *Client) Ask(ctx context.Context, baseURL, question string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	body, err := json.Marshal(ChatRequest{Question: question})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	requestID := c.newID()
	start := time.Now()
	resp, err := c.send(ctx, http.MethodPost, baseURL, "/chat", body, requestID)
	if err != nil {
		c.logger.Warn("chat failed", "address", baseURL, "request_id", requestID, "error", err, "elapsed", time.Since(start))
		return "", err
	}
	defer closeBody(resp)

	c.logger.Info("chat replied", "address", baseURL, "request_id", requestID, "status", resp.StatusCode, "elapsed", time.Since(start))

	if !isSuccess(resp.StatusCode) {
		serr := &ServerError{Status: resp.StatusCode}
		var reply ChatReply
		if err := json.NewDecoder(resp.Body).Decode(&reply); err == nil {
			serr.Detail = reply.Detail()
		}
		if serr.Detail != "" {
			c.logger.Warn("chat rejected", "request_id", requestID, "detail", serr.Detail)
		}
		return "", serr
	}

	var reply ChatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	text, ok := reply.Text()
	if !ok {
		return "", ErrNoResponse
	}
	return text, nil
}

func (c *Client) send(ctx context.Context, method, baseURL, path string, body []byte, requestID string) (*http.Response, error) {
	base, err := ParseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	reqURL := base.ResolveReference(&url.URL{Path: path})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

// IsTimeout reports whether err came from an elapsed deadline.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Describe returns the most specific human-readable text for err, dropping
// the request wrapper added by the client.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}

// ParseBaseURL normalizes a candidate address to scheme://host[:port].
func ParseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("server address is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server address %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse server address %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
	_ = resp.Body.Close()
}
