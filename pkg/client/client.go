// Package client is the Go façade over the Pandoro REST API. Every call returns an
// explicit Result and never panics: transport and decoding failures are reported as the
// canned "Wrong procedure" failure with the cause attached.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "pandoro-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const (
	apiPrefix = "/api/v1"

	defaultTimeout = 30 * time.Second
)

// Result is the outcome of one call to the backend
type Result[T any] struct {
	Success    bool
	StatusCode int
	Error      string
	Data       T
	// Err holds the transport or decoding failure behind a canned result
	Err error
}

// Empty is the payload of calls whose response carries no data
type Empty struct{}

// envelope mirrors the JSON body written by the backend
type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Error      string          `json:"error,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

type response struct {
	status int
	body   []byte
}

// Client sends requests to a Pandoro backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker

	mu     sync.RWMutex
	userID uuid.UUID
	token  string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCredentials authenticates the client as an existing user
func WithCredentials(userID uuid.UUID, token string) Option {
	return func(c *Client) {
		c.userID = userID
		c.token = token
	}
}

// WithBreakerSettings replaces the circuit breaker settings. Without IsSuccessful,
// failures caused by the caller's context do not count against the breaker.
func WithBreakerSettings(settings gobreaker.Settings) Option {
	return func(c *Client) {
		if settings.IsSuccessful == nil {
			settings.IsSuccessful = isSuccessful
		}
		c.breaker = gobreaker.NewCircuitBreaker(settings)
	}
}

// callerGone wraps a failure caused by the request context being cancelled or expired,
// which says nothing about the backend health
type callerGone struct {
	err error
}

func (e *callerGone) Error() string { return e.err.Error() }
func (e *callerGone) Unwrap() error { return e.err }

func isSuccessful(err error) bool {
	var gone *callerGone
	return err == nil || errors.As(err, &gone)
}

// New creates a client for the backend reachable at baseURL (e.g. http://localhost:8080)
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "pandoro-backend",
			MaxRequests: 1,
			Timeout:     5 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 3
			},
			IsSuccessful: isSuccessful,
			OnStateChange: func(name string, from, to gobreaker.State) {
				logrus.WithFields(logrus.Fields{
					"breaker": name,
					"from":    from.String(),
					"to":      to.String(),
				}).Info("Circuit breaker state changed")
			},
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Credentials returns the user id and token sent with every request
func (c *Client) Credentials() (uuid.UUID, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID, c.token
}

func (c *Client) setCredentials(userID uuid.UUID, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = userID
	c.token = token
}

func pageParams(page, pageSize int) url.Values {
	return url.Values{
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
	}
}

// wrongProcedure is the canned failure returned when no backend answer could be read
func wrongProcedure[T any](err error) Result[T] {
	return Result[T]{
		Success:    false,
		StatusCode: 0,
		Error:      apperrors.ErrWrongProcedure.Error(),
		Err:        err,
	}
}

// call sends a JSON request and decodes the envelope data into T
func call[T any](ctx context.Context, c *Client, method, path string, body interface{}) Result[T] {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return wrongProcedure[T](fmt.Errorf("failed to encode request: %w", err))
		}
		payload = bytes.NewReader(encoded)
	}
	req, err := c.newRequest(ctx, method, path, payload)
	if err != nil {
		return wrongProcedure[T](err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return send[T](c, req)
}

// upload sends a single file as a multipart form and decodes the envelope data into T
func upload[T any](ctx context.Context, c *Client, path, field, filename string, content io.Reader) Result[T] {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return wrongProcedure[T](fmt.Errorf("failed to create form file: %w", err))
	}
	if _, err := io.Copy(part, content); err != nil {
		return wrongProcedure[T](fmt.Errorf("failed to read file: %w", err))
	}
	if err := writer.Close(); err != nil {
		return wrongProcedure[T](fmt.Errorf("failed to close form: %w", err))
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return wrongProcedure[T](err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return send[T](c, req)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	userID, token := c.Credentials()
	if token != "" {
		req.Header.Set("id", userID.String())
		req.Header.Set("token", token)
	}
	return req, nil
}

// send executes the request through the circuit breaker. Only transport failures count
// against the breaker: an error envelope from the backend is a regular answer and a
// cancelled or expired caller context is not the backend's fault.
func send[T any](c *Client, req *http.Request) Result[T] {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, transportError(req, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, transportError(req, err)
		}
		return &response{status: resp.StatusCode, body: body}, nil
	})
	if err != nil {
		return wrongProcedure[T](fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err))
	}
	return decode[T](out.(*response))
}

func transportError(req *http.Request, err error) error {
	if req.Context().Err() != nil {
		return &callerGone{err: err}
	}
	return err
}

func decode[T any](resp *response) Result[T] {
	var env envelope
	if err := json.Unmarshal(resp.body, &env); err != nil {
		return wrongProcedure[T](fmt.Errorf("failed to decode response (status %d): %w", resp.status, err))
	}

	result := Result[T]{
		Success:    env.Success,
		StatusCode: env.StatusCode,
		Error:      env.Error,
	}
	if result.StatusCode == 0 {
		result.StatusCode = resp.status
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &result.Data); err != nil {
			return wrongProcedure[T](fmt.Errorf("failed to decode response data: %w", err))
		}
	}
	return result
}
