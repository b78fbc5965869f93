package cardano

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/angelmondragon/cardano-wallet-go/pkg/errors"
	"github.com/angelmondragon/cardano-wallet-go/pkg/logger"
	"github.com/angelmondragon/cardano-wallet-go/pkg/metrics"
)

// DefaultTimeout bounds DoSync when the caller supplies no timeout.
const DefaultTimeout = 15 * time.Second

// responseBodyReadLimit caps how much of a response body is read, both for
// decoding and for quoting unreadable error bodies back to the caller.
const responseBodyReadLimit int64 = 1 << 20

var errBaseURLRequired = errors.New("cardano wallet base URL is required")

// Client executes request descriptors against one wallet backend. It owns no
// connections itself; the transport lives in the injected http.Client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *logger.Logger
	metrics    *metrics.APICallMetrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client. Transport-level timeouts
// for the context-driven paths belong to this client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger enables request/response logging.
func WithLogger(logg *logger.Logger) Option {
	return func(c *Client) {
		c.logger = logg
	}
}

// WithMetrics enables per-operation instrumentation.
func WithMetrics(m *metrics.APICallMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(userAgent)
		if trimmed != "" {
			c.userAgent = trimmed
		}
	}
}

// NewClient builds a client rooted at the given base URL, e.g.
// "http://localhost:8090/v2". The URL is normalized to end with a slash.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errBaseURLRequired
	}
	if !strings.HasSuffix(trimmed, "/") {
		trimmed += "/"
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{}
	}

	return client, nil
}

// BaseURL returns the normalized root every request is built against.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

// Result pairs an outcome with its failure for the channel-based execution
// path.
type Result[T any] struct {
	Value T
	Err   error
}

// Do executes the request and maps its response. API-level rejections come
// back as *ErrorMessage; transport and build failures come back as coded
// errors, so callers can tell the two channels apart.
func Do[T any](ctx context.Context, c *Client, req *Request[T]) (T, error) {
	var zero T
	if c == nil {
		return zero, pkgerrors.New(pkgerrors.CodeDependency, "cardano client not configured")
	}
	if req == nil {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "request is required")
	}
	if req.err != nil {
		return zero, req.err
	}

	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL(c.baseURL), bodyReader)
	if err != nil {
		return zero, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build "+req.operation+" request")
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-Id", requestID)

	ctx = c.logFields(ctx, map[string]any{
		"operation":  req.operation,
		"method":     req.Method,
		"path":       req.Path,
		"request_id": requestID,
	})
	c.logInfo(ctx, "cardano request")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	elapsed := time.Since(start)
	c.metrics.ObserveDuration(req.operation, elapsed)
	if err != nil {
		c.metrics.IncFailure(req.operation)
		if errors.Is(err, context.DeadlineExceeded) {
			timeoutErr := pkgerrors.Wrap(pkgerrors.CodeTimeout, err, "execute "+req.operation+" request")
			c.logError(ctx, "cardano request timed out", timeoutErr)
			return zero, timeoutErr
		}
		depErr := pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute "+req.operation+" request")
		c.logError(ctx, "cardano request failed", depErr)
		return zero, depErr
	}

	value, err := mapResponse(req, resp)
	ctx = c.logFields(ctx, map[string]any{
		"status":      resp.StatusCode,
		"duration_ms": elapsed.Milliseconds(),
	})
	if err != nil {
		c.metrics.IncFailure(req.operation)
		c.logError(ctx, "cardano response error", err)
		return zero, err
	}
	c.metrics.IncSuccess(req.operation)
	c.logInfo(ctx, "cardano response")
	return value, nil
}

// DoAsync executes the request on its own goroutine and delivers the outcome
// on a buffered channel, so the caller is never blocked.
func DoAsync[T any](ctx context.Context, c *Client, req *Request[T]) <-chan Result[T] {
	out := make(chan Result[T], 1)
	go func() {
		defer close(out)
		value, err := Do(ctx, c, req)
		out <- Result[T]{Value: value, Err: err}
	}()
	return out
}

// DoSync executes the request and waits at most the given timeout; zero or
// negative falls back to DefaultTimeout. Expiry surfaces as a coded timeout
// error, distinct from the API-level ErrorMessage channel.
func DoSync[T any](c *Client, req *Request[T], timeout time.Duration) (T, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return Do(ctx, c, req)
}

// mapResponse decodes the raw response into the typed outcome. The body is
// consumed and closed exactly once on every branch. Failures caused by the
// caller's context stay on the coded transport channel, never ErrorMessage.
func mapResponse[T any](req *Request[T], resp *http.Response) (T, error) {
	defer func() { _ = resp.Body.Close() }()
	var zero T

	data, readErr := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	if readErr != nil {
		if codedErr := contextFailure(req.operation, readErr); codedErr != nil {
			return zero, codedErr
		}
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if readErr != nil {
			return zero, &ErrorMessage{
				Message: fmt.Sprintf("read %s response: %v", req.operation, readErr),
				Code:    ErrCodeCannotDecode,
			}
		}
		value, err := req.decode(data)
		if err != nil {
			if codedErr := contextFailure(req.operation, err); codedErr != nil {
				return zero, codedErr
			}
			return zero, &ErrorMessage{
				Message: fmt.Sprintf("decode %s response: %v", req.operation, err),
				Code:    ErrCodeCannotDecode,
			}
		}
		return value, nil
	}

	if readErr == nil {
		var apiErr ErrorMessage
		if err := json.Unmarshal(data, &apiErr); err == nil && (apiErr.Message != "" || apiErr.Code != "") {
			return zero, &apiErr
		}
	}
	return zero, &ErrorMessage{
		Message: fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))),
		Code:    ErrCodeUnreadableError,
	}
}

// contextFailure maps context expiry or cancellation hidden inside a body
// read/decode error onto the coded transport channel.
func contextFailure(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return pkgerrors.Wrap(pkgerrors.CodeTimeout, err, "read "+operation+" response")
	}
	if errors.Is(err, context.Canceled) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read "+operation+" response")
	}
	return nil
}

func (c *Client) logFields(ctx context.Context, fields map[string]any) context.Context {
	if c == nil || c.logger == nil {
		return ctx
	}
	return c.logger.WithFields(ctx, fields)
}

func (c *Client) logInfo(ctx context.Context, msg string) {
	if c == nil || c.logger == nil {
		return
	}
	c.logger.Info(ctx, msg)
}

func (c *Client) logError(ctx context.Context, msg string, err error) {
	if c == nil || c.logger == nil {
		return
	}
	c.logger.Error(ctx, msg, err)
}
