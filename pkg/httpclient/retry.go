// Package httpclient provides an HTTP client with bounded per-attempt
// timeouts and status-aware retries for best-effort outbound calls.
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Default dispatch parameters. Callers override per call site.
const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetries    = 1
	DefaultRetryDelay = 500 * time.Millisecond
)

// defaultRetryStatuses are the transient statuses worth another attempt:
// request-timeout, rate-limited, and server-side errors. Other 4xx are
// permanent and returned to the caller immediately.
var defaultRetryStatuses = []int{
	http.StatusRequestTimeout,
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// Options controls one dispatch call.
type Options struct {
	Timeout         time.Duration // per-attempt deadline
	Retries         int           // additional attempts after the first
	RetryDelay      time.Duration // linear backoff base between attempts
	RetryOnStatuses []int         // statuses that trigger a retry
}

// DefaultOptions returns the standard dispatch parameters: one retry, 10s
// per-attempt timeout, 500ms linear backoff, transient-status retry set.
func DefaultOptions() Options {
	return Options{
		Timeout:    DefaultTimeout,
		Retries:    DefaultRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Retries < 0 {
		o.Retries = 0
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = DefaultRetryDelay
	}
	if o.RetryOnStatuses == nil {
		o.RetryOnStatuses = defaultRetryStatuses
	}
	return o
}

// Response is the outcome of a completed attempt. The body is fully read
// before the attempt's deadline is released, so it is always available.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client dispatches HTTP requests with retry. The zero value is not usable;
// construct with New.
type Client struct {
	http   *http.Client
	logger *slog.Logger
}

// New creates a Client. The underlying http.Client carries no global
// timeout: each attempt is bounded individually via context deadline.
func New(logger *slog.Logger) *Client {
	return &Client{
		http:   &http.Client{},
		logger: logger,
	}
}

// ShouldRetry is the retry decision as a pure function: given the response
// status and the attempt index, it reports whether another attempt should
// be made. The last allowed attempt never retries regardless of status.
func ShouldRetry(status, attempt int, opts Options) bool {
	opts = opts.withDefaults()
	if attempt >= opts.Retries {
		return false
	}
	for _, s := range opts.RetryOnStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Do issues the request, retrying on transient failures. Cancellation is
// owned by the client: each attempt runs under its own deadline and there is
// no external cancellation hook, so an aborted attempt never cancels the
// backoff or subsequent attempts. A response — even a non-2xx one — is
// returned as soon as an attempt completes with a non-retryable status or
// attempts run out; the error return is non-nil only when every attempt
// failed at the network level or timed out.
func (c *Client) Do(method, url string, header http.Header, body []byte, opts Options) (*Response, error) {
	opts = opts.withDefaults()
	deliveryID := uuid.New().String()

	var lastErr error

	for attempt := 0; attempt <= opts.Retries; attempt++ {
		if attempt > 0 {
			// Linear backoff: delay grows with the attempt number
			time.Sleep(opts.RetryDelay * time.Duration(attempt))
		}

		resp, err := c.attempt(method, url, header, body, opts.Timeout)
		if err != nil {
			lastErr = err
			c.logger.Warn("dispatch attempt failed",
				slog.String("delivery_id", deliveryID),
				slog.String("url", url),
				slog.Int("attempt", attempt+1),
				slog.Any("error", err))
			continue
		}

		if !ShouldRetry(resp.StatusCode, attempt, opts) {
			return resp, nil
		}

		lastErr = fmt.Errorf("request failed with status %d", resp.StatusCode)
		c.logger.Warn("dispatch attempt got retryable status",
			slog.String("delivery_id", deliveryID),
			slog.String("url", url),
			slog.Int("attempt", attempt+1),
			slog.Int("status", resp.StatusCode))
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("request failed")
	}
	return nil, lastErr
}

// attempt performs a single request under its own deadline and drains the
// response body before the deadline is released.
func (c *Client) attempt(method, url string, header http.Header, body []byte, timeout time.Duration) (*Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
