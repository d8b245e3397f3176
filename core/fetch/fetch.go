// Package fetch issues GET requests against public JSON APIs.
//
// Every failure is reported as *Error whose Kind is either ErrNetwork
// (transport error or non-2xx status) or ErrFormat (non-JSON content type or
// malformed body). Callers collapse both into a single user-facing message.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	ErrNetwork = errors.New("network failure")
	ErrFormat  = errors.New("format failure")
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 8 << 20

// Error describes a failed upstream fetch.
type Error struct {
	Kind   error
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("fetch %s: %v", e.URL, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Options configures a Client.
type Options struct {
	Timeout time.Duration
	// RPS limits outbound requests per second; 0 disables limiting.
	RPS       float64
	Burst     int
	Transport http.RoundTripper
	Logger    *zap.Logger
}

// Client fetches and decodes JSON documents.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewClient(opts Options) *Client {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 2
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		http:    &http.Client{Timeout: opts.Timeout, Transport: otelhttp.NewTransport(base)},
		limiter: limiter,
		log:     log,
	}
}

// GetJSON fetches rawURL and decodes the JSON body into v.
func (c *Client) GetJSON(ctx context.Context, rawURL string, v interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &Error{Kind: ErrNetwork, URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &Error{Kind: ErrNetwork, URL: rawURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed", zap.String("url", rawURL), zap.Error(err))
		return &Error{Kind: ErrNetwork, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("upstream response",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: ErrNetwork, URL: rawURL, Status: resp.StatusCode}
	}
	if !IsJSONContentType(resp.Header.Get("Content-Type")) {
		return &Error{
			Kind:   ErrFormat,
			URL:    rawURL,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected content type %q", resp.Header.Get("Content-Type")),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &Error{Kind: ErrNetwork, URL: rawURL, Status: resp.StatusCode, Err: err}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &Error{Kind: ErrFormat, URL: rawURL, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// IsJSONContentType reports whether a Content-Type header names a JSON media
// type (application/json or any +json suffix).
func IsJSONContentType(header string) bool {
	if header == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return strings.Contains(strings.ToLower(header), "json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
