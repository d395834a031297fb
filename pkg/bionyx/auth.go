package bionyx

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

	"golang.org/x/time/rate"

	"ekey-bionyx/pkg/log"
)

// Auth is the authenticated transport. It resolves relative paths against the
// configured host, attaches a fresh bearer token to every request and hands the
// request to the injected HTTP client. It never retries and never inspects the
// status code; callers use Response.RaiseForStatus.
type Auth struct {
	httpClient HTTPDoer
	host       string
	tokens     TokenProvider
	userAgent  string
	limiter    *rate.Limiter
	metrics    *Metrics
	l          log.Logger
}

var _ Requester = (*Auth)(nil)

// Option configures an Auth.
type Option func(*Auth)

// WithLogger logs one debug line per request. Tokens are never logged.
func WithLogger(l log.Logger) Option {
	return func(a *Auth) {
		if l != nil {
			a.l = l
		}
	}
}

// WithRateLimit throttles outgoing requests to r per second with the given burst.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(a *Auth) {
		if r > 0 {
			if burst < 1 {
				burst = 1
			}
			a.limiter = rate.NewLimiter(r, burst)
		}
	}
}

// WithMetrics records request counts and latencies.
func WithMetrics(m *Metrics) Option {
	return func(a *Auth) {
		a.metrics = m
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(a *Auth) {
		a.userAgent = ua
	}
}

// NewAuth creates the transport. A nil httpClient falls back to a plain *http.Client.
func NewAuth(httpClient HTTPDoer, host string, tokens TokenProvider, opts ...Option) (*Auth, error) {
	if tokens == nil {
		return nil, ErrTokenProviderRequired
	}

	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host == "" {
		return nil, ErrHostRequired
	}
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("bionyx: invalid host %q: %w", host, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("bionyx: host must use http or https, got %q", host)
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	a := &Auth{
		httpClient: httpClient,
		host:       host,
		tokens:     tokens,
		userAgent:  DefaultUserAgent,
		l:          log.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Host returns the base URL requests are resolved against.
func (a *Auth) Host() string {
	return a.host
}

// Request sends method to path (relative to the host). A non-nil body is encoded
// as JSON. Caller headers are merged in; Authorization is always overwritten
// with the current bearer token.
func (a *Auth) Request(ctx context.Context, method, path string, body any, headers http.Header) (*Response, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("bionyx: rate limit wait: %w", err)
		}
	}

	token, err := a.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("bionyx: get access token: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("bionyx: marshal %s %s body: %w", method, path, err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	endpoint := a.resolve(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("bionyx: build %s %s request: %w", method, endpoint, err)
	}

	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", a.userAgent)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		a.metrics.observe(method, "error", elapsed)
		a.l.Debugf(ctx, "bionyx: %s %s failed after %s: %v", method, endpoint, elapsed, err)
		return nil, fmt.Errorf("bionyx: %s %s: %w", method, endpoint, err)
	}

	a.metrics.observe(method, strconv.Itoa(resp.StatusCode), elapsed)
	a.l.Debugf(ctx, "bionyx: %s %s -> %d in %s", method, endpoint, resp.StatusCode, elapsed)

	return &Response{Response: resp, method: method, url: endpoint}, nil
}

func (a *Auth) resolve(path string) string {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return a.host
	}
	return a.host + "/" + path
}

// Response wraps the raw HTTP response of a Request call.
// The caller must Close it.
type Response struct {
	*http.Response
	method string
	url    string
}

// RaiseForStatus returns a *ResponseError for any status outside 2xx.
func (r *Response) RaiseForStatus() error {
	if r.StatusCode >= 200 && r.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(r.Body, errorBodyLimit))

	reason := strings.TrimSpace(strings.TrimPrefix(r.Status, strconv.Itoa(r.StatusCode)))
	if reason == "" {
		reason = http.StatusText(r.StatusCode)
	}

	return &ResponseError{
		Method:     r.method,
		URL:        r.url,
		StatusCode: r.StatusCode,
		Reason:     reason,
		Body:       strings.TrimSpace(string(raw)),
	}
}

// DecodeJSON decodes the response body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("bionyx: decode %s %s response: %w", r.method, r.url, err)
	}
	return nil
}

// Close drains and closes the body so the connection can be reused.
func (r *Response) Close() error {
	_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, errorBodyLimit))
	return r.Body.Close()
}

// call runs one request/response cycle: raise on non-2xx, then decode into out when given.
func call(ctx context.Context, r Requester, method, path string, body, out any) error {
	resp, err := r.Request(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	defer resp.Close()

	if err := resp.RaiseForStatus(); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.DecodeJSON(out)
}
