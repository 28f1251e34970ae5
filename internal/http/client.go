// Package http implements the Vapor Cloud transport: a retrying HTTP client
// with request spacing, interceptors, and optional response caching.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/vapor-io/vapor-client/internal/constants"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

const defaultUserAgent = "vapor-client-go"

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client is the HTTP transport used by all resource clients. Every request
// passes through the rate gate, the interceptor chain, and the retry policy,
// in that order.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	limiter      *rate.Limiter
	interceptors *vapor.InterceptorChain
	cache        vapor.Cache
	cacheTTL     time.Duration
	logger       vapor.Logger
	debug        bool
	userAgent    string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger vapor.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the retry policy for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRequestInterval sets the minimum spacing between consecutive requests.
// A negative interval disables the gate entirely.
func WithRequestInterval(interval time.Duration) Option {
	return func(c *Client) {
		if interval < 0 {
			c.limiter = nil

			return
		}

		if interval == 0 {
			interval = constants.MinRequestInterval
		}

		c.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

// WithCache enables response caching for GET requests.
func WithCache(cache vapor.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache

		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// NewClient creates a transport for the given endpoint. An empty apiKey
// sends requests unauthenticated, which only read-only public endpoints
// accept.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:    baseURL,
		httpClient: retryClient,
		limiter:    rate.NewLimiter(rate.Every(constants.MinRequestInterval), 1),
		cacheTTL:   constants.DefaultCacheTTL,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	chain := vapor.NewInterceptorChain()
	chain.AddRequestInterceptor(vapor.HeaderInterceptor(map[string]string{
		"Accept":     "application/json",
		"User-Agent": client.userAgent,
	}))

	if apiKey != "" {
		chain.AddRequestInterceptor(vapor.AuthenticationInterceptor(apiKey))
	}

	if client.debug && client.logger != nil {
		chain.AddRequestInterceptor(vapor.LoggingInterceptor(client.logger))
		chain.AddResponseInterceptor(vapor.LoggingResponseInterceptor(client.logger))
	}

	client.interceptors = chain

	return client
}

// Do executes a request and returns the response. Responses with status
// >= 400 are returned together with a *vapor.APIError decoded from the body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.limiter != nil {
		err := c.limiter.Wait(ctx)
		if err != nil {
			return nil, fmt.Errorf("waiting for request gate: %w", err)
		}
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	interceptReq := &vapor.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: make(nethttp.Header),
		Body:    bodyBytes,
	}

	if bodyBytes != nil {
		interceptReq.Headers.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		interceptReq.Headers.Set(key, value)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
	if err != nil {
		return nil, err
	}

	cacheKey := c.cacheKey(req)
	if cacheKey != "" {
		entry, cacheErr := c.cache.Get(ctx, cacheKey)
		if cacheErr == nil {
			return &Response{StatusCode: nethttp.StatusOK, Body: entry.Data}, nil
		}
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var requestBody io.Reader
	if bodyBytes != nil {
		requestBody = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, requestBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	for key, values := range interceptReq.Headers {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	var apiErr error
	if httpResp.StatusCode >= nethttp.StatusBadRequest {
		apiErr = vapor.ParseAPIError(httpResp.StatusCode, respBody)
	}

	interceptResp := &vapor.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      apiErr,
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
	if err != nil {
		return resp, err
	}

	if apiErr != nil {
		return resp, apiErr
	}

	if cacheKey != "" && resp.StatusCode == nethttp.StatusOK {
		entry := &vapor.CacheEntry{
			Data:      respBody,
			ExpiresAt: time.Now().Add(c.cacheTTL),
			ETag:      httpResp.Header.Get("ETag"),
		}
		_ = c.cache.Set(ctx, cacheKey, entry)
	}

	return resp, nil
}

// cacheKey returns the cache key for cacheable requests, or an empty string
// when the request must not be cached.
func (c *Client) cacheKey(req *Request) string {
	if c.cache == nil || req.Method != nethttp.MethodGet {
		return ""
	}

	key := req.Method + " " + req.Path
	if len(req.Query) > 0 {
		key += "?" + req.Query.Encode()
	}

	return key
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}
