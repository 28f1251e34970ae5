package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

func TestClientSendsAuthAndDefaultHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth, gotAccept, gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"account": {"name": "test"}}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "secret-key",
		internalhttp.WithRequestInterval(-1))

	resp, err := client.Get(context.Background(), "/account", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "vapor-client-go", gotUserAgent)
}

func TestClientOmitsAuthWithoutKey(t *testing.T) {
	t.Parallel()

	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "",
		internalhttp.WithRequestInterval(-1))

	_, err := client.Get(context.Background(), "/plans", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientSendsQueryAndBody(t *testing.T) {
	t.Parallel()

	var gotQuery, gotContentType, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{}`))

			return
		}

		gotContentType = r.Header.Get("Content-Type")

		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key",
		internalhttp.WithRequestInterval(-1))
	ctx := context.Background()

	params := vapor.NewQueryParams().WithPerPage(50).WithCursor("abc")
	_, err := client.Get(ctx, "/instances", params.ToValues())
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "per_page=50")
	assert.Contains(t, gotQuery, "cursor=abc")

	resp, err := client.Post(ctx, "/instances", map[string]string{"label": "web"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"label": "web"}`, gotBody)
}

func TestClientParsesAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "instance not found", "status": 404}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key",
		internalhttp.WithRequestInterval(-1))

	resp, err := client.Get(context.Background(), "/instances/nope", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var apiErr *vapor.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "instance not found", apiErr.Message)
	assert.True(t, vapor.IsNotFound(err))
}

func TestClientRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key",
		internalhttp.WithRequestInterval(-1),
		internalhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

	resp, err := client.Get(context.Background(), "/account", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(3), calls.Load())
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "bad request", "status": 400}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key",
		internalhttp.WithRequestInterval(-1),
		internalhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

	_, err := client.Get(context.Background(), "/account", nil)
	require.Error(t, err)
	assert.Equal(t, int64(1), calls.Load())
}

func TestClientSpacesRequests(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	interval := 30 * time.Millisecond
	client := internalhttp.NewClient(server.URL, "key",
		internalhttp.WithRequestInterval(interval))
	ctx := context.Background()

	start := time.Now()

	for i := 0; i < 3; i++ {
		_, err := client.Get(ctx, "/account", nil)
		require.NoError(t, err)
	}

	// The gate admits the first request immediately, then spaces the rest
	assert.GreaterOrEqual(t, time.Since(start), 2*interval)
}

func TestClientRequestGateHonorsContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key",
		internalhttp.WithRequestInterval(time.Hour))

	// First request consumes the burst allowance
	_, err := client.Get(context.Background(), "/account", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = client.Get(ctx, "/account", nil)
	require.Error(t, err)
}

func TestClientCachesGETResponses(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"account": {"name": "cached"}}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key",
		internalhttp.WithRequestInterval(-1),
		internalhttp.WithCache(vapor.NewMemoryCache(10), time.Minute))
	ctx := context.Background()

	first, err := client.Get(ctx, "/account", nil)
	require.NoError(t, err)

	second, err := client.Get(ctx, "/account", nil)
	require.NoError(t, err)
	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, int64(1), calls.Load())

	// Different query, different cache entry
	_, err = client.Get(ctx, "/account", vapor.NewQueryParams().WithPerPage(5).ToValues())
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
}

func TestClientDoesNotCacheWrites(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, "key",
		internalhttp.WithRequestInterval(-1),
		internalhttp.WithCache(vapor.NewMemoryCache(10), time.Minute))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := client.Post(ctx, "/instances", map[string]string{"label": "x"})
		require.NoError(t, err)
	}

	assert.Equal(t, int64(2), calls.Load())
}

func TestClientDebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := internalhttp.NewClient(server.URL, "key",
		internalhttp.WithRequestInterval(-1),
		internalhttp.WithDebug(true),
		internalhttp.WithLogger(logger))

	_, err := client.Get(context.Background(), "/account", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"API Request", "API Response"}, logger.debugMessages)
}

type recordingLogger struct {
	debugMessages []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.debugMessages = append(l.debugMessages, msg)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}
