package vapor_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

type recordingLogger struct {
	debugMessages []string
	errorMessages []string
	lastFields    map[string]interface{}
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.debugMessages = append(l.debugMessages, msg)
	l.lastFields = fields
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.errorMessages = append(l.errorMessages, msg)
	l.lastFields = fields
}

func TestInterceptorChainOrder(t *testing.T) {
	t.Parallel()

	chain := vapor.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *vapor.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *vapor.Request) error {
		order = append(order, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &vapor.Request{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChainStopsOnError(t *testing.T) {
	t.Parallel()

	chain := vapor.NewInterceptorChain()
	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *vapor.Request) error {
		return vapor.ErrSomeError
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *vapor.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &vapor.Request{})
	require.ErrorIs(t, err, vapor.ErrSomeError)
	assert.False(t, called)
}

func TestAuthenticationInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := vapor.AuthenticationInterceptor("secret-key")
	req := &vapor.Request{Method: http.MethodGet, Path: "/instances"}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-key", req.Headers.Get("Authorization"))
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := vapor.HeaderInterceptor(map[string]string{
		"Accept":       "application/json",
		"X-Request-ID": "abc",
	})
	req := &vapor.Request{}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "application/json", req.Headers.Get("Accept"))
	assert.Equal(t, "abc", req.Headers.Get("X-Request-ID"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &vapor.Request{Method: http.MethodGet, Path: "/instances"}

	err := vapor.LoggingInterceptor(logger)(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, []string{"API Request"}, logger.debugMessages)

	resp := &vapor.Response{StatusCode: http.StatusOK}
	err = vapor.LoggingResponseInterceptor(logger)(context.Background(), req, resp)
	require.NoError(t, err)
	assert.Equal(t, []string{"API Request", "API Response"}, logger.debugMessages)
	assert.Equal(t, http.StatusOK, logger.lastFields["status_code"])

	failed := &vapor.Response{StatusCode: http.StatusInternalServerError, Error: vapor.ErrSomeError}
	err = vapor.LoggingResponseInterceptor(logger)(context.Background(), req, failed)
	require.NoError(t, err)
	assert.Equal(t, []string{"API Response Error"}, logger.errorMessages)
}
