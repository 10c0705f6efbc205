package resolver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/integrations/platformapi"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type countingObserver struct {
	fallbacks int
	failures  int
}

func (o *countingObserver) IncFallback(operation string)      { o.fallbacks++ }
func (o *countingObserver) IncRemoteFailure(operation string) { o.failures++ }

func TestExecute_RemoteSuccessIsAuthoritative(t *testing.T) {
	obs := &countingObserver{}
	r := New(nopLogger{}, obs)

	fallbackCalled := false
	result, err := Execute(context.Background(), r, "test.op",
		func(ctx context.Context) (string, error) { return "remote", nil },
		func(ctx context.Context) (string, error) {
			fallbackCalled = true
			return "local", nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "remote", result)
	assert.False(t, fallbackCalled)
	assert.Zero(t, obs.fallbacks)
}

func TestExecute_FallsBackWhenUnavailable(t *testing.T) {
	obs := &countingObserver{}
	r := New(nopLogger{}, obs)

	result, err := Execute(context.Background(), r, "test.op",
		func(ctx context.Context) (string, error) {
			return "", fmt.Errorf("%w: connection refused", platformapi.ErrServiceUnavailable)
		},
		func(ctx context.Context) (string, error) { return "local", nil },
	)

	require.NoError(t, err)
	assert.Equal(t, "local", result)
	assert.Equal(t, 1, obs.fallbacks)
	assert.Equal(t, 1, obs.failures)
}

func TestExecute_UnauthorizedBypassesFallback(t *testing.T) {
	r := New(nopLogger{}, nil)

	fallbackCalled := false
	_, err := Execute(context.Background(), r, "test.op",
		func(ctx context.Context) (string, error) { return "", platformapi.ErrUnauthorized },
		func(ctx context.Context) (string, error) {
			fallbackCalled = true
			return "local", nil
		},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, platformapi.ErrUnauthorized)
	assert.False(t, fallbackCalled)
}

func TestExecute_NotFoundBypassesFallback(t *testing.T) {
	r := New(nopLogger{}, nil)

	fallbackCalled := false
	_, err := Execute(context.Background(), r, "test.op",
		func(ctx context.Context) (string, error) { return "", platformapi.ErrNotFound },
		func(ctx context.Context) (string, error) {
			fallbackCalled = true
			return "local", nil
		},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, platformapi.ErrNotFound)
	assert.False(t, fallbackCalled)
}

func TestExecute_FallbackErrorSurfaces(t *testing.T) {
	r := New(nopLogger{}, nil)

	localErr := errors.New("overlay broken")
	_, err := Execute(context.Background(), r, "test.op",
		func(ctx context.Context) (int, error) { return 0, platformapi.ErrServiceUnavailable },
		func(ctx context.Context) (int, error) { return 0, localErr },
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, localErr)
}
