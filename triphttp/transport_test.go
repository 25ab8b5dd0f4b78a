package triphttp_test

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tripkit/trip"
	"github.com/tripkit/trip/triphttp"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader("")),
	}
}

func newBreaker(t *testing.T) *trip.Breaker {
	t.Helper()
	b, err := trip.New("http-test",
		trip.WithFailureThreshold(1),
		trip.WithCooldown(time.Hour),
	)
	require.NoError(t, err)
	return b
}

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	require.NoError(t, err)
	return req
}

func TestTransport_RoundTrip(t *testing.T) {
	t.Run("passes successful responses through", func(t *testing.T) {
		b := newBreaker(t)
		transport := &triphttp.Transport{
			Base: roundTripperFunc(func(*http.Request) (*http.Response, error) {
				return response(http.StatusOK), nil
			}),
			Breaker: b,
		}

		resp, err := transport.RoundTrip(newRequest(t))

		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, trip.Healthy, b.State())
	})

	t.Run("propagates transport errors", func(t *testing.T) {
		b := newBreaker(t)
		errConn := errors.New("connection refused")
		transport := &triphttp.Transport{
			Base: roundTripperFunc(func(*http.Request) (*http.Response, error) {
				return nil, errConn
			}),
			Breaker: b,
		}

		_, err := transport.RoundTrip(newRequest(t))

		require.ErrorIs(t, err, errConn)
		require.Equal(t, trip.Unavailable, b.State())
	})

	t.Run("returns 5xx responses but counts them as failures", func(t *testing.T) {
		b := newBreaker(t)
		transport := &triphttp.Transport{
			Base: roundTripperFunc(func(*http.Request) (*http.Response, error) {
				return response(http.StatusBadGateway), nil
			}),
			Breaker: b,
		}

		resp, err := transport.RoundTrip(newRequest(t))

		require.NoError(t, err, "expected the caller to still get the response")
		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
		require.Equal(t, trip.Unavailable, b.State())
	})

	t.Run("4xx responses are not failures", func(t *testing.T) {
		b := newBreaker(t)
		transport := &triphttp.Transport{
			Base: roundTripperFunc(func(*http.Request) (*http.Response, error) {
				return response(http.StatusNotFound), nil
			}),
			Breaker: b,
		}

		resp, err := transport.RoundTrip(newRequest(t))

		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, trip.Healthy, b.State())
	})

	t.Run("short-circuits while unavailable", func(t *testing.T) {
		b := newBreaker(t)
		calls := 0
		transport := &triphttp.Transport{
			Base: roundTripperFunc(func(*http.Request) (*http.Response, error) {
				calls++
				return response(http.StatusInternalServerError), nil
			}),
			Breaker: b,
		}

		_, err := transport.RoundTrip(newRequest(t))
		require.NoError(t, err)

		_, err = transport.RoundTrip(newRequest(t))

		require.True(t, trip.IsUnavailable(err))
		require.Equal(t, 1, calls, "expected base transport not reached while unavailable")
	})
}
