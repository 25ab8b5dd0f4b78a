package tripprom_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/tripkit/trip"
	"github.com/tripkit/trip/tripprom"
)

const expected = `# HELP trip_calls_total Calls attempted through the breaker, by result.
# TYPE trip_calls_total counter
trip_calls_total{breaker="checkout",result="failure"} 2
trip_calls_total{breaker="checkout",result="success"} 1
# HELP trip_rejections_total Calls rejected while the breaker was unavailable.
# TYPE trip_rejections_total counter
trip_rejections_total{breaker="checkout"} 1
# HELP trip_state Current breaker state (0 healthy, 1 unstable, 2 unavailable, 3 trial).
# TYPE trip_state gauge
trip_state{breaker="checkout"} 2
`

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := tripprom.NewCollector(reg)
	require.NoError(t, err)

	opts := append(c.Hooks(),
		trip.WithFailureThreshold(2),
		trip.WithCooldown(time.Hour),
	)
	b, err := trip.New("checkout", opts...)
	require.NoError(t, err)

	errCall := errors.New("boom")
	require.NoError(t, b.Do(context.Background(), func(ctx context.Context) error {
		return nil
	}))
	for it := 0; it < 2; it++ {
		require.ErrorIs(t, b.Do(context.Background(), func(ctx context.Context) error {
			return errCall
		}), errCall)
	}
	require.True(t, trip.IsUnavailable(b.Do(context.Background(), func(ctx context.Context) error {
		return nil
	})))

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"trip_calls_total", "trip_rejections_total", "trip_state"))
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := tripprom.NewCollector(reg)
	require.NoError(t, err)

	_, err = tripprom.NewCollector(reg)
	require.Error(t, err)
}
