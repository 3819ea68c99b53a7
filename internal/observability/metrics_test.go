package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/metocean-kit/bgs"
)

type fakeProvider struct {
	value float64
	err   error
}

func (p *fakeProvider) Declination(ctx context.Context, req bgs.Request) (float64, error) {
	return p.value, p.err
}

func TestInstrumentProviderCountsOutcomes(t *testing.T) {
	m := NewMetricsForTesting()
	ok := InstrumentProvider(&fakeProvider{value: -0.13}, m)
	failing := InstrumentProvider(&fakeProvider{err: errors.New("boom")}, m)

	decl, err := ok.Declination(context.Background(), bgs.Request{})
	require.NoError(t, err)
	assert.InDelta(t, -0.13, decl, 1e-9)

	_, err = failing.Declination(context.Background(), bgs.Request{})
	require.Error(t, err)
	_, err = failing.Declination(context.Background(), bgs.Request{})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeclinationRequests.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DeclinationRequests.WithLabelValues("error")))
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "unknown"} {
		assert.NotNil(t, NewLogger(level, "text"))
		assert.NotNil(t, NewLogger(level, "json"))
	}
}
