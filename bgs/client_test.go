package bgs

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wmmResponse = `{
	"geomagnetic-field-model-result": {
		"model": "wmm",
		"model_revision": "2025",
		"date": "2025-07-01",
		"coordinates": {"latitude": "-36.85", "longitude": "174.76", "altitude": "0km"},
		"field-value": {
			"total-intensity": {"units": "nT", "value": 55000},
			"declination": {"units": "deg (east)", "value": -0.13},
			"inclination": {"units": "deg (down)", "value": -64.2},
			"horizontal-intensity": {"units": "nT", "value": 23900},
			"north-intensity": {"units": "nT", "value": 23899},
			"east-intensity": {"units": "nT", "value": -54},
			"vertical-intensity": {"units": "nT", "value": -49500}
		}
	}
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientDeclination(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Write([]byte(wmmResponse))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithLogger(discardLogger()))

	decl, err := client.Declination(context.Background(), Request{
		Lon:        174.76,
		Lat:        -36.85,
		AltitudeKm: 0.05,
		Date:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.InDelta(t, -0.13, decl, 1e-9)

	assert.Equal(t, "/wmm/current/", gotPath)
	assert.Equal(t, map[string]string{
		"latitude":  "-36.85",
		"longitude": "174.76",
		"altitude":  "0.05",
		"date":      "2025-07-01",
		"format":    "json",
	}, gotQuery)
}

func TestClientFieldValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(wmmResponse))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithLogger(discardLogger()))

	fv, err := client.FieldValues(context.Background(), Request{Lon: 174.76, Lat: -36.85, Date: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, FieldValue{Units: "deg (east)", Value: -0.13}, fv.Declination)
	assert.Equal(t, FieldValue{Units: "nT", Value: 55000}, fv.TotalIntensity)
	assert.Equal(t, FieldValue{Units: "deg (down)", Value: -64.2}, fv.Inclination)
}

func TestClientModelRevisionPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(wmmResponse))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithModel(ModelIGRF, "14"), WithLogger(discardLogger()))

	_, err := client.Declination(context.Background(), Request{Date: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "/igrf/14/", gotPath)
}

func TestClientZeroDateDefaultsToToday(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	var gotDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("date")
		w.Write([]byte(wmmResponse))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithLogger(discardLogger()))

	_, err := client.Declination(context.Background(), Request{Lon: 174.76, Lat: -36.85})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", gotDate)
}

func TestClientAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("date out of model range"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithLogger(discardLogger()))

	_, err := client.Declination(context.Background(), Request{Date: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "date out of model range")
}

func TestClientMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithLogger(discardLogger()))

	_, err := client.Declination(context.Background(), Request{Date: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClientMissingFieldValue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"geomagnetic-field-model-result": {"model": "wmm"}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithLogger(discardLogger()))

	_, err := client.Declination(context.Background(), Request{Date: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing field-value")
}

func TestClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(wmmResponse))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithTimeout(20*time.Millisecond), WithLogger(discardLogger()))

	_, err := client.Declination(context.Background(), Request{Date: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geomagnetic model request")
}

func TestClientContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(wmmResponse))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithLogger(discardLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Declination(ctx, Request{Date: time.Now()})
	require.Error(t, err)
}
