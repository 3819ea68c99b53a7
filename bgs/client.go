// Package bgs queries the British Geological Survey geomagnetism web
// service for magnetic field values. The service exposes the World
// Magnetic Model (WMM), the International Geomagnetic Reference Field
// (IGRF), and the subscriber-only BGS Global Geomagnetic Model (BGGM);
// see https://geomag.bgs.ac.uk/web_service/GMModels/help/parameters.
package bgs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Geomagnetic model identifiers accepted by the web service.
const (
	ModelWMM  = "wmm"
	ModelIGRF = "igrf"
	ModelBGGM = "bggm" // subscriber-only
)

const (
	defaultBaseURL  = "https://geomag.bgs.ac.uk/web_service/GMModels"
	defaultRevision = "current"
	defaultTimeout  = 10 * time.Second
)

// Request identifies a site and date for a field-value query.
// Coordinates are decimal degrees and altitude is decimal km above mean
// sea level. A zero Date queries the model for today.
type Request struct {
	Lon        float64
	Lat        float64
	AltitudeKm float64
	Date       time.Time
}

// FieldValue is a single magnetic field component with its units, e.g.
// {"deg (east)", -0.13} for declination.
type FieldValue struct {
	Units string  `json:"units"`
	Value float64 `json:"value"`
}

// FieldValues holds the magnetic field components returned by the
// service for one site and date.
type FieldValues struct {
	TotalIntensity      FieldValue `json:"total-intensity"`
	Declination         FieldValue `json:"declination"`
	Inclination         FieldValue `json:"inclination"`
	HorizontalIntensity FieldValue `json:"horizontal-intensity"`
	NorthIntensity      FieldValue `json:"north-intensity"`
	EastIntensity       FieldValue `json:"east-intensity"`
	VerticalIntensity   FieldValue `json:"vertical-intensity"`
}

// Provider is the declination lookup consumed by callers. *Client and
// *CachedProvider both satisfy it.
type Provider interface {
	Declination(ctx context.Context, req Request) (float64, error)
}

// Client queries one geomagnetic model of the BGS web service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	revision   string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different service root, e.g. a
// test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithModel selects the geomagnetic model and revision. An empty
// revision keeps "current".
func WithModel(model, revision string) Option {
	return func(c *Client) {
		c.model = model
		if revision != "" {
			c.revision = revision
		}
	}
}

// WithTimeout bounds each request round trip.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger attaches a logger for request debugging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a BGS geomagnetism client. Without options it
// queries the current WMM revision with a 10s timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		model:      ModelWMM,
		revision:   defaultRevision,
		logger:     slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

var defaultClient = NewClient()

// Default returns the shared package-level client.
func Default() *Client { return defaultClient }

// Declination returns the magnetic declination in decimal degrees for
// the request, positive east of true north per the service convention.
func (c *Client) Declination(ctx context.Context, req Request) (float64, error) {
	fv, err := c.FieldValues(ctx, req)
	if err != nil {
		return 0, err
	}
	return fv.Declination.Value, nil
}

// FieldValues fetches the full set of magnetic field components for the
// request. Network and decoding failures surface directly; there is no
// retry.
func (c *Client) FieldValues(ctx context.Context, req Request) (FieldValues, error) {
	date := req.Date
	if date.IsZero() {
		date = clock.Now().UTC()
	}

	params := url.Values{
		"latitude":  {formatFloat(req.Lat)},
		"longitude": {formatFloat(req.Lon)},
		"altitude":  {formatFloat(req.AltitudeKm)},
		"date":      {date.Format("2006-01-02")},
		"format":    {"json"},
	}
	fullURL := fmt.Sprintf("%s/%s/%s/?%s", c.baseURL, c.model, c.revision, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return FieldValues{}, fmt.Errorf("create request: %w", err)
	}

	c.logger.Debug("geomagnetic model request", "model", c.model, "revision", c.revision,
		"lat", req.Lat, "lon", req.Lon, "date", date.Format("2006-01-02"))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return FieldValues{}, fmt.Errorf("geomagnetic model request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return FieldValues{}, fmt.Errorf("BGS API error: status %d: %s", resp.StatusCode, body)
	}

	var modelResp response
	if err := json.NewDecoder(resp.Body).Decode(&modelResp); err != nil {
		return FieldValues{}, fmt.Errorf("decode response: %w", err)
	}
	if modelResp.Result.FieldValues == nil {
		return FieldValues{}, fmt.Errorf("BGS response missing field-value for model %s", c.model)
	}
	return *modelResp.Result.FieldValues, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BGS API response envelope.

type response struct {
	Result struct {
		Model         string       `json:"model"`
		ModelRevision string       `json:"model_revision"`
		FieldValues   *FieldValues `json:"field-value"`
	} `json:"geomagnetic-field-model-result"`
}
