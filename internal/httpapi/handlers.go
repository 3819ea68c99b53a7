package httpapi

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	metocean "github.com/couchcryptid/metocean-kit"
	"github.com/couchcryptid/metocean-kit/bgs"
)

// GET /v1/distance?lon1=&lat1=&lon2=&lat2=
func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	coords := make([]float64, 4)
	for i, name := range []string{"lon1", "lat1", "lon2", "lat2"} {
		v, err := floatParam(r, name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		coords[i] = v
	}

	metres, err := metocean.Distance(coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"metres": metres})
}

type nearestRequest struct {
	Lon      float64   `json:"lon"`
	Lat      float64   `json:"lat"`
	LonArray []float64 `json:"lon_array"`
	LatArray []float64 `json:"lat_array"`
}

// POST /v1/nearest
func (s *Server) handleNearest(w http.ResponseWriter, r *http.Request) {
	var req nearestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	i, j, err := metocean.NearestIndex(req.Lon, req.Lat, req.LonArray, req.LatArray)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"i": i, "j": j})
}

// GET /v1/central-date?start=RFC3339&end=RFC3339
func (s *Server) handleCentralDate(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("parse start: %w", err))
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("parse end: %w", err))
		return
	}

	central := metocean.CentralDate(start, end)
	writeJSON(w, http.StatusOK, map[string]string{"central": central.Format(time.RFC3339Nano)})
}

// GET /v1/declination?lon=&lat=&date=YYYY-MM-DD&altitude=
// date defaults to today and altitude to 0 km.
func (s *Server) handleDeclination(w http.ResponseWriter, r *http.Request) {
	lon, err := floatParam(r, "lon")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	lat, err := floatParam(r, "lat")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	altitude, err := optionalFloatParam(r, "altitude", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var date time.Time
	if ds := r.URL.Query().Get("date"); ds != "" {
		date, err = time.Parse("2006-01-02", ds)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("parse date: %w", err))
			return
		}
	}

	decl, err := s.declination.Declination(r.Context(), bgs.Request{
		Lon:        lon,
		Lat:        lat,
		AltitudeKm: altitude,
		Date:       date,
	})
	if err != nil {
		s.logger.Warn("declination lookup failed", "lon", lon, "lat", lat, "error", err)
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"declination": decl})
}

type polarRequest struct {
	U                   []float64         `json:"u"`
	V                   []float64         `json:"v"`
	Category            metocean.Category `json:"category"`
	MagneticDeclination float64           `json:"magnetic_declination"`
}

// POST /v1/polar
func (s *Server) handlePolar(w http.ResponseWriter, r *http.Request) {
	var req polarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	speeds, directions, err := metocean.ToPolarSeries(req.U, req.V, req.Category, req.MagneticDeclination)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"speed":     jsonNumbers(speeds),
		"direction": jsonNumbers(directions),
	})
}

type componentsRequest struct {
	Speed     []float64         `json:"speed"`
	Direction []float64         `json:"direction"`
	Category  metocean.Category `json:"category"`
}

// POST /v1/components
func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	var req componentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	u, v, err := metocean.ToComponentsSeries(req.Speed, req.Direction, req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"u": jsonNumbers(u),
		"v": jsonNumbers(v),
	})
}

type dirStatsRequest struct {
	// Null entries mark missing samples.
	Series []*float64 `json:"series"`
}

// POST /v1/directional-stats
func (s *Server) handleDirectionalStats(w http.ResponseWriter, r *http.Request) {
	var req dirStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	series := make([]float64, len(req.Series))
	for i, p := range req.Series {
		if p == nil {
			series[i] = math.NaN()
			continue
		}
		series[i] = *p
	}

	stats := metocean.DirectionalStats(series)
	writeJSON(w, http.StatusOK, map[string]any{
		"mean": jsonNumber(stats.Mean),
		"std":  jsonNumber(stats.Std),
		"min":  jsonNumber(stats.Min),
		"max":  jsonNumber(stats.Max),
	})
}

func floatParam(r *http.Request, name string) (float64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	v, err := parseFloat(s)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", name, err)
	}
	return v, nil
}

func optionalFloatParam(r *http.Request, name string, def float64) (float64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	v, err := parseFloat(s)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", name, err)
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// jsonNumber maps NaN and infinities to null, which encoding/json
// cannot represent as numbers.
func jsonNumber(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func jsonNumbers(fs []float64) []*float64 {
	out := make([]*float64, len(fs))
	for i, f := range fs {
		out[i] = jsonNumber(f)
	}
	return out
}
