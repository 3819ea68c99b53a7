// Package ncgrid loads coordinate axes from NetCDF model output so
// sites can be located on a grid with metocean.NearestIndex.
package ncgrid

import (
	"fmt"

	"github.com/fhs/go-netcdf/netcdf"

	metocean "github.com/couchcryptid/metocean-kit"
)

// Axis variable names tried in order when the caller does not name one.
var (
	lonNames = []string{"lon", "longitude", "x"}
	latNames = []string{"lat", "latitude", "y"}
)

// Axes holds the 1-D longitude and latitude axes of a model grid,
// decimal degrees in file order.
type Axes struct {
	Lon []float64
	Lat []float64
}

// Open reads the coordinate axes from a NetCDF file. Empty lonVar or
// latVar fall back to the common axis names (lon/longitude/x and
// lat/latitude/y).
func Open(path, lonVar, latVar string) (Axes, error) {
	nc, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return Axes{}, fmt.Errorf("open NetCDF file: %w", err)
	}
	defer func() { _ = nc.Close() }()

	lon, err := readAxis(nc, candidates(lonVar, lonNames))
	if err != nil {
		return Axes{}, fmt.Errorf("longitude axis: %w", err)
	}
	lat, err := readAxis(nc, candidates(latVar, latNames))
	if err != nil {
		return Axes{}, fmt.Errorf("latitude axis: %w", err)
	}
	return Axes{Lon: lon, Lat: lat}, nil
}

// Nearest returns the indexes of the axis values closest to the site's
// longitude and latitude, first occurrence winning ties.
func (a Axes) Nearest(lon, lat float64) (i, j int, err error) {
	return metocean.NearestIndex(lon, lat, a.Lon, a.Lat)
}

func candidates(name string, fallbacks []string) []string {
	if name != "" {
		return []string{name}
	}
	return fallbacks
}

func readAxis(nc netcdf.Dataset, names []string) ([]float64, error) {
	for _, name := range names {
		v, err := nc.Var(name)
		if err != nil {
			continue
		}
		return readFloat64Var(v)
	}
	return nil, fmt.Errorf("axis variable not found (tried %v)", names)
}

func readFloat64Var(v netcdf.Var) ([]float64, error) {
	dims, err := v.Dims()
	if err != nil {
		return nil, fmt.Errorf("get dimensions: %w", err)
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("expected 1D axis variable, got %dD", len(dims))
	}
	length, err := dims[0].Len()
	if err != nil {
		return nil, err
	}

	t, err := v.Type()
	if err != nil {
		return nil, fmt.Errorf("get variable type: %w", err)
	}
	switch t {
	case netcdf.DOUBLE:
		data := make([]float64, length)
		if err := v.ReadFloat64s(data); err != nil {
			return nil, err
		}
		return data, nil
	case netcdf.FLOAT:
		raw := make([]float32, length)
		if err := v.ReadFloat32s(raw); err != nil {
			return nil, err
		}
		data := make([]float64, length)
		for i, f := range raw {
			data[i] = float64(f)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported axis variable type %v", t)
	}
}
