package metocean

import (
	"errors"
	"fmt"
	"math"
)

var errEmptyAxis = errors.New("empty coordinate axis")

// NearestIndex finds the indexes of the nearest longitude and latitude
// values to a site's coordinates in independent longitude and latitude
// axes. Each axis is scanned separately: the returned i indexes lonArr
// and j indexes latArr, and the axes need not have the same length.
// When two or more entries tie for the minimum absolute difference, the
// first occurrence wins.
func NearestIndex(lon, lat float64, lonArr, latArr []float64) (i, j int, err error) {
	i, err = nearest(lon, lonArr)
	if err != nil {
		return 0, 0, fmt.Errorf("longitude axis: %w", err)
	}
	j, err = nearest(lat, latArr)
	if err != nil {
		return 0, 0, fmt.Errorf("latitude axis: %w", err)
	}
	return i, j, nil
}

func nearest(target float64, axis []float64) (int, error) {
	if len(axis) == 0 {
		return 0, errEmptyAxis
	}
	best := 0
	bestDiff := math.Abs(axis[0] - target)
	for k := 1; k < len(axis); k++ {
		if d := math.Abs(axis[k] - target); d < bestDiff {
			best = k
			bestDiff = d
		}
	}
	return best, nil
}
