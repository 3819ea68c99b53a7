package metocean

import (
	"fmt"

	"github.com/pymaxion/geographiclib-go/geodesic"
)

// Distance returns the distance in metres between two sites on the
// Earth's surface, given as (lon1, lat1) and (lon2, lat2) in decimal
// degrees. The geodesic is solved on the WGS-84 ellipsoid, not a
// sphere, so results are accurate at all latitudes.
func Distance(lon1, lat1, lon2, lat2 float64) (float64, error) {
	if lat1 < -90 || lat1 > 90 {
		return 0, fmt.Errorf("latitude %v out of range [-90, 90]", lat1)
	}
	if lat2 < -90 || lat2 > 90 {
		return 0, fmt.Errorf("latitude %v out of range [-90, 90]", lat2)
	}
	return geodesic.WGS84.Inverse(lat1, lon1, lat2, lon2).S12, nil
}
