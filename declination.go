package metocean

import (
	"context"
	"time"

	"github.com/couchcryptid/metocean-kit/bgs"
)

// MagneticDeclination returns the magnetic declination in decimal
// degrees (positive east of true north) at the given site and date,
// with altitude in decimal km above mean sea level. The value comes
// from the BGS geomagnetism web service using the package defaults
// (World Magnetic Model, current revision); construct a [bgs.Client]
// directly to choose another model, base URL, or timeout. A zero date
// queries the model for today.
func MagneticDeclination(ctx context.Context, lon, lat float64, date time.Time, altitudeKm float64) (float64, error) {
	return bgs.Default().Declination(ctx, bgs.Request{
		Lon:        lon,
		Lat:        lat,
		AltitudeKm: altitudeKm,
		Date:       date,
	})
}
