package metocean

import (
	"fmt"
	"math"
	"strings"
)

// Category selects the directional convention used when converting
// between velocity components and speed/direction. Currents use the
// oceanographic convention (bearing the flow heads toward); wind and
// wave data use the meteorological convention (bearing the flow comes
// from). Matching is case-insensitive, and any value other than
// "current" takes the wind/wave branch without error.
type Category string

const (
	Current Category = "current"
	Wind    Category = "wind"
	Wave    Category = "wave"
)

func (c Category) isCurrent() bool {
	return strings.EqualFold(string(c), string(Current))
}

// ToPolar converts zonal and meridional velocity components into speed
// and direction. magneticDeclination (decimal degrees, positive east)
// is subtracted from the raw vector angle before the convention offset
// is applied, correcting a magnetic bearing to true north; pass 0 when
// no correction is wanted. The direction is returned in [0, 360).
func ToPolar(u, v float64, category Category, magneticDeclination float64) (speed, direction float64) {
	speed = math.Hypot(u, v)
	angle := rad2deg(math.Atan2(v, u)) - magneticDeclination
	if category.isCurrent() {
		direction = mod360(90 - angle)
	} else {
		direction = mod360(270 - angle)
	}
	return speed, direction
}

// ToComponents converts speed and direction into zonal and meridional
// velocity components. It inverts ToPolar for the same category only
// when no declination correction was applied there; ToComponents has no
// declination parameter, so a corrected direction does not round-trip.
func ToComponents(speed, direction float64, category Category) (u, v float64) {
	angle := deg2rad(direction)
	u = speed * math.Sin(angle)
	v = speed * math.Cos(angle)
	if !category.isCurrent() {
		u, v = -u, -v
	}
	return u, v
}

// ToPolarSeries applies ToPolar element-wise over aligned component
// series, returning speed and direction series of the same length.
func ToPolarSeries(u, v []float64, category Category, magneticDeclination float64) (speeds, directions []float64, err error) {
	if len(u) != len(v) {
		return nil, nil, fmt.Errorf("component series misaligned: len(u)=%d len(v)=%d", len(u), len(v))
	}
	speeds = make([]float64, len(u))
	directions = make([]float64, len(u))
	for i := range u {
		speeds[i], directions[i] = ToPolar(u[i], v[i], category, magneticDeclination)
	}
	return speeds, directions, nil
}

// ToComponentsSeries applies ToComponents element-wise over aligned
// speed and direction series.
func ToComponentsSeries(speeds, directions []float64, category Category) (u, v []float64, err error) {
	if len(speeds) != len(directions) {
		return nil, nil, fmt.Errorf("polar series misaligned: len(speed)=%d len(direction)=%d", len(speeds), len(directions))
	}
	u = make([]float64, len(speeds))
	v = make([]float64, len(speeds))
	for i := range speeds {
		u[i], v[i] = ToComponents(speeds[i], directions[i], category)
	}
	return u, v, nil
}
