package metocean

import "math"

func deg2rad(deg float64) float64 { return deg * math.Pi / 180 }

func rad2deg(rad float64) float64 { return rad * 180 / math.Pi }

// mod360 maps an angle in degrees onto [0, 360). Unlike math.Mod it
// never returns a negative value for a negative operand. Adding 360 to
// a vanishingly small negative remainder can round to exactly 360,
// which would breach the half-open range, so that case collapses to 0.
func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	if m == 360 {
		m = 0
	}
	return m
}
