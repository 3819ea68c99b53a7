// Package metocean provides small helper functions for the analysis of
// meteorological and oceanographic data: site-to-site distance on the
// WGS-84 ellipsoid, nearest grid coordinate lookup, date midpoints,
// magnetic declination via the BGS geomagnetism web service, conversion
// between velocity components and speed/direction, and circular
// statistics for directional series.
//
// # Directional Conventions
//
// Oceanographic current direction is the bearing the flow is heading
// toward; meteorological wind and wave direction is the bearing the flow
// comes from. The two conventions differ by 180°, so every conversion
// takes a [Category] selecting which one applies:
//
//	current:    direction = mod(90  − (atan2(v,u) in degrees − declination), 360)
//	wind, wave: direction = mod(270 − (atan2(v,u) in degrees − declination), 360)
//
// Category matching is case-insensitive and any unrecognized value takes
// the wind/wave branch; callers relying on that fallback get no error.
//
// # Missing Values
//
// Directional series mark missing samples with NaN. Statistics drop them
// before computing; a series with no valid samples yields NaN results.
//
// # Angle Ranges
//
// Every direction produced by this package lies in [0, 360) decimal
// degrees.
package metocean
