package metocean

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a directional sample series in decimal degrees.
// Mean and Std are circular (computed from the sine/cosine
// decomposition of the samples); Min and Max are ordinary numeric
// extrema over the same retained samples.
type Stats struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// DirectionalStats computes basic statistics of directional data such
// as wind or current direction. NaN entries mark missing samples and
// are dropped before any metric is computed. The mean and standard
// deviation are circular, so 359° and 1° average to 0° rather than
// 180°; min and max are plain numeric extrema of the retained values.
// A series with no valid samples yields NaN for every field.
func DirectionalStats(series []float64) Stats {
	valid := make([]float64, 0, len(series))
	for _, d := range series {
		if !math.IsNaN(d) {
			valid = append(valid, d)
		}
	}
	if len(valid) == 0 {
		nan := math.NaN()
		return Stats{Mean: nan, Std: nan, Min: nan, Max: nan}
	}

	rad := make([]float64, len(valid))
	for i, d := range valid {
		rad[i] = deg2rad(d)
	}

	return Stats{
		Mean: mod360(rad2deg(stat.CircularMean(rad, nil))),
		Std:  rad2deg(circularStd(rad)),
		Min:  floats.Min(valid),
		Max:  floats.Max(valid),
	}
}

// circularStd returns the circular standard deviation sqrt(−2 ln R) in
// radians, where R is the mean resultant length of the samples. R can
// land marginally above 1 for identical samples, which would make the
// logarithm positive, so it is clamped.
func circularStd(rad []float64) float64 {
	var sinSum, cosSum float64
	for _, a := range rad {
		s, c := math.Sincos(a)
		sinSum += s
		cosSum += c
	}
	n := float64(len(rad))
	r := math.Hypot(sinSum/n, cosSum/n)
	if r > 1 {
		r = 1
	}
	return math.Sqrt(-2 * math.Log(r))
}
