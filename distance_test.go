package metocean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	d, err := Distance(174.7645, -36.8485, 174.7645, -36.8485)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestDistance_Symmetric(t *testing.T) {
	d1, err := Distance(174.7645, -36.8485, 174.7762, -41.2865)
	require.NoError(t, err)
	d2, err := Distance(174.7762, -41.2865, 174.7645, -36.8485)
	require.NoError(t, err)
	assert.InDelta(t, d1, d2, 1e-6)
}

func TestDistance_OneDegreeAlongEquator(t *testing.T) {
	// One degree of longitude on the WGS-84 equator is a*pi/180.
	d, err := Distance(0, 0, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 111319.491, d, 0.5)
}

func TestDistance_OneDegreeAlongMeridian(t *testing.T) {
	// Shorter than the equatorial degree because of polar flattening.
	d, err := Distance(0, 0, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 110574.39, d, 1.0)
}

func TestDistance_InvalidLatitude(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lat2 float64
	}{
		{"first latitude above range", 91, 0},
		{"first latitude below range", -91, 0},
		{"second latitude above range", 0, 90.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Distance(0, tt.lat1, 0, tt.lat2)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "out of range")
		})
	}
}
