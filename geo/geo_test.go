package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDistance(t *testing.T) {
	tests := []struct {
		name     string
		from, to Coordinates
		expected float64
		delta    float64
	}{
		{
			name:     "same point",
			from:     Coordinates{Lat: 55.611087, Lng: 37.20829},
			to:       Coordinates{Lat: 55.611087, Lng: 37.20829},
			expected: 0,
		},
		{
			name:     "one degree of longitude on the equator",
			from:     Coordinates{Lat: 0, Lng: 0},
			to:       Coordinates{Lat: 0, Lng: 1},
			expected: EarthRadiusM * math.Pi / 180,
			delta:    1e-6,
		},
		{
			name:     "one degree of latitude",
			from:     Coordinates{Lat: 10, Lng: 20},
			to:       Coordinates{Lat: 11, Lng: 20},
			expected: EarthRadiusM * math.Pi / 180,
			delta:    1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ComputeDistance(tt.from, tt.to), tt.delta)
		})
	}
}

func TestComputeDistance_Symmetric(t *testing.T) {
	a := Coordinates{Lat: 55.595884, Lng: 37.209755}
	b := Coordinates{Lat: 55.632761, Lng: 37.333324}
	assert.InDelta(t, ComputeDistance(a, b), ComputeDistance(b, a), 1e-9)
}
