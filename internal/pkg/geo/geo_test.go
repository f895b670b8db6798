package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceZero(t *testing.T) {
	d := HaversineDistance(-6.2, 106.8, -6.2, 106.8)
	assert.Zero(t, d)
}

func TestHaversineDistanceSymmetry(t *testing.T) {
	d1 := HaversineDistance(-6.2, 106.8, -6.3, 106.9)
	d2 := HaversineDistance(-6.3, 106.9, -6.2, 106.8)
	assert.InDelta(t, d1, d2, 0.0001)
}

func TestHaversineDistanceKnownPair(t *testing.T) {
	// Roughly 111km per degree of latitude at the equator
	d := HaversineDistance(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 200)
}

func TestCheckRadiusInside(t *testing.T) {
	check := CheckRadius(-6.2, 106.8, -6.2, 106.8, 100)
	assert.True(t, check.WithinRadius)
	assert.Equal(t, 0, check.DistanceMeters)
}

func TestCheckRadiusOutside(t *testing.T) {
	// ~0.00135 degrees latitude is about 150m
	check := CheckRadius(-6.20135, 106.8, -6.2, 106.8, 100)
	assert.False(t, check.WithinRadius)
	assert.Greater(t, check.DistanceMeters, 100)
	assert.Less(t, check.DistanceMeters, 200)
}

func TestCheckRadiusBoundary(t *testing.T) {
	// Distance equal to the radius still counts as inside
	check := CheckRadius(-6.2, 106.8, -6.2, 106.8, 1)
	assert.True(t, check.WithinRadius)
}
