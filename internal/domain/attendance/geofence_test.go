package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters_SamePoint(t *testing.T) {
	d := HaversineMeters(-6.208763, 106.845599, -6.208763, 106.845599)
	assert.Zero(t, d)
}

func TestHaversineMeters_OneDegreeLatitude(t *testing.T) {
	// Satu derajat lintang ~ 111.19 km di bola berjari-jari 6371 km.
	d := HaversineMeters(0, 106.8, 1, 106.8)
	assert.InDelta(t, 111195, d, 100)
}

func TestHaversineMeters_Symmetric(t *testing.T) {
	a := HaversineMeters(-6.2, 106.8, -6.3, 106.9)
	b := HaversineMeters(-6.3, 106.9, -6.2, 106.8)
	assert.InDelta(t, a, b, 1e-6)
}

func TestGeofence_DistanceFrom(t *testing.T) {
	fence := Geofence{Latitude: -6.208763, Longitude: 106.845599, RadiusM: 100}

	// ~500 m ke utara (0.0045 derajat lintang).
	d := fence.DistanceFrom(-6.204263, 106.845599)
	assert.InDelta(t, 500, d, 10)
	assert.Greater(t, d, fence.RadiusM)
}
