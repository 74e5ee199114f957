package geo

import (
	"math"
	"testing"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	if d := DistanceMeters(-6.2, 106.8, -6.2, 106.8); d != 0 {
		t.Errorf("DistanceMeters(same point) = %v, want 0", d)
	}
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		// One degree of latitude is ~111.19 km on a 6371 km sphere.
		{"one degree latitude", 0, 0, 1, 0, 111195, 50},
		// One degree of longitude at the equator, same arc length.
		{"one degree longitude at equator", 0, 0, 0, 1, 111195, 50},
		// ~100m north of an office in Jakarta.
		{"hundred meters", -6.200000, 106.800000, -6.199101, 106.800000, 100, 1},
	}
	for _, c := range cases {
		got := DistanceMeters(c.lat1, c.lon1, c.lat2, c.lon2)
		if math.Abs(got-c.want) > c.tolerance {
			t.Errorf("%s: DistanceMeters = %v, want %v ± %v", c.name, got, c.want, c.tolerance)
		}
	}
}

func TestIsWithinRadius_InclusiveBoundary(t *testing.T) {
	centerLat, centerLon := -6.2, 106.8
	pointLat, pointLon := -6.199101, 106.8

	d := DistanceMeters(centerLat, centerLon, pointLat, pointLon)

	// Exactly at the measured distance the point is inside.
	if !IsWithinRadius(centerLat, centerLon, pointLat, pointLon, d) {
		t.Error("IsWithinRadius at exact distance = false, want true")
	}
	if IsWithinRadius(centerLat, centerLon, pointLat, pointLon, d-0.5) {
		t.Error("IsWithinRadius just inside radius boundary = true, want false")
	}
	if !IsWithinRadius(centerLat, centerLon, pointLat, pointLon, d+0.5) {
		t.Error("IsWithinRadius with slack = false, want true")
	}
}

func TestIsWithinRadius_ZeroRadius(t *testing.T) {
	if !IsWithinRadius(1, 1, 1, 1, 0) {
		t.Error("IsWithinRadius(same point, radius 0) = false, want true")
	}
	if IsWithinRadius(1, 1, 1.001, 1, 0) {
		t.Error("IsWithinRadius(distinct point, radius 0) = true, want false")
	}
}
