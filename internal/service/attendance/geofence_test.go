package attendance

import (
	"testing"

	"github.com/chronotrack/chronotrack-backend-go/internal/domain/attendance"
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

const testDefaultRadius = 100.0

func TestValidateGeofence_NilZonePasses(t *testing.T) {
	loc := attendance.Location{Latitude: 0, Longitude: 0}
	assert.NoError(t, ValidateGeofence(nil, loc, testDefaultRadius))
}

func TestValidateGeofence_InsideRadius(t *testing.T) {
	zone := &user.GeoZone{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 200}
	// Roughly 111 meters north of the zone center.
	loc := attendance.Location{Latitude: -6.199, Longitude: 106.8}

	assert.NoError(t, ValidateGeofence(zone, loc, testDefaultRadius))
}

func TestValidateGeofence_OutsideRadius(t *testing.T) {
	zone := &user.GeoZone{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 50}
	loc := attendance.Location{Latitude: -6.199, Longitude: 106.8}

	err := ValidateGeofence(zone, loc, testDefaultRadius)
	assert.ErrorIs(t, err, attendance.ErrOutsideGeofence)
}

func TestValidateGeofence_ZeroRadiusUsesDefault(t *testing.T) {
	zone := &user.GeoZone{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 0}

	// 111 meters away: outside a 100m default, inside a 200m default.
	loc := attendance.Location{Latitude: -6.199, Longitude: 106.8}
	assert.ErrorIs(t, ValidateGeofence(zone, loc, 100), attendance.ErrOutsideGeofence)
	assert.NoError(t, ValidateGeofence(zone, loc, 200))
}

func TestValidateGeofence_ExactCenter(t *testing.T) {
	zone := &user.GeoZone{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 50}
	loc := attendance.Location{Latitude: -6.2, Longitude: 106.8}

	assert.NoError(t, ValidateGeofence(zone, loc, testDefaultRadius))
}
