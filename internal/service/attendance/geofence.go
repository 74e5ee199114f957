package attendance

import (
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/attendance"
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/user"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/geo"
)

// ValidateGeofence checks a reported position against a department
// zone. A nil zone means the department imposes no location
// restriction, so validation passes. A zone without a positive radius
// uses defaultRadiusMeters.
func ValidateGeofence(zone *user.GeoZone, reported attendance.Location, defaultRadiusMeters float64) error {
	if zone == nil {
		return nil
	}

	radius := zone.RadiusMeters
	if radius <= 0 {
		radius = defaultRadiusMeters
	}

	if !geo.IsWithinRadius(zone.Latitude, zone.Longitude, reported.Latitude, reported.Longitude, radius) {
		return attendance.ErrOutsideGeofence
	}

	return nil
}
