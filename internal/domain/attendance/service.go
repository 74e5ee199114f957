package attendance

import (
	"context"
	"time"
)

// Service defines business logic for attendance operations
type Service interface {
	// Clock records a self-service clock event for the user after
	// geofence validation, duplicate detection and status
	// classification
	Clock(ctx context.Context, userID string, req ClockRequest) (RecordResponse, error)

	// Get retrieves a single record by id (admin/manager)
	Get(ctx context.Context, id string) (RecordResponse, error)

	// List retrieves records with filters and pagination (admin/manager)
	List(ctx context.Context, filter QueryFilter) (ListResponse, error)

	// GetDaily retrieves a user's records for the day containing date
	GetDaily(ctx context.Context, userID string, date time.Time) ([]RecordResponse, error)

	// GetWeekly retrieves a user's records for the Monday-Sunday week
	// containing date
	GetWeekly(ctx context.Context, userID string, date time.Time) ([]RecordResponse, error)

	// GetMonthly retrieves a user's records for the month containing
	// date
	GetMonthly(ctx context.Context, userID string, date time.Time) ([]RecordResponse, error)

	// GetStats computes attendance statistics for a user over an
	// inclusive date range
	GetStats(ctx context.Context, userID string, startDate, endDate string) (Stats, error)

	// AddManual records an administrator backfill entry, bypassing the
	// geofence and duplicate checks
	AddManual(ctx context.Context, adminID string, req ManualAddRequest) (RecordResponse, error)

	// Delete permanently removes a record (admin only)
	Delete(ctx context.Context, id string) error
}
