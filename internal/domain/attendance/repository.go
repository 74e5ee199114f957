package attendance

import (
	"context"
	"time"
)

// Repository defines data access methods for attendance records.
type Repository interface {
	// Create inserts a new record. It returns ErrAlreadyClockedIn or
	// ErrAlreadyClockedOut when the storage uniqueness constraint on
	// (user, type, day) rejects a non-manual duplicate.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a record by id
	GetByID(ctx context.Context, id string) (Record, error)

	// FindByUserTypeWithin returns the first non-manual record of the
	// given type for the user whose occurred_at falls within [from, to].
	// Used as the duplicate pre-check before insert.
	FindByUserTypeWithin(ctx context.Context, userID string, recordType Type, from, to time.Time) (*Record, error)

	// ListByUserWithin returns all records for a user whose occurred_at
	// falls within [from, to], ordered by occurred_at ascending.
	ListByUserWithin(ctx context.Context, userID string, from, to time.Time) ([]Record, error)

	// List retrieves records with filters and pagination, newest first
	List(ctx context.Context, filter QueryFilter) ([]Record, int64, error)

	// Delete removes a record permanently
	Delete(ctx context.Context, id string) error
}
