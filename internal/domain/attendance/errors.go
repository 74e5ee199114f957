package attendance

import "errors"

// Attendance domain errors
var (
	// Clock errors
	ErrOutsideGeofence   = errors.New("clock position is outside the allowed range")
	ErrAlreadyClockedIn  = errors.New("clock_in already recorded today")
	ErrAlreadyClockedOut = errors.New("clock_out already recorded today")

	// General errors
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrInvalidRecordID = errors.New("invalid attendance record id")
)

// DuplicateError returns the duplicate sentinel matching the clock
// type.
func DuplicateError(t Type) error {
	if t == TypeClockOut {
		return ErrAlreadyClockedOut
	}
	return ErrAlreadyClockedIn
}
