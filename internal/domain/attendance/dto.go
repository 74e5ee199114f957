package attendance

import (
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ClockRequest is a self-service clock-in/clock-out submission. The
// event time is always the server clock, never client-supplied.
type ClockRequest struct {
	Type               Type     `json:"type"`
	Location           Location `json:"location"`
	Device             *string  `json:"device,omitempty"`
	Note               *string  `json:"note,omitempty"`
	UseFaceRecognition bool     `json:"use_face_recognition,omitempty"`
	UseFingerprint     bool     `json:"use_fingerprint,omitempty"`

	// Filled from the connection by the handler, never by the client.
	IPAddress *string `json:"-"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Type.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be clock_in or clock_out",
		})
	}

	if !validator.IsValidLatitude(r.Location.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "location.latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Location.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "location.longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManualAddRequest is an administrator backfill. It bypasses the
// geofence and duplicate checks; the supplied status is stored as-is.
type ManualAddRequest struct {
	UserID   string    `json:"user_id"`
	Type     Type      `json:"type"`
	Status   Status    `json:"status,omitempty"`
	Date     string    `json:"date,omitempty"` // "2006-01-02 15:04:05" or "2006-01-02"; empty means now
	Location *Location `json:"location,omitempty"`
	Note     *string   `json:"note,omitempty"`
}

func (r *ManualAddRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	} else if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid uuid",
		})
	}

	if !r.Type.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be clock_in or clock_out",
		})
	}

	if r.Status != "" && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown attendance status",
		})
	}

	if r.Location != nil {
		if !validator.IsValidLatitude(r.Location.Latitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "location.latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if !validator.IsValidLongitude(r.Location.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "location.longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// QueryFilter filters the record listing. Empty fields are ignored.
type QueryFilter struct {
	UserID       string
	DepartmentID string
	Type         string
	Status       string
	StartDate    string // "2006-01-02"
	EndDate      string // "2006-01-02"
	Page         int
	Limit        int
}

// Normalize applies the default pagination window.
func (f *QueryFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
}

func (f *QueryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.UserID != "" && !validator.IsValidUUID(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid uuid",
		})
	}
	if f.DepartmentID != "" && !validator.IsValidUUID(f.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid uuid",
		})
	}
	if f.Type != "" && !Type(f.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be clock_in or clock_out",
		})
	}
	if f.Status != "" && !Status(f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown attendance status",
		})
	}
	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be formatted YYYY-MM-DD",
			})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be formatted YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Stats are per-user attendance statistics over a date range.
// Recomputed on every query, never persisted.
type Stats struct {
	TotalDays      int `json:"total_days"`
	NormalDays     int `json:"normal_days"`
	LateDays       int `json:"late_days"`
	EarlyLeaveDays int `json:"early_leave_days"`
	AbsentDays     int `json:"absent_days"`
	OvertimeDays   int `json:"overtime_days"`
}

type RecordResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	UserName        *string   `json:"user_name,omitempty"`
	EmployeeNumber  *string   `json:"employee_number,omitempty"`
	OccurredAt      string    `json:"occurred_at"`
	Type            Type      `json:"type"`
	Status          Status    `json:"status"`
	Location        *Location `json:"location,omitempty"`
	Device          *string   `json:"device,omitempty"`
	Note            *string   `json:"note,omitempty"`
	IsManuallyAdded bool      `json:"is_manually_added"`
	AddedBy         *string   `json:"added_by,omitempty"`
	CreatedAt       string    `json:"created_at,omitempty"`
}

type ListResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}
