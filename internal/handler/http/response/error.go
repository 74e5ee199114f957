package response

import (
	"errors"
	"net/http"

	"github.com/chronotrack/chronotrack-backend-go/internal/domain/attendance"
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/auth"
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/user"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrOutsideGeofence):
		BadRequest(w, "Position is outside the allowed clock range", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidRecordID):
		BadRequest(w, "Invalid attendance record id", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrInvalidUserID):
		BadRequest(w, "Invalid user id", nil)
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already registered")
	case errors.Is(err, user.ErrWrongPassword):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, user.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, user.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
